package formula

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Recursive-descent evaluator for the scientific calculator. User text is
// never executed as code: input is sanitized to the expression alphabet
// and then parsed against a fixed grammar:
//
//	expr   = term { ("+" | "-") term }
//	term   = factor { ("*" | "/") factor }
//	factor = ["+" | "-"] factor | "(" expr ")" | number
//
// Parenthesis nesting is capped so structurally hostile input (deeply
// nested parens) fails fast instead of exhausting the stack.

const maxExprDepth = 200

var (
	errBadExpression = errors.New("malformed expression")
	errDivideByZero  = errors.New("division by zero")
	errTooDeep       = errors.New("expression nested too deeply")

	nonExpression = regexp.MustCompile(`[^0-9+\-*/().\s]`)
)

type exprParser struct {
	input []rune
	pos   int
	depth int
}

func evalExpression(raw string) (float64, error) {
	sanitized := nonExpression.ReplaceAllString(raw, "")
	sanitized = strings.Join(strings.Fields(sanitized), "")
	if sanitized == "" {
		return 0, errBadExpression
	}

	p := &exprParser{input: []rune(sanitized)}
	value, err := p.expr()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.input) {
		return 0, errBadExpression
	}
	return value, nil
}

func (p *exprParser) expr() (float64, error) {
	value, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			rhs, err := p.term()
			if err != nil {
				return 0, err
			}
			value += rhs
		case '-':
			p.pos++
			rhs, err := p.term()
			if err != nil {
				return 0, err
			}
			value -= rhs
		default:
			return value, nil
		}
	}
}

func (p *exprParser) term() (float64, error) {
	value, err := p.factor()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			rhs, err := p.factor()
			if err != nil {
				return 0, err
			}
			value *= rhs
		case '/':
			p.pos++
			rhs, err := p.factor()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, errDivideByZero
			}
			value /= rhs
		default:
			return value, nil
		}
	}
}

func (p *exprParser) factor() (float64, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxExprDepth {
		return 0, errTooDeep
	}

	switch p.peek() {
	case '+':
		p.pos++
		return p.factor()
	case '-':
		p.pos++
		value, err := p.factor()
		return -value, err
	case '(':
		p.pos++
		value, err := p.expr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, errBadExpression
		}
		p.pos++
		return value, nil
	default:
		return p.number()
	}
}

func (p *exprParser) number() (float64, error) {
	start := p.pos
	seenDot := false
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '.' {
			if seenDot {
				return 0, errBadExpression
			}
			seenDot = true
		} else if c < '0' || c > '9' {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return 0, errBadExpression
	}
	value, err := strconv.ParseFloat(string(p.input[start:p.pos]), 64)
	if err != nil {
		return 0, errBadExpression
	}
	return value, nil
}

func (p *exprParser) peek() rune {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

// roundExpr trims float noise to 10 decimal places.
func roundExpr(v float64) float64 {
	return math.Round(v*1e10) / 1e10
}

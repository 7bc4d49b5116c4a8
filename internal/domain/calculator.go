package domain

// Category groups calculators in the catalog.
type Category string

const (
	CategoryFinancial Category = "financial"
	CategoryHealth    Category = "health"
	CategoryMath      Category = "math"
	CategoryOther     Category = "other"
)

// Categories lists every valid catalog category.
func Categories() []Category {
	return []Category{CategoryFinancial, CategoryHealth, CategoryMath, CategoryOther}
}

// FieldType declares how a calculator input should be captured and parsed.
type FieldType string

const (
	FieldText   FieldType = "text"
	FieldNumber FieldType = "number"
	FieldDate   FieldType = "date"
	FieldSelect FieldType = "select"
)

// Option is one selectable value of a select field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldSpec describes a single named input of a calculator.
// Name is the key used in the input mapping and is unique per calculator.
type FieldSpec struct {
	Name         string    `json:"name"`
	Label        string    `json:"label"`
	Type         FieldType `json:"type"`
	DefaultValue string    `json:"defaultValue,omitempty"`
	Required     bool      `json:"required,omitempty"`
	Options      []Option  `json:"options,omitempty"`
	Description  string    `json:"description,omitempty"`
	Placeholder  string    `json:"placeholder,omitempty"`
}

// CalculatorDefinition is the static metadata of one calculator.
// Definitions are immutable after registry load.
type CalculatorDefinition struct {
	ID          string      `json:"Id"`
	Category    Category    `json:"category"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Fields      []FieldSpec `json:"fields"`
}

// Inputs maps field names to raw values. Numbers may arrive as text.
type Inputs map[string]any

// Results maps output names to computed values (numbers or strings).
type Results map[string]any

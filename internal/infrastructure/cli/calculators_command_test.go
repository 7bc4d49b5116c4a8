package cli

import (
	"strings"
	"testing"
)

func TestCalculatorsList(t *testing.T) {
	container := newTestContainer(t)

	out, err := runCommand(t, newCalculatorsCommand(container), "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, id := range []string{"mortgage", "bmi", "age", "currency"} {
		if !strings.Contains(out, id) {
			t.Errorf("list output missing %q:\n%s", id, out)
		}
	}
}

func TestCalculatorsListByCategory(t *testing.T) {
	container := newTestContainer(t)

	out, err := runCommand(t, newCalculatorsCommand(container), "list", "--category", "health")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "bmi") || strings.Contains(out, "mortgage") {
		t.Errorf("category filter broken:\n%s", out)
	}

	if _, err := runCommand(t, newCalculatorsCommand(container), "list", "--category", "astrology"); err == nil {
		t.Error("unknown category should fail")
	}
}

func TestCalculatorsShow(t *testing.T) {
	container := newTestContainer(t)

	out, err := runCommand(t, newCalculatorsCommand(container), "show", "bmi")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	for _, want := range []string{"BMI Calculator", "weight", "height", "metric"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}

	if _, err := runCommand(t, newCalculatorsCommand(container), "show", "nope"); err == nil {
		t.Error("unknown id should fail")
	}
}

func TestCalculatorsSearchRecordsQuery(t *testing.T) {
	container := newTestContainer(t)

	out, err := runCommand(t, newCalculatorsCommand(container), "search", "mortgage")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(out, "mortgage") {
		t.Errorf("search output missing match:\n%s", out)
	}

	out, err = runCommand(t, newCalculatorsCommand(container), "recent")
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if !strings.Contains(out, "mortgage") {
		t.Errorf("recent output missing remembered query:\n%s", out)
	}
}

func TestCalculatorsRecentEmpty(t *testing.T) {
	container := newTestContainer(t)

	out, err := runCommand(t, newCalculatorsCommand(container), "recent")
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if !strings.Contains(out, "No recent searches.") {
		t.Errorf("empty recent output = %q", out)
	}
}

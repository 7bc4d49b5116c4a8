package registry

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/calchub/internal/domain"
)

func TestEveryDefinitionHasFormula(t *testing.T) {
	r := New()
	for _, def := range r.Definitions() {
		if _, ok := r.formulas[def.ID]; !ok {
			t.Errorf("calculator %q has no bound formula", def.ID)
		}
	}
	for id := range r.formulas {
		if r.Definition(id) == nil {
			t.Errorf("formula %q has no catalog definition", id)
		}
	}
}

func TestCatalogIntegrity(t *testing.T) {
	r := New()
	defs := r.Definitions()
	if len(defs) == 0 {
		t.Fatal("catalog is empty")
	}

	seen := make(map[string]bool, len(defs))
	for _, def := range defs {
		if seen[def.ID] {
			t.Errorf("duplicate calculator id %q", def.ID)
		}
		seen[def.ID] = true

		if def.Name == "" || def.Description == "" {
			t.Errorf("calculator %q missing name or description", def.ID)
		}

		valid := false
		for _, category := range domain.Categories() {
			if def.Category == category {
				valid = true
			}
		}
		if !valid {
			t.Errorf("calculator %q has unknown category %q", def.ID, def.Category)
		}

		fields := make(map[string]bool, len(def.Fields))
		for _, f := range def.Fields {
			if fields[f.Name] {
				t.Errorf("calculator %q has duplicate field %q", def.ID, f.Name)
			}
			fields[f.Name] = true
			if f.Type == domain.FieldSelect && len(f.Options) == 0 {
				t.Errorf("calculator %q select field %q has no options", def.ID, f.Name)
			}
		}
	}
}

func TestComputeDispatches(t *testing.T) {
	r := New()

	got := r.Compute("bmi", domain.Inputs{"weight": 70.0, "height": 175.0})
	if got["category"] != "Normal" {
		t.Errorf("Compute(bmi) category = %v, want Normal", got["category"])
	}

	// The three amortization ids share one formula.
	in := domain.Inputs{"principal": 1000.0, "rate": 12.0, "years": 1.0}
	mortgage := r.Compute("mortgage", in)
	loan := r.Compute("loan", in)
	if diff := cmp.Diff(mortgage, loan); diff != "" {
		t.Errorf("mortgage and loan diverge (-mortgage +loan):\n%s", diff)
	}
}

func TestComputeUnknownIDReturnsSentinel(t *testing.T) {
	r := New()
	in := domain.Inputs{"anything": 1.0}

	got := r.Compute("quantum-flux", in)
	want := domain.Results{
		"result": NotImplementedResult,
		"inputs": in,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Compute(unknown) mismatch (-want +got):\n%s", diff)
	}
}

func TestDefinitionsReturnsCopy(t *testing.T) {
	r := New()
	defs := r.Definitions()
	original := defs[0].Name
	defs[0].Name = "mutated"

	if r.Definitions()[0].Name != original {
		t.Error("Definitions() exposes internal slice")
	}
}

func TestDefinitionUnknownIsNil(t *testing.T) {
	if def := New().Definition("nope"); def != nil {
		t.Errorf("Definition(nope) = %v, want nil", def)
	}
}

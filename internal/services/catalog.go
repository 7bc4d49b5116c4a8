// Package services holds the application use-cases: catalog queries,
// the history store, recent searches, projections, and export.
package services

import (
	"strings"

	"github.com/doeshing/calchub/internal/domain"
	"github.com/doeshing/calchub/internal/registry"
)

// CatalogService answers read-only queries over the registry's static
// metadata. It never mutates the catalog.
type CatalogService struct {
	Registry *registry.Registry
}

// All returns every calculator definition in catalog order.
func (s *CatalogService) All() []domain.CalculatorDefinition {
	return s.Registry.Definitions()
}

// ByID returns the definition for id, or nil when unknown.
func (s *CatalogService) ByID(id string) *domain.CalculatorDefinition {
	return s.Registry.Definition(id)
}

// ByCategory filters the catalog by category.
func (s *CatalogService) ByCategory(category domain.Category) []domain.CalculatorDefinition {
	var out []domain.CalculatorDefinition
	for _, def := range s.Registry.Definitions() {
		if def.Category == category {
			out = append(out, def)
		}
	}
	return out
}

// Search matches text case-insensitively against name, description, and
// category of every calculator.
func (s *CatalogService) Search(text string) []domain.CalculatorDefinition {
	term := strings.ToLower(strings.TrimSpace(text))
	if term == "" {
		return s.All()
	}
	var out []domain.CalculatorDefinition
	for _, def := range s.Registry.Definitions() {
		if strings.Contains(strings.ToLower(def.Name), term) ||
			strings.Contains(strings.ToLower(def.Description), term) ||
			strings.Contains(strings.ToLower(string(def.Category)), term) {
			out = append(out, def)
		}
	}
	return out
}

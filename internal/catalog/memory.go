package catalog

import (
	"context"
	"sort"

	"github.com/clinical-scales-server/internal/domain"
)

// MemoryStore serves the catalog from in-process maps. It backs the default
// single-binary deployment and the test suites; content is fixed at
// construction so reads need no locking.
type MemoryStore struct {
	scales    map[string]domain.ScaleDefinition
	variables map[string]domain.VariableDefinition
}

// NewMemoryStore creates a store pre-loaded with the built-in catalog
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		scales:    make(map[string]domain.ScaleDefinition),
		variables: make(map[string]domain.VariableDefinition),
	}
	for _, scale := range seedScales() {
		s.scales[scale.CodeName] = scale
	}
	for _, variable := range seedVariables() {
		s.variables[variable.Name] = variable
	}
	return s
}

// FindScaleByCode returns the scale definition, or (nil, nil) when absent
func (s *MemoryStore) FindScaleByCode(_ context.Context, codeName string) (*domain.ScaleDefinition, error) {
	scale, ok := s.scales[codeName]
	if !ok {
		return nil, nil
	}
	return &scale, nil
}

// FindVariableByName returns the variable definition, or (nil, nil) when absent
func (s *MemoryStore) FindVariableByName(_ context.Context, name string) (*domain.VariableDefinition, error) {
	variable, ok := s.variables[name]
	if !ok {
		return nil, nil
	}
	return &variable, nil
}

// ListScales returns all scale definitions ordered by code name
func (s *MemoryStore) ListScales(_ context.Context) ([]domain.ScaleDefinition, error) {
	scales := make([]domain.ScaleDefinition, 0, len(s.scales))
	for _, scale := range s.scales {
		scales = append(scales, scale)
	}
	sort.Slice(scales, func(i, j int) bool {
		return scales[i].CodeName < scales[j].CodeName
	})
	return scales, nil
}

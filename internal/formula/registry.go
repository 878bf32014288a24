// Package formula holds the statically compiled scale calculations and the
// registry that dispatches them by scale code name. Each formula accepts its
// scale's declared variable set by name and returns a numeric score; an
// optional classifier maps the score onto an interpretation category key.
package formula

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/clinical-scales-server/internal/domain"
)

// Calculate evaluates a scale from its complete named value map
type Calculate func(values map[string]domain.Value) (float64, error)

// Classify maps a computed score onto an interpretation category key. It
// also receives the input values: some scales band on an intermediate stage
// of the calculation rather than the reported score.
type Classify func(values map[string]domain.Value, score float64) string

// Definition is one registered scale calculation
type Definition struct {
	CodeName  string
	Calculate Calculate
	// Classify is optional; when nil the evaluator falls back to the
	// integer-truncation convention used by simple point-sum scales.
	Classify Classify
}

// Registry maps scale code names onto their calculation entry points. It is
// populated at construction time and read-only afterwards, so it may be
// shared across concurrent pipeline invocations.
type Registry struct {
	logger  *logrus.Logger
	entries map[string]Definition
}

// NewRegistry creates a registry pre-populated with the built-in scales
func NewRegistry(logger *logrus.Logger) *Registry {
	r := &Registry{
		logger:  logger,
		entries: make(map[string]Definition),
	}
	for _, def := range builtinDefinitions() {
		if err := r.Register(def); err != nil {
			// Built-ins are registered from a literal slice; a duplicate
			// here is a programming error.
			panic(err)
		}
	}
	return r
}

// Register adds a scale calculation to the registry
func (r *Registry) Register(def Definition) error {
	if def.CodeName == "" {
		return fmt.Errorf("formula registration requires a code name")
	}
	if def.Calculate == nil {
		return fmt.Errorf("formula %q registration requires a calculate function", def.CodeName)
	}
	if _, exists := r.entries[def.CodeName]; exists {
		return fmt.Errorf("formula %q is already registered", def.CodeName)
	}
	r.entries[def.CodeName] = def
	r.logger.WithField("code_name", def.CodeName).Debug("Registered scale formula")
	return nil
}

// Lookup returns the calculation entry point for a scale code name
func (r *Registry) Lookup(codeName string) (Definition, bool) {
	def, ok := r.entries[codeName]
	return def, ok
}

// Codes returns the sorted list of registered scale code names
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.entries))
	for code := range r.entries {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Shared value accessors. Formulas receive values already validated for
// completeness, but guard against shape mismatches anyway so a bad catalog
// entry surfaces as a calculation error instead of a panic.

func number(values map[string]domain.Value, name string) (float64, error) {
	v, ok := values[name]
	if !ok {
		return 0, fmt.Errorf("variable %q is not present", name)
	}
	switch v.Kind {
	case domain.NUMERICAL:
		return v.Number, nil
	case domain.CATEGORICAL:
		n, err := strconv.ParseFloat(v.Text, 64)
		if err != nil {
			return 0, fmt.Errorf("variable %q has non-numeric value %q", name, v.Text)
		}
		return n, nil
	}
	return 0, fmt.Errorf("variable %q has unknown kind %q", name, v.Kind)
}

func text(values map[string]domain.Value, name string) (string, error) {
	v, ok := values[name]
	if !ok {
		return "", fmt.Errorf("variable %q is not present", name)
	}
	if v.Kind != domain.CATEGORICAL {
		return "", fmt.Errorf("variable %q is not categorical", name)
	}
	return v.Text, nil
}

func boolean(values map[string]domain.Value, name string) (bool, error) {
	v, ok := values[name]
	if !ok {
		return false, fmt.Errorf("variable %q is not present", name)
	}
	if v.Kind == domain.NUMERICAL {
		return v.Number != 0, nil
	}
	switch v.Text {
	case "true", "yes", "1":
		return true, nil
	case "false", "no", "0", "":
		return false, nil
	}
	return false, fmt.Errorf("variable %q has non-boolean value %q", name, v.Text)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Package catalog provides the scale/variable catalog stores and the
// dependency resolver that turns requested scale code names into the set of
// variables a pipeline run must extract.
package catalog

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/clinical-scales-server/internal/domain"
)

// Resolution is the resolved dependency set for one pipeline run.
type Resolution struct {
	// Scales are the resolved definitions, in request order, duplicates removed.
	Scales []domain.ScaleDefinition
	// Unresolved lists requested code names the catalog does not know.
	Unresolved []string
	// Variables is the deduplicated union of the resolved scales' required
	// variables, in first-reference order.
	Variables []domain.VariableDefinition
	// RequiredBy maps each variable name to the scale code names that need it.
	RequiredBy map[string][]string
}

// Resolver resolves scale codes against a catalog store. A lookup miss never
// aborts the batch: unknown scales are reported back, and a variable the
// catalog lacks a definition for is dropped so the affected scales surface a
// missing-variable error downstream instead.
type Resolver struct {
	store  domain.CatalogStore
	logger *logrus.Logger
}

// NewResolver creates a resolver over a catalog store
func NewResolver(store domain.CatalogStore, logger *logrus.Logger) *Resolver {
	return &Resolver{store: store, logger: logger}
}

// Resolve maps requested scale codes to their definitions and variable set.
// Store failures are logged and treated as misses so one degraded backend
// cannot take down a whole batch.
func (r *Resolver) Resolve(ctx context.Context, codes []string) *Resolution {
	res := &Resolution{
		RequiredBy: make(map[string][]string),
	}

	seenScales := make(map[string]bool)
	for _, code := range codes {
		if code == "" || seenScales[code] {
			continue
		}
		seenScales[code] = true

		scale, err := r.store.FindScaleByCode(ctx, code)
		if err != nil {
			r.logger.WithError(err).WithField("code_name", code).
				Warn("Catalog lookup failed, treating scale as unresolved")
			res.Unresolved = append(res.Unresolved, code)
			continue
		}
		if scale == nil {
			res.Unresolved = append(res.Unresolved, code)
			continue
		}
		res.Scales = append(res.Scales, *scale)
	}

	seenVariables := make(map[string]bool)
	for _, scale := range res.Scales {
		for _, name := range scale.RequiredVariables {
			res.RequiredBy[name] = append(res.RequiredBy[name], scale.CodeName)
			if seenVariables[name] {
				continue
			}
			seenVariables[name] = true

			variable, err := r.store.FindVariableByName(ctx, name)
			if err != nil {
				r.logger.WithError(err).WithField("variable", name).
					Warn("Variable lookup failed, dependent scales will report it missing")
				continue
			}
			if variable == nil {
				r.logger.WithField("variable", name).
					Warn("Catalog has no definition for required variable")
				continue
			}
			res.Variables = append(res.Variables, *variable)
		}
	}

	return res
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/clinical-scales-server/internal/domain"
	"github.com/clinical-scales-server/internal/formula"
)

// VerifyFormulaCoverage checks that every cataloged scale has a registered
// formula. A scale without one would fail every request with a calculation
// error, so the mismatch is surfaced at startup instead.
func VerifyFormulaCoverage(
	ctx context.Context,
	store domain.CatalogStore,
	registry *formula.Registry,
	logger *logrus.Logger,
) error {
	scales, err := store.ListScales(ctx)
	if err != nil {
		return fmt.Errorf("listing catalog scales: %w", err)
	}

	var missing []string
	for _, scale := range scales {
		if _, ok := registry.Lookup(scale.CodeName); !ok {
			missing = append(missing, scale.CodeName)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("cataloged scales without a registered formula: %s",
			strings.Join(missing, ", "))
	}

	logger.WithFields(logrus.Fields{
		"scales":   len(scales),
		"formulas": len(registry.Codes()),
	}).Info("Formula coverage verified")
	return nil
}

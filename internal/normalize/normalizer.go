// Package normalize converts extracted variable values into each variable's
// standard unit and fans them out to the scales that require them.
package normalize

import (
	"github.com/sirupsen/logrus"

	"github.com/clinical-scales-server/internal/domain"
)

// Normalizer applies unit normalization to extraction output. A value that
// cannot be normalized (illegal unit, failed conversion) is dropped, so the
// scales that need it report it missing instead of computing on a bad number.
type Normalizer struct {
	converter domain.UnitConverter
	logger    *logrus.Logger
}

// NewNormalizer creates a normalizer over a unit converter
func NewNormalizer(converter domain.UnitConverter, logger *logrus.Logger) *Normalizer {
	return &Normalizer{converter: converter, logger: logger}
}

// Normalize builds the per-scale value map. Every scale code gets an entry,
// empty when nothing was extracted for it; a variable is written only under
// the scales listed for it in requiredBy.
func (n *Normalizer) Normalize(
	extracted map[string]domain.ExtractedValue,
	variables []domain.VariableDefinition,
	requiredBy map[string][]string,
	scaleCodes []string,
) domain.NormalizedValues {
	values := make(domain.NormalizedValues, len(scaleCodes))
	for _, code := range scaleCodes {
		values[code] = make(map[string]domain.Value)
	}

	for i := range variables {
		variable := &variables[i]
		field, ok := extracted[variable.Name]
		if !ok || !field.Present() {
			continue
		}

		value, ok := n.normalizeOne(variable, &field)
		if !ok {
			continue
		}

		for _, code := range requiredBy[variable.Name] {
			if scaleValues, ok := values[code]; ok {
				scaleValues[variable.Name] = value
			}
		}
	}

	return values
}

// normalizeOne converts a single extracted value to its standard form
func (n *Normalizer) normalizeOne(
	variable *domain.VariableDefinition,
	field *domain.ExtractedValue,
) (domain.Value, bool) {
	if variable.Kind == domain.CATEGORICAL {
		return domain.TextValue(*field.Text), true
	}

	// Numerical: a missing unit falls back to the standard unit, which makes
	// the conversion an identity.
	unit := variable.StandardUnit
	if field.Unit != nil && *field.Unit != "" {
		unit = *field.Unit
	}

	if !variable.AllowsUnit(unit) {
		n.logger.WithFields(logrus.Fields{
			"variable": variable.Name,
			"unit":     unit,
		}).Warn("Extracted unit is not legal for variable, dropping value")
		return domain.Value{}, false
	}

	converted, err := n.converter.Convert(*field.Number, unit, variable.StandardUnit)
	if err != nil {
		n.logger.WithError(err).WithFields(logrus.Fields{
			"variable": variable.Name,
			"from":     unit,
			"to":       variable.StandardUnit,
		}).Warn("Unit conversion failed, dropping value")
		return domain.Value{}, false
	}

	return domain.NumberValue(converted), true
}

package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/clinical-scales-server/internal/domain"
	"github.com/clinical-scales-server/internal/formula"
)

// noInterpretation is returned when the interpretation table has no entry for
// the computed category.
const noInterpretation = "No interpretation available"

// Evaluator computes one terminal ScaleResult per scale from the normalized
// value map. Scale-level failures (missing inputs, formula errors) are data
// on the result, never an error return: one broken scale must not take down
// its batch.
type Evaluator struct {
	registry *formula.Registry
	logger   *logrus.Logger
}

// NewEvaluator creates an evaluator over the formula registry
func NewEvaluator(registry *formula.Registry, logger *logrus.Logger) *Evaluator {
	return &Evaluator{registry: registry, logger: logger}
}

// Evaluate computes the result for one scale
func (e *Evaluator) Evaluate(
	scale *domain.ScaleDefinition,
	values map[string]domain.Value,
	language string,
) domain.ScaleResult {
	result := domain.ScaleResult{
		Key:       scale.CodeName,
		ScaleName: scale.Name.Get(language),
	}

	// Completeness gate: every required variable must be present
	var missing []string
	for _, name := range scale.RequiredVariables {
		if _, ok := values[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		message := fmt.Sprintf("Missing variables: %s", strings.Join(missing, ", "))
		result.ErrorMessage = &message
		return result
	}

	def, ok := e.registry.Lookup(scale.CodeName)
	if !ok {
		message := fmt.Sprintf("Calculation error: no formula registered for scale %q", scale.CodeName)
		result.ErrorMessage = &message
		return result
	}

	score, err := def.Calculate(values)
	if err != nil {
		e.logger.WithError(err).WithField("scale", scale.CodeName).Warn("Scale calculation failed")
		message := fmt.Sprintf("Calculation error: %s", err.Error())
		result.ErrorMessage = &message
		return result
	}
	result.Value = &score

	// Interpretation: classifier category when one is registered, otherwise
	// the integer-truncation key used by point-sum tables.
	categoryKey := strconv.Itoa(int(score))
	if def.Classify != nil {
		categoryKey = def.Classify(values, score)
	}

	interpretation, ok := scale.Interpretation(language, categoryKey)
	if !ok {
		interpretation = noInterpretation
	}
	result.Interpretation = &interpretation

	return result
}

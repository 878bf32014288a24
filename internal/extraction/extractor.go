package extraction

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/clinical-scales-server/internal/domain"
)

// Extractor performs the single structured extraction call for a pipeline run.
type Extractor struct {
	llm    domain.LanguageModel
	model  string
	logger *logrus.Logger
}

// NewExtractor creates an extractor bound to a language model and model name
func NewExtractor(llm domain.LanguageModel, model string, logger *logrus.Logger) *Extractor {
	return &Extractor{llm: llm, model: model, logger: logger}
}

// rawField is the wire shape of one extracted variable. Categorical payloads
// leave Number nil; numerical payloads leave Text nil.
type rawField struct {
	Value        json.RawMessage `json:"value"`
	Unit         *string         `json:"unit"`
	ErrorMessage *string         `json:"errorMessage"`
}

// Extract runs one structured LLM call over the whole variable set and
// validates every field at the boundary. Model output that violates the
// catalog constraints (unknown enum value, NaN payloads, missing fields) is
// demoted to a not-mentioned result for that variable rather than failing the
// batch; only a transport-level failure returns an error.
func (e *Extractor) Extract(
	ctx context.Context,
	variables []domain.VariableDefinition,
	conversation string,
	language string,
) (map[string]domain.ExtractedValue, error) {
	if len(variables) == 0 {
		return map[string]domain.ExtractedValue{}, nil
	}

	prompt := BuildPrompt(variables, conversation, language)
	schema := BuildSchema(variables)

	e.logger.WithFields(logrus.Fields{
		"variables": len(variables),
		"language":  language,
		"model":     e.model,
	}).Info("Running structured variable extraction")

	fields, err := e.llm.ExtractStructured(ctx, prompt, schema, e.model)
	if err != nil {
		return nil, fmt.Errorf("structured extraction call failed: %w", err)
	}

	results := make(map[string]domain.ExtractedValue, len(variables))
	for i := range variables {
		variable := &variables[i]
		results[variable.Name] = e.parseField(variable, fields[variable.Name], language)
	}
	return results, nil
}

// parseField validates one raw field against its variable definition
func (e *Extractor) parseField(
	variable *domain.VariableDefinition,
	raw json.RawMessage,
	language string,
) domain.ExtractedValue {
	out := domain.ExtractedValue{
		Variable: variable.Name,
		Kind:     variable.Kind,
	}

	if len(raw) == 0 {
		return e.notMentioned(out, variable, language, "field absent from model output")
	}

	var field rawField
	if err := json.Unmarshal(raw, &field); err != nil {
		return e.notMentioned(out, variable, language, "field is not a valid extraction object")
	}

	if len(field.Value) == 0 || string(field.Value) == "null" {
		if field.ErrorMessage != nil && *field.ErrorMessage != "" {
			out.ErrorMessage = field.ErrorMessage
			return out
		}
		return e.notMentioned(out, variable, language, "")
	}

	switch variable.Kind {
	case domain.CATEGORICAL:
		var text string
		if err := json.Unmarshal(field.Value, &text); err != nil {
			return e.notMentioned(out, variable, language, "categorical value is not a string")
		}
		if !containsString(variable.PossibleValues, text) {
			return e.notMentioned(out, variable, language,
				fmt.Sprintf("value %q outside the catalog enum", text))
		}
		out.Text = &text

	case domain.NUMERICAL:
		var number float64
		if err := json.Unmarshal(field.Value, &number); err != nil {
			return e.notMentioned(out, variable, language, "numerical value is not a number")
		}
		out.Number = &number
		out.Unit = field.Unit

	default:
		return e.notMentioned(out, variable, language,
			fmt.Sprintf("unknown variable kind %q", variable.Kind))
	}

	return out
}

// notMentioned stamps the localized absence message onto the result
func (e *Extractor) notMentioned(
	out domain.ExtractedValue,
	variable *domain.VariableDefinition,
	language string,
	reason string,
) domain.ExtractedValue {
	if reason != "" {
		e.logger.WithFields(logrus.Fields{
			"variable": variable.Name,
			"reason":   reason,
		}).Warn("Demoting extraction field to not-mentioned")
	}
	message := NotMentionedMessage(variable, language)
	out.Text = nil
	out.Number = nil
	out.Unit = nil
	out.ErrorMessage = &message
	return out
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

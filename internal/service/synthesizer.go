package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/clinical-scales-server/internal/domain"
)

// Synthesizer produces the cross-scale narrative interpretation for session
// mode with a single free-text completion call.
type Synthesizer struct {
	llm       domain.LanguageModel
	model     string
	maxTokens int
	logger    *logrus.Logger
}

// NewSynthesizer creates a synthesizer bound to a language model
func NewSynthesizer(llm domain.LanguageModel, model string, maxTokens int, logger *logrus.Logger) *Synthesizer {
	if maxTokens <= 0 {
		maxTokens = 1000
	}
	return &Synthesizer{llm: llm, model: model, maxTokens: maxTokens, logger: logger}
}

// Synthesize builds the narrative over the successfully computed scales,
// grounded in the patient context.
func (s *Synthesizer) Synthesize(
	ctx context.Context,
	result *domain.PipelineResult,
	scales []domain.ScaleDefinition,
	patient domain.PatientContext,
	language string,
) (string, error) {
	summary := buildScalesSummary(result, scales)

	patientJSON, err := json.MarshalIndent(patient, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode patient context: %w", err)
	}

	prompt := fmt.Sprintf(`You are a clinical decision support system providing contextualized interpretation of clinical scales.

PATIENT CONTEXT:
%s

CALCULATED SCALES:
%s

Provide a comprehensive interpretation considering:
1. How these scales relate to each other
2. Patient-specific risk factors and context
3. Current medications and contraindications
4. Practical clinical recommendations
5. Follow-up and monitoring needs

Language: %s
Be concise, actionable, and evidence-based.`, patientJSON, summary, strings.ToUpper(language))

	s.logger.WithFields(logrus.Fields{
		"scales":   len(scales),
		"language": language,
		"model":    s.model,
	}).Info("Synthesizing narrative interpretation")

	narrative, err := s.llm.Complete(ctx, prompt, s.model, s.maxTokens)
	if err != nil {
		return "", fmt.Errorf("narrative synthesis call failed: %w", err)
	}
	return narrative, nil
}

// buildScalesSummary lists the successfully computed scales, one line each,
// with the per-scale synthesis hint when the catalog carries one.
func buildScalesSummary(result *domain.PipelineResult, scales []domain.ScaleDefinition) string {
	var lines []string
	for i := range scales {
		scale := &scales[i]
		scaleResult, ok := result.Scales[scale.CodeName]
		if !ok || scaleResult.Value == nil {
			continue
		}

		interpretation := ""
		if scaleResult.Interpretation != nil {
			interpretation = *scaleResult.Interpretation
		}
		lines = append(lines, fmt.Sprintf("- %s: %v - %s",
			scaleResult.ScaleName, *scaleResult.Value, interpretation))

		if scale.InterpretationPromptHint != "" {
			lines = append(lines, fmt.Sprintf("  Context: %s", scale.InterpretationPromptHint))
		}
	}
	return strings.Join(lines, "\n")
}

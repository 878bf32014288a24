// Package service wires catalog resolution, structured extraction, unit
// normalization and formula evaluation into the scale computation pipeline.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/clinical-scales-server/internal/catalog"
	"github.com/clinical-scales-server/internal/domain"
	"github.com/clinical-scales-server/internal/extraction"
	"github.com/clinical-scales-server/internal/normalize"
)

// calculatedBy tags persisted session records with their producer.
const calculatedBy = "ScalesCalculatorPipeline"

// Pipeline is the scale computation orchestrator. Per-scale and per-variable
// failures are aggregated into the result; only input validation and
// language-model transport failures surface as errors.
type Pipeline struct {
	resolver    *catalog.Resolver
	extractor   *extraction.Extractor
	normalizer  *normalize.Normalizer
	evaluator   *Evaluator
	synthesizer *Synthesizer
	sessions    domain.SessionStore
	logger      *logrus.Logger
}

// NewPipeline creates the pipeline. The synthesizer and session store are
// only exercised by session mode and may be nil when session mode is unused.
func NewPipeline(
	resolver *catalog.Resolver,
	extractor *extraction.Extractor,
	normalizer *normalize.Normalizer,
	evaluator *Evaluator,
	synthesizer *Synthesizer,
	sessions domain.SessionStore,
	logger *logrus.Logger,
) *Pipeline {
	return &Pipeline{
		resolver:    resolver,
		extractor:   extractor,
		normalizer:  normalizer,
		evaluator:   evaluator,
		synthesizer: synthesizer,
		sessions:    sessions,
		logger:      logger,
	}
}

// normalizeLanguage pins unknown language codes to English
func normalizeLanguage(language string) string {
	switch language {
	case domain.LanguageEN, domain.LanguageES, domain.LanguagePT:
		return language
	default:
		return domain.LanguageEN
	}
}

// ComputeScales runs the stateless pipeline: resolve, extract once,
// normalize, evaluate.
func (p *Pipeline) ComputeScales(
	ctx context.Context,
	codes []string,
	conversation string,
	language string,
) (*domain.PipelineResult, error) {
	if len(codes) == 0 {
		return nil, domain.NewValidationError("scales", "at least one scale code name is required", codes)
	}
	if conversation == "" {
		return nil, domain.NewValidationError("conversation", "conversation text is required", conversation)
	}
	language = normalizeLanguage(language)

	start := time.Now()
	resolution := p.resolver.Resolve(ctx, codes)

	result := &domain.PipelineResult{
		Scales:           make(map[string]domain.ScaleResult, len(resolution.Scales)),
		UnresolvedScales: resolution.Unresolved,
		Language:         language,
	}

	if len(resolution.Scales) == 0 {
		p.logger.WithField("unresolved", resolution.Unresolved).
			Warn("No requested scale resolved against the catalog")
		result.Values = domain.NormalizedValues{}
		return result, nil
	}

	extracted, err := p.extractor.Extract(ctx, resolution.Variables, conversation, language)
	if err != nil {
		return nil, domain.NewPipelineError(domain.ErrExtraction,
			"variable extraction failed", err.Error(), "")
	}

	scaleCodes := make([]string, 0, len(resolution.Scales))
	for _, scale := range resolution.Scales {
		scaleCodes = append(scaleCodes, scale.CodeName)
	}
	result.Values = p.normalizer.Normalize(extracted, resolution.Variables, resolution.RequiredBy, scaleCodes)

	for i := range resolution.Scales {
		scale := &resolution.Scales[i]
		result.Scales[scale.CodeName] = p.evaluator.Evaluate(scale, result.Values[scale.CodeName], language)
	}

	p.logger.WithFields(logrus.Fields{
		"requested":  len(codes),
		"resolved":   len(resolution.Scales),
		"unresolved": len(resolution.Unresolved),
		"duration":   time.Since(start),
	}).Info("Scale computation completed")

	return result, nil
}

// ComputeScaleSession runs the pipeline, synthesizes the narrative
// interpretation and persists the bundle to the session store. The computed
// scales stay valid on a late-stage failure: a synthesis error returns the
// session bundle (nil narrative, not persisted) alongside the error, and a
// persistence failure is reported on the result, not as an error.
func (p *Pipeline) ComputeScaleSession(
	ctx context.Context,
	codes []string,
	conversation string,
	patient domain.PatientContext,
	sessionID string,
	language string,
) (*domain.SessionResult, error) {
	if sessionID == "" {
		return nil, domain.NewValidationError("session_id", "session id is required", sessionID)
	}

	result, err := p.ComputeScales(ctx, codes, conversation, language)
	if err != nil {
		return nil, err
	}

	session := &domain.SessionResult{
		PipelineResult: *result,
		SessionID:      sessionID,
	}

	// The narrative covers only resolved scales; resolve again for their
	// definitions (served from the catalog cache on this second pass).
	resolution := p.resolver.Resolve(ctx, codes)

	narrative, err := p.synthesizer.Synthesize(ctx, result, resolution.Scales, patient, result.Language)
	if err != nil {
		p.logger.WithError(err).WithField("session_id", sessionID).
			Error("Narrative synthesis failed")
		return session, domain.NewPipelineError(domain.ErrSynthesis,
			"narrative synthesis failed", err.Error(), "")
	}
	session.Narrative = &narrative

	record := &domain.SessionRecord{
		ID:           uuid.New().String(),
		SessionID:    sessionID,
		Language:     result.Language,
		Scales:       result.Scales,
		Values:       result.Values,
		Narrative:    narrative,
		CalculatedBy: calculatedBy,
		CreatedAt:    time.Now().UTC(),
	}
	if err := p.sessions.SaveScaleSession(ctx, record); err != nil {
		p.logger.WithError(err).WithField("session_id", sessionID).
			Error("Failed to persist scale session")
		session.Persisted = false
		return session, nil
	}
	session.Persisted = true

	return session, nil
}

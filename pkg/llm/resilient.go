package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/clinical-scales-server/internal/domain"
)

// ResilientClient wraps a LanguageModel with per-operation circuit breakers.
// Extraction and synthesis trip independently: a flood of long synthesis
// timeouts must not block the short extraction calls.
type ResilientClient struct {
	inner domain.LanguageModel

	extractionBreaker *gobreaker.CircuitBreaker
	synthesisBreaker  *gobreaker.CircuitBreaker
}

// NewResilientClient wraps the given model with circuit breakers
func NewResilientClient(inner domain.LanguageModel, logger *logrus.Logger) *ResilientClient {
	onStateChange := func(name string, from gobreaker.State, to gobreaker.State) {
		logger.WithFields(logrus.Fields{
			"breaker": name,
			"from":    from.String(),
			"to":      to.String(),
		}).Warn("Circuit breaker state changed")
	}

	extractionBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "llm-extraction",
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: onStateChange,
	})

	synthesisBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "llm-synthesis",
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: onStateChange,
	})

	return &ResilientClient{
		inner:             inner,
		extractionBreaker: extractionBreaker,
		synthesisBreaker:  synthesisBreaker,
	}
}

// ExtractStructured delegates through the extraction breaker
func (r *ResilientClient) ExtractStructured(
	ctx context.Context,
	prompt string,
	schema domain.SchemaObject,
	model string,
) (map[string]json.RawMessage, error) {
	result, err := r.extractionBreaker.Execute(func() (interface{}, error) {
		return r.inner.ExtractStructured(ctx, prompt, schema, model)
	})
	if err != nil {
		if err == gobreaker.ErrOpenState {
			return nil, fmt.Errorf("language model unavailable (circuit breaker open)")
		}
		return nil, err
	}
	return result.(map[string]json.RawMessage), nil
}

// Complete delegates through the synthesis breaker
func (r *ResilientClient) Complete(ctx context.Context, prompt string, model string, maxTokens int) (string, error) {
	result, err := r.synthesisBreaker.Execute(func() (interface{}, error) {
		return r.inner.Complete(ctx, prompt, model, maxTokens)
	})
	if err != nil {
		if err == gobreaker.ErrOpenState {
			return "", fmt.Errorf("language model unavailable (circuit breaker open)")
		}
		return "", err
	}
	return result.(string), nil
}

// BreakerStates reports the current state of both circuit breakers
func (r *ResilientClient) BreakerStates() map[string]gobreaker.State {
	return map[string]gobreaker.State{
		"extraction": r.extractionBreaker.State(),
		"synthesis":  r.synthesisBreaker.State(),
	}
}

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinical-scales-server/internal/domain"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func testClient(serverURL string) *Client {
	return NewClient(domain.LLMConfig{
		BaseURL:   serverURL,
		APIKey:    "test-key",
		MaxTokens: 1024,
		Timeout:   5 * time.Second,
		RateLimit: 100,
	}, testLogger())
}

func extractionSchema() domain.SchemaObject {
	return domain.SchemaObject{
		"type": "object",
		"properties": map[string]interface{}{
			"creatinine": map[string]interface{}{"type": "object"},
		},
	}
}

func TestClient_ExtractStructured(t *testing.T) {
	var captured messagesRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, apiVersion, r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"content": [{
				"type": "tool_use",
				"name": "record_extracted_variables",
				"input": {"creatinine": {"value": 1.2, "unit": "mg/dL", "errorMessage": null}}
			}],
			"stop_reason": "tool_use"
		}`))
	}))
	defer server.Close()

	fields, err := testClient(server.URL).ExtractStructured(
		context.Background(), "extract the variables", extractionSchema(), "claude-sonnet-4-20250514")
	require.NoError(t, err)

	require.Contains(t, fields, "creatinine")
	assert.JSONEq(t, `{"value": 1.2, "unit": "mg/dL", "errorMessage": null}`, string(fields["creatinine"]))

	// The schema rides as the forced tool's input schema
	require.Len(t, captured.Tools, 1)
	assert.Equal(t, extractionTool, captured.Tools[0].Name)
	require.NotNil(t, captured.ToolChoice)
	assert.Equal(t, "tool", captured.ToolChoice.Type)
	assert.Equal(t, extractionTool, captured.ToolChoice.Name)
	assert.Equal(t, "claude-sonnet-4-20250514", captured.Model)
}

func TestClient_ExtractStructured_NoToolCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content": [{"type": "text", "text": "I cannot do that."}]}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).ExtractStructured(
		context.Background(), "extract", extractionSchema(), "model")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no record_extracted_variables tool call")
}

func TestClient_Complete(t *testing.T) {
	var captured messagesRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"content": [{"type": "text", "text": "Renal function is preserved."}]}`))
	}))
	defer server.Close()

	narrative, err := testClient(server.URL).Complete(
		context.Background(), "interpret the scales", "model", 500)
	require.NoError(t, err)

	assert.Equal(t, "Renal function is preserved.", narrative)
	assert.Equal(t, 500, captured.MaxTokens)
	assert.Empty(t, captured.Tools)
	assert.Nil(t, captured.ToolChoice)
}

func TestClient_Complete_DefaultMaxTokens(t *testing.T) {
	var captured messagesRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"content": [{"type": "text", "text": "ok"}]}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).Complete(context.Background(), "prompt", "model", 0)
	require.NoError(t, err)
	assert.Equal(t, 1024, captured.MaxTokens)
}

func TestClient_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"type": "rate_limit_error", "message": "Too many requests"}}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).Complete(context.Background(), "prompt", "model", 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate_limit_error")
	assert.Contains(t, err.Error(), "Too many requests")
}

func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"content": [{"type": "text", "text": "too late"}]}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := testClient(server.URL).Complete(ctx, "prompt", "model", 100)
	require.Error(t, err)
}

// flakyModel fails until the remaining budget is exhausted
type flakyModel struct {
	failures int
	calls    int
}

func (m *flakyModel) ExtractStructured(_ context.Context, _ string, _ domain.SchemaObject, _ string) (map[string]json.RawMessage, error) {
	m.calls++
	if m.calls <= m.failures {
		return nil, errors.New("upstream 529")
	}
	return map[string]json.RawMessage{}, nil
}

func (m *flakyModel) Complete(_ context.Context, _ string, _ string, _ int) (string, error) {
	m.calls++
	if m.calls <= m.failures {
		return "", errors.New("upstream 529")
	}
	return "narrative", nil
}

func TestResilientClient_PassesThrough(t *testing.T) {
	resilient := NewResilientClient(&flakyModel{}, testLogger())

	fields, err := resilient.ExtractStructured(context.Background(), "p", nil, "m")
	require.NoError(t, err)
	assert.NotNil(t, fields)

	narrative, err := resilient.Complete(context.Background(), "p", "m", 100)
	require.NoError(t, err)
	assert.Equal(t, "narrative", narrative)
}

func TestResilientClient_OpensAfterRepeatedFailures(t *testing.T) {
	inner := &flakyModel{failures: 100}
	resilient := NewResilientClient(inner, testLogger())

	for i := 0; i < 10; i++ {
		_, err := resilient.Complete(context.Background(), "p", "m", 100)
		require.Error(t, err)
	}

	// The breaker opened, so later calls never reach the inner model
	callsWhenOpen := inner.calls
	_, err := resilient.Complete(context.Background(), "p", "m", 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker open")
	assert.Equal(t, callsWhenOpen, inner.calls)
}

func TestResilientClient_BreakersAreIndependent(t *testing.T) {
	inner := &flakyModel{failures: 100}
	resilient := NewResilientClient(inner, testLogger())

	for i := 0; i < 10; i++ {
		_, _ = resilient.Complete(context.Background(), "p", "m", 100)
	}

	// Synthesis is open; extraction still reaches the inner model
	before := inner.calls
	_, err := resilient.ExtractStructured(context.Background(), "p", nil, "m")
	require.Error(t, err)
	assert.Greater(t, inner.calls, before)

	states := resilient.BreakerStates()
	assert.NotEqual(t, states["extraction"], states["synthesis"])
}

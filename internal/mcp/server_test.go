package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinical-scales-server/internal/catalog"
	"github.com/clinical-scales-server/internal/domain"
	"github.com/clinical-scales-server/internal/extraction"
	"github.com/clinical-scales-server/internal/formula"
	"github.com/clinical-scales-server/internal/normalize"
	"github.com/clinical-scales-server/internal/service"
	"github.com/clinical-scales-server/internal/units"
)

type stubModel struct {
	fields      map[string]json.RawMessage
	narrative   string
	completeErr error
}

func (m *stubModel) ExtractStructured(_ context.Context, _ string, _ domain.SchemaObject, _ string) (map[string]json.RawMessage, error) {
	return m.fields, nil
}

func (m *stubModel) Complete(_ context.Context, _ string, _ string, _ int) (string, error) {
	return m.narrative, m.completeErr
}

type stubSessions struct {
	records map[string]*domain.SessionRecord
}

func (s *stubSessions) SaveScaleSession(_ context.Context, record *domain.SessionRecord) error {
	s.records[record.SessionID] = record
	return nil
}

func (s *stubSessions) GetScaleSession(_ context.Context, sessionID string) (*domain.SessionRecord, error) {
	return s.records[sessionID], nil
}

func (s *stubSessions) Close() error { return nil }

func newTestMCPServer(t *testing.T, model *stubModel) (*Server, *stubSessions) {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	store := catalog.NewMemoryStore()
	sessions := &stubSessions{records: make(map[string]*domain.SessionRecord)}

	pipeline := service.NewPipeline(
		catalog.NewResolver(store, logger),
		extraction.NewExtractor(model, "extraction-model", logger),
		normalize.NewNormalizer(units.NewConverter(), logger),
		service.NewEvaluator(formula.NewRegistry(logger), logger),
		service.NewSynthesizer(model, "synthesis-model", 1000, logger),
		sessions,
		logger,
	)

	server, err := NewServer(pipeline, store, logger)
	require.NoError(t, err)
	return server, sessions
}

func renalFields() map[string]json.RawMessage {
	return map[string]json.RawMessage{
		"dialysis":   json.RawMessage(`{"value": "0", "errorMessage": null}`),
		"creatinine": json.RawMessage(`{"value": 1.0, "unit": "mg/dL", "errorMessage": null}`),
		"bilirubin":  json.RawMessage(`{"value": 0.8, "unit": "mg/dL", "errorMessage": null}`),
		"inr":        json.RawMessage(`{"value": 1.0, "unit": "ratio", "errorMessage": null}`),
		"sodium":     json.RawMessage(`{"value": 140, "unit": "mEq/L", "errorMessage": null}`),
	}
}

func textContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestNewServer(t *testing.T) {
	server, _ := newTestMCPServer(t, &stubModel{})

	assert.NotNil(t, server.mcpServer)
	assert.NotNil(t, server.pipeline)
	assert.NotNil(t, server.catalog)
}

func TestHandleComputeScales(t *testing.T) {
	server, _ := newTestMCPServer(t, &stubModel{fields: renalFields()})

	result, structured, err := server.handleComputeScales(context.Background(), nil, ComputeScalesParams{
		Scales:       []string{"meld"},
		Conversation: "creatinine 1.0 mg/dL, bilirubin 0.8, INR 1.0, sodium 140, no dialysis",
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)

	pipelineResult, ok := structured.(*domain.PipelineResult)
	require.True(t, ok)
	meld := pipelineResult.Scales["meld"]
	require.NotNil(t, meld.Value)
	assert.Equal(t, 6.0, *meld.Value)

	assert.Contains(t, textContent(t, result), `"scales"`)
}

func TestHandleComputeScales_ValidationFailure(t *testing.T) {
	server, _ := newTestMCPServer(t, &stubModel{})

	result, structured, err := server.handleComputeScales(context.Background(), nil, ComputeScalesParams{
		Scales: []string{"meld"},
	})
	require.NoError(t, err)
	assert.Nil(t, structured)
	assert.True(t, result.IsError)
	assert.Contains(t, textContent(t, result), "Error:")
}

func TestHandleComputeScaleSession(t *testing.T) {
	model := &stubModel{fields: renalFields(), narrative: "Hepatic function is preserved."}
	server, sessions := newTestMCPServer(t, model)

	result, structured, err := server.handleComputeScaleSession(context.Background(), nil, ComputeScaleSessionParams{
		Scales:       []string{"meld"},
		Conversation: "creatinine 1.0, bilirubin 0.8, INR 1.0, sodium 140, no dialysis",
		SessionID:    "session_42",
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)

	sessionResult, ok := structured.(*domain.SessionResult)
	require.True(t, ok)
	assert.True(t, sessionResult.Persisted)
	require.NotNil(t, sessionResult.Narrative)
	assert.Equal(t, "Hepatic function is preserved.", *sessionResult.Narrative)
	assert.NotNil(t, sessions.records["session_42"])
}

func TestHandleComputeScaleSession_SynthesisFailureCarriesScales(t *testing.T) {
	model := &stubModel{fields: renalFields(), completeErr: errors.New("model overloaded")}
	server, sessions := newTestMCPServer(t, model)

	result, structured, err := server.handleComputeScaleSession(context.Background(), nil, ComputeScaleSessionParams{
		Scales:       []string{"meld"},
		Conversation: "creatinine 1.0, bilirubin 0.8, INR 1.0, sodium 140, no dialysis",
		SessionID:    "session_42",
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, textContent(t, result), "Error:")

	// The computed bundle rides along with the error result
	sessionResult, ok := structured.(*domain.SessionResult)
	require.True(t, ok)
	meld := sessionResult.Scales["meld"]
	require.NotNil(t, meld.Value)
	assert.Equal(t, 6.0, *meld.Value)
	assert.Nil(t, sessionResult.Narrative)
	assert.False(t, sessionResult.Persisted)
	assert.Nil(t, sessions.records["session_42"])

	require.Len(t, result.Content, 2)
	bundle, ok := result.Content[1].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, bundle.Text, `"meld"`)
}

func TestHandleListScales(t *testing.T) {
	server, _ := newTestMCPServer(t, &stubModel{})

	result, structured, err := server.handleListScales(context.Background(), nil, ListScalesParams{})
	require.NoError(t, err)
	assert.False(t, result.IsError)

	listing, ok := structured.(ListScalesResult)
	require.True(t, ok)
	assert.GreaterOrEqual(t, listing.Count, 10)
	assert.Len(t, listing.Scales, listing.Count)
}

package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinical-scales-server/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func sampleRecord(sessionID string) *domain.SessionRecord {
	return &domain.SessionRecord{
		ID:        "8d0f4f0e-7c52-4f3a-9a51-2f2e2cf0a001",
		SessionID: sessionID,
		Language:  domain.LanguageEN,
		Scales: map[string]domain.ScaleResult{
			"meld": {
				Key:            "meld",
				ScaleName:      "MELD-Na Score",
				Value:          ptr(14.0),
				Interpretation: ptr("Moderate risk"),
			},
			"curb_65": {
				Key:          "curb_65",
				ScaleName:    "CURB-65 Score",
				ErrorMessage: ptr("Missing variables: confusion"),
			},
		},
		Values: domain.NormalizedValues{
			"meld": {
				"creatinine": domain.NumberValue(1.4),
				"dialysis":   domain.TextValue("0"),
			},
			"curb_65": {},
		},
		Narrative:    "Hepatic function is moderately impaired.",
		CalculatedBy: "ScalesCalculatorPipeline",
		CreatedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_SaveAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	record := sampleRecord("session_abc")
	require.NoError(t, store.SaveScaleSession(ctx, record))

	loaded, err := store.GetScaleSession(ctx, "session_abc")
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, record.ID, loaded.ID)
	assert.Equal(t, record.Language, loaded.Language)
	assert.Equal(t, record.Narrative, loaded.Narrative)
	assert.Equal(t, record.CalculatedBy, loaded.CalculatedBy)

	meld := loaded.Scales["meld"]
	require.NotNil(t, meld.Value)
	assert.Equal(t, 14.0, *meld.Value)
	require.NotNil(t, meld.Interpretation)
	assert.Equal(t, "Moderate risk", *meld.Interpretation)

	curb := loaded.Scales["curb_65"]
	assert.Nil(t, curb.Value)
	require.NotNil(t, curb.ErrorMessage)
	assert.Equal(t, "Missing variables: confusion", *curb.ErrorMessage)

	assert.InDelta(t, 1.4, loaded.Values["meld"]["creatinine"].Number, 1e-9)
	assert.Equal(t, "0", loaded.Values["meld"]["dialysis"].Text)
}

func TestSQLiteStore_SaveReplacesExistingSession(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := sampleRecord("session_abc")
	require.NoError(t, store.SaveScaleSession(ctx, first))

	second := sampleRecord("session_abc")
	second.ID = "11111111-2222-3333-4444-555555555555"
	second.Narrative = "Updated interpretation."
	require.NoError(t, store.SaveScaleSession(ctx, second))

	loaded, err := store.GetScaleSession(ctx, "session_abc")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, second.ID, loaded.ID)
	assert.Equal(t, "Updated interpretation.", loaded.Narrative)
}

func TestSQLiteStore_GetMissingSession(t *testing.T) {
	store := newTestStore(t)

	loaded, err := store.GetScaleSession(context.Background(), "no_such_session")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSQLiteStore_SessionsAreIndependent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveScaleSession(ctx, sampleRecord("session_one")))

	second := sampleRecord("session_two")
	second.ID = "11111111-2222-3333-4444-555555555555"
	require.NoError(t, store.SaveScaleSession(ctx, second))

	one, err := store.GetScaleSession(ctx, "session_one")
	require.NoError(t, err)
	two, err := store.GetScaleSession(ctx, "session_two")
	require.NoError(t, err)

	assert.Equal(t, "session_one", one.SessionID)
	assert.Equal(t, "session_two", two.SessionID)
}

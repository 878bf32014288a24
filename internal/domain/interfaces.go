package domain

import (
	"context"
	"encoding/json"
)

// CatalogStore is the read interface over the scale/variable catalog.
// Lookups return (nil, nil) when the entry does not exist; an error means
// the store itself failed.
type CatalogStore interface {
	FindScaleByCode(ctx context.Context, codeName string) (*ScaleDefinition, error)
	FindVariableByName(ctx context.Context, name string) (*VariableDefinition, error)
	ListScales(ctx context.Context) ([]ScaleDefinition, error)
}

// SchemaObject is a JSON-schema-shaped structural constraint passed to the
// language model for structured extraction
type SchemaObject map[string]interface{}

// LanguageModel is the external language-model collaborator. ExtractStructured
// performs one schema-constrained call and returns the raw per-field payloads;
// Complete performs one free-text completion.
type LanguageModel interface {
	ExtractStructured(ctx context.Context, prompt string, schema SchemaObject, model string) (map[string]json.RawMessage, error)
	Complete(ctx context.Context, prompt string, model string, maxTokens int) (string, error)
}

// UnitConverter converts scalar values between compatible clinical units
type UnitConverter interface {
	Convert(value float64, fromUnit, toUnit string) (float64, error)
	Compatible(unitA, unitB string) bool
	StandardUnit(measurementType string) (string, bool)
}

// SessionStore persists session result bundles into the patient record
type SessionStore interface {
	SaveScaleSession(ctx context.Context, record *SessionRecord) error
	GetScaleSession(ctx context.Context, sessionID string) (*SessionRecord, error)
	Close() error
}

// ConfigManager provides access to application configuration
type ConfigManager interface {
	GetConfig() *Config
	GetServerConfig() *ServerConfig
	Validate() error
}

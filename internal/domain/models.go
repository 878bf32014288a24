package domain

import (
	"time"
)

// Core Enums and Types

// VariableKind distinguishes categorical from numerical clinical variables
type VariableKind string

const (
	CATEGORICAL VariableKind = "categorical"
	NUMERICAL   VariableKind = "numerical"
)

// Supported result languages
const (
	LanguageEN = "en"
	LanguageES = "es"
	LanguagePT = "pt"
)

// LocalizedText maps a language code to display text
type LocalizedText map[string]string

// Get returns the text for the given language, falling back to English
func (t LocalizedText) Get(language string) string {
	if text, ok := t[language]; ok {
		return text
	}
	return t[LanguageEN]
}

// Catalog Models

// ScaleDefinition describes a clinical scoring instrument as stored in the catalog.
// Definitions are immutable for the duration of a pipeline run.
type ScaleDefinition struct {
	CodeName                 string                       `json:"code_name"`
	Name                     LocalizedText                `json:"name"`
	Description              string                       `json:"description,omitempty"`
	RequiredVariables        []string                     `json:"variables"`
	InterpretationTable      map[string]map[string]string `json:"interpretation_dict,omitempty"`
	InterpretationPromptHint string                       `json:"interpretation_prompt_for_llm,omitempty"`
	Categories               []string                     `json:"category,omitempty"`
}

// Interpretation looks up the localized interpretation text for a category key.
// The second return value reports whether the table had an entry.
func (s *ScaleDefinition) Interpretation(language, categoryKey string) (string, bool) {
	table, ok := s.InterpretationTable[language]
	if !ok {
		table, ok = s.InterpretationTable[LanguageEN]
		if !ok {
			return "", false
		}
	}
	text, ok := table[categoryKey]
	return text, ok
}

// VariableDefinition describes a single clinical datum consumed by one or more scales
type VariableDefinition struct {
	Name           string        `json:"name"`
	Kind           VariableKind  `json:"type"`
	Description    string        `json:"description"`
	MedicalName    LocalizedText `json:"medical_name"`
	PossibleValues []string      `json:"possible_values,omitempty"` // categorical only
	PossibleUnits  []string      `json:"possible_units,omitempty"`  // numerical only
	StandardUnit   string        `json:"standardized_unit_of_measurement,omitempty"`
}

// AllowsUnit reports whether the unit belongs to the variable's legal unit set
func (v *VariableDefinition) AllowsUnit(unit string) bool {
	for _, u := range v.PossibleUnits {
		if u == unit {
			return true
		}
	}
	return false
}

// Extraction Models

// ExtractedValue is the per-variable output of the structured extraction call.
// Exactly one of (value present) or (ErrorMessage set) holds per variable.
type ExtractedValue struct {
	Variable     string
	Kind         VariableKind
	Text         *string  // categorical value
	Number       *float64 // numerical value
	Unit         *string  // numerical only, may be absent
	ErrorMessage *string
}

// Present reports whether extraction produced a value for this variable
func (e *ExtractedValue) Present() bool {
	return e.Text != nil || e.Number != nil
}

// Normalized Value Models

// Value is a normalized variable value: a magnitude in the variable's standard
// unit for numerical variables, or the categorical string as extracted.
type Value struct {
	Kind   VariableKind `json:"kind"`
	Number float64      `json:"number,omitempty"`
	Text   string       `json:"text,omitempty"`
}

// NumberValue builds a numerical Value
func NumberValue(magnitude float64) Value {
	return Value{Kind: NUMERICAL, Number: magnitude}
}

// TextValue builds a categorical Value
func TextValue(text string) Value {
	return Value{Kind: CATEGORICAL, Text: text}
}

// NormalizedValues maps scale code name -> variable name -> normalized value.
// A variable is only ever written under scales that declare it as required.
type NormalizedValues map[string]map[string]Value

// Result Models

// ScaleResult is the terminal per-scale outcome of one pipeline run.
// All fields are always serialized so consumers can pattern-match uniformly.
type ScaleResult struct {
	Key            string   `json:"key"`
	ScaleName      string   `json:"scale_name"`
	Value          *float64 `json:"value"`
	Interpretation *string  `json:"interpretation"`
	Unit           *string  `json:"unit"`
	ErrorMessage   *string  `json:"error_message"`
}

// PipelineResult aggregates per-scale results plus the resolved values for auditability
type PipelineResult struct {
	Scales           map[string]ScaleResult `json:"scales"`
	Values           NormalizedValues       `json:"variables"`
	UnresolvedScales []string               `json:"unresolved_scales,omitempty"`
	Language         string                 `json:"language"`
}

// SessionResult extends PipelineResult with the narrative synthesis and
// persistence acknowledgment for session mode
type SessionResult struct {
	PipelineResult
	SessionID string  `json:"session_id"`
	Narrative *string `json:"llm_interpretation"`
	Persisted bool    `json:"emr_saved"`
}

// PatientContext is the opaque patient record payload fed to narrative synthesis
type PatientContext map[string]interface{}

// SessionRecord is the bundle handed to the session store after a session run
type SessionRecord struct {
	ID           string                 `json:"id"`
	SessionID    string                 `json:"session_id"`
	Language     string                 `json:"language"`
	Scales       map[string]ScaleResult `json:"scales"`
	Values       NormalizedValues       `json:"variables"`
	Narrative    string                 `json:"llm_interpretation"`
	CalculatedBy string                 `json:"calculated_by"`
	CreatedAt    time.Time              `json:"created_at"`
}

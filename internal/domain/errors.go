package domain

import (
	"fmt"
	"time"
)

// Error codes for different failure scenarios
const (
	ErrInvalidInput   = "INVALID_INPUT"
	ErrCatalogError   = "CATALOG_ERROR"
	ErrExtraction     = "EXTRACTION_ERROR"
	ErrUnitConversion = "UNIT_CONVERSION_ERROR"
	ErrCalculation    = "CALCULATION_ERROR"
	ErrSynthesis      = "SYNTHESIS_ERROR"
	ErrPersistence    = "PERSISTENCE_ERROR"
	ErrInternalServer = "INTERNAL_SERVER_ERROR"
)

// PipelineError represents a pipeline-level (fatal) error response.
// Per-variable and per-scale failures are carried as data on the result
// records instead; only collaborator transport failures use this type.
type PipelineError struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

// Error implements the error interface
func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewPipelineError creates a new PipelineError with timestamp
func NewPipelineError(code, message, details, requestID string) *PipelineError {
	return &PipelineError{
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
		RequestID: requestID,
	}
}

// ValidationError represents input validation errors
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Value:   value,
	}
}

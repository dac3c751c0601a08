package domain

import (
	"errors"
	"fmt"
)

// ============================================================================
// Serving Core Errors
// ============================================================================

// Load errors
var (
	ErrArtifactNotFound   = errors.New("model artifact not found")
	ErrIntegrityViolation = errors.New("model artifact integrity violation")
	ErrDeserialization    = errors.New("model artifact deserialization failed")
	ErrModelNotLoaded     = errors.New("model not loaded")
)

// Request errors
var (
	ErrValidation = errors.New("invalid prediction input")
	ErrInference  = errors.New("inference failed: model and metadata disagree")
)

// IntegrityError reports a digest or signature mismatch. It carries the
// expected and actual hex digests for audit logging, never the artifact
// bytes themselves.
type IntegrityError struct {
	Field    string // "digest" or "signature"
	Expected string
	Actual   string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s: %s mismatch (expected %s, actual %s)",
		ErrIntegrityViolation.Error(), e.Field, e.Expected, e.Actual)
}

func (e *IntegrityError) Unwrap() error { return ErrIntegrityViolation }

// ValidationError reports a malformed prediction request.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

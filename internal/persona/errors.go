// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package persona

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/digitaltwin/internal/validation"
)

// Error kinds. Every error returned by this package wraps exactly one of these,
// so callers can branch with errors.Is.
var (
	// ErrConfiguration reports an invalid cohort count relative to the number of
	// users or the demographic label list, or otherwise unusable settings.
	ErrConfiguration = errors.New("configuration error")

	// ErrEmptyCohort reports a cohort that received zero interactions.
	ErrEmptyCohort = errors.New("empty cohort")

	// ErrValidation reports a malformed concept or interaction event.
	ErrValidation = errors.New("validation error")
)

// ValidationError describes which fields of a value failed validation.
// It unwraps to ErrValidation.
type ValidationError struct {
	// Subject names the value being validated (e.g. "concept", "event 12").
	Subject string

	// Messages holds one human-readable message per failing field.
	Messages []string

	// Fields carries the per-field failures when the error came from struct
	// validation. Nil for checks made outside the validator.
	Fields *validation.RequestValidationError
}

// Error returns a combined message.
func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("invalid %s", e.Subject)
	}
	return fmt.Sprintf("invalid %s: %s", e.Subject, strings.Join(e.Messages, "; "))
}

// Unwrap returns ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// validate runs struct validation and converts failures into *ValidationError.
func validate(subject string, v interface{}) error {
	verr := validation.ValidateStruct(v)
	if verr == nil {
		return nil
	}

	fieldErrs := verr.Errors()
	messages := make([]string, 0, len(fieldErrs))
	for i := range fieldErrs {
		messages = append(messages, fieldErrs[i].Error())
	}
	return &ValidationError{Subject: subject, Messages: messages, Fields: verr}
}

// APIError renders the failure in the validation package's API error shape.
// Field and tag details are included when Fields is set.
func (e *ValidationError) APIError() *validation.APIError {
	if e.Fields != nil && len(e.Fields.Errors()) > 0 {
		apiErr := e.Fields.ToAPIError()
		apiErr.Message = fmt.Sprintf("invalid %s: %s", e.Subject, apiErr.Message)
		return apiErr
	}
	return &validation.APIError{
		Code:    "VALIDATION_ERROR",
		Message: e.Error(),
		Details: map[string]interface{}{"errors": e.Messages},
	}
}

func configErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrConfiguration)
}

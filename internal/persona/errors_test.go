// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package persona

import (
	"errors"
	"testing"
)

func TestValidationError_APIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantMessage string
		wantField   interface{}
		wantTag     interface{}
		wantErrors  bool
	}{
		{
			name:        "struct validation keeps field details",
			err:         ValidateConcept(Concept{Categories: []string{"tech"}}),
			wantMessage: "invalid concept: format is required",
			wantField:   "format",
			wantTag:     "required",
		},
		{
			name: "manual check lists messages",
			err: func() error {
				_, err := ExtractPreferences([]InteractionEvent{{UserID: "u", Category: "tech", Format: "video", TimeSpent: -1}})
				return err
			}(),
			wantMessage: "invalid event 0: time_spent must be a non-negative number",
			wantErrors:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var verr *ValidationError
			if !errors.As(tt.err, &verr) {
				t.Fatalf("error %v is not *ValidationError", tt.err)
			}
			apiErr := verr.APIError()
			if apiErr.Code != "VALIDATION_ERROR" {
				t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
			}
			if apiErr.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantMessage)
			}
			if apiErr.Details["field"] != tt.wantField {
				t.Errorf("Details[field] = %v, want %v", apiErr.Details["field"], tt.wantField)
			}
			if apiErr.Details["tag"] != tt.wantTag {
				t.Errorf("Details[tag] = %v, want %v", apiErr.Details["tag"], tt.wantTag)
			}
			if _, ok := apiErr.Details["errors"]; ok != tt.wantErrors {
				t.Errorf("Details[errors] present = %v, want %v", ok, tt.wantErrors)
			}
		})
	}
}

// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is created lazily and shared; it caches struct
// metadata and is safe for concurrent use. Field names in messages are the
// json names of the fields, so a failure on InteractionEvent.TimeSpent reads
// "time_spent must be greater than or equal to 0".
//
// Custom tags:
//
//	finite	float is neither NaN nor ±Inf
//
// Example:
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
package validation

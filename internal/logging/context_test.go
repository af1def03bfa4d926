// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestGenerateRequestID(t *testing.T) {
	t.Parallel()

	a := GenerateRequestID()
	b := GenerateRequestID()

	if a == b {
		t.Error("GenerateRequestID() returned duplicate IDs")
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("GenerateRequestID() = %q, not a UUID: %v", a, err)
	}
}

func TestContextIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if RequestIDFromContext(ctx) != "" {
		t.Error("RequestIDFromContext(empty) should be empty")
	}
	if BuildIDFromContext(ctx) != "" {
		t.Error("BuildIDFromContext(empty) should be empty")
	}

	ctx = ContextWithRequestID(ctx, "req-1")
	ctx = ContextWithBuildID(ctx, "build-1")

	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext() = %q, want req-1", got)
	}
	if got := BuildIDFromContext(ctx); got != "build-1" {
		t.Errorf("BuildIDFromContext() = %q, want build-1", got)
	}
}

func TestCtx_AddsFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))
	ctx = ContextWithRequestID(ctx, "req-42")
	ctx = ContextWithBuildID(ctx, "build-7")

	Ctx(ctx).Info().Msg("evaluated")

	output := buf.String()
	for _, want := range []string{`"request_id":"req-42"`, `"build_id":"build-7"`, "evaluated"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
}

func TestCtx_WithoutFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))

	Ctx(ctx).Info().Msg("plain")

	output := buf.String()
	if strings.Contains(output, "request_id") || strings.Contains(output, "build_id") {
		t.Errorf("unexpected context fields in output: %s", output)
	}
}

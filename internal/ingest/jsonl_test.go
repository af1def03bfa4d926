// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package ingest

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

const sampleJSONL = `{"user_id":"u1","category":"tech","format":"video","time_spent":12.5}
{"user_id":"u1","category":"food","format":"image","time_spent":3}

{"user_id":"u2","category":"fashion","format":"reel","time_spent":0}
`

func TestJSONLines_Load(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "events.jsonl", sampleJSONL)
	events, err := NewJSONLines(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	wantSample(t, events)
}

func TestDecodeJSONLines_BadLine(t *testing.T) {
	t.Parallel()

	input := `{"user_id":"u1","category":"tech","format":"video","time_spent":1}
{"user_id":
`
	_, err := DecodeJSONLines(context.Background(), strings.NewReader(input))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("DecodeJSONLines() error = %v, want line 2 error", err)
	}
}

func TestJSONLines_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := NewJSONLines(filepath.Join(t.TempDir(), "none.jsonl")).Load(context.Background()); err == nil {
		t.Error("Load() of missing file = nil error")
	}
}

// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package ingest

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/digitaltwin/internal/persona"
)

// maxLineBytes bounds a single JSON Lines record.
const maxLineBytes = 1 << 20

// JSONLines reads one JSON object per line:
//
//	{"user_id":"u1","category":"tech","format":"video","time_spent":12.5}
//
// Blank lines are skipped.
type JSONLines struct {
	path string
}

// NewJSONLines returns a reader for the file at path.
func NewJSONLines(path string) *JSONLines {
	return &JSONLines{path: path}
}

// Name returns "jsonl".
func (j *JSONLines) Name() string {
	return "jsonl"
}

// Load opens the file and decodes every record.
func (j *JSONLines) Load(ctx context.Context) ([]persona.InteractionEvent, error) {
	f, err := os.Open(j.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", j.path, err)
	}
	defer f.Close() //nolint:errcheck // read-only

	return DecodeJSONLines(ctx, f)
}

// DecodeJSONLines decodes JSON Lines records from r.
func DecodeJSONLines(ctx context.Context, r io.Reader) ([]persona.InteractionEvent, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	var events []persona.InteractionEvent
	for line := 1; scanner.Scan(); line++ {
		if line%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		var ev persona.InteractionEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan json lines: %w", err)
	}
	return events, nil
}

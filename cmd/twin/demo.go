// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/tomtom215/digitaltwin/internal/metrics"
	"github.com/tomtom215/digitaltwin/internal/persona"
)

// runDemo evaluates concept against every persona and prints the verdicts.
func runDemo(out io.Writer, registry *persona.Registry, concept persona.Concept) error {
	results, err := persona.EvaluateAll(registry, concept)
	if err != nil {
		return fmt.Errorf("evaluate concept: %w", err)
	}

	var b strings.Builder
	if concept.Description != "" {
		fmt.Fprintf(&b, "Concept: %s\n", concept.Description)
	}
	b.WriteString("Concept Evaluation Results:\n")
	b.WriteString(strings.Repeat("-", 50))
	b.WriteString("\n")
	for _, res := range results {
		metrics.RecordEvaluation(res.Verdict.Response.String(), res.Verdict.Score)
		fmt.Fprintf(&b, "%s: %s (score: %.2f)\n", res.PersonaID,
			strings.ToUpper(res.Verdict.Response.String()), res.Verdict.Score)
		fmt.Fprintf(&b, "Reason: %s\n\n", res.Verdict.Reason())
	}

	_, err = io.WriteString(out, b.String())
	return err
}

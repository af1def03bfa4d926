// Digital Twin - Behavioral Persona Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/digitaltwin

package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/tomtom215/digitaltwin/internal/config"
	"github.com/tomtom215/digitaltwin/internal/persona"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	cfg.Logging.Level = "error"
	return cfg
}

func TestRunWithConfig_Demo(t *testing.T) {
	cfg := testConfig(t)

	var out bytes.Buffer
	if err := runWithConfig(context.Background(), cfg, &out); err != nil {
		t.Fatalf("runWithConfig() error = %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Concept Evaluation Results:") {
		t.Errorf("missing header in:\n%s", text)
	}
	line := regexp.MustCompile(`(?m)^persona_\d: (YES|MAYBE|NO) \(score: \d+\.\d{2}\)$`)
	if got := len(line.FindAllString(text, -1)); got != cfg.Persona.Cohorts {
		t.Errorf("found %d verdict lines, want %d:\n%s", got, cfg.Persona.Cohorts, text)
	}
	if got := strings.Count(text, "Reason: "); got != cfg.Persona.Cohorts {
		t.Errorf("found %d reason lines, want %d", got, cfg.Persona.Cohorts)
	}
}

func TestRunWithConfig_BadSource(t *testing.T) {
	cfg := testConfig(t)
	cfg.Ingest.Source = config.SourceCSV
	cfg.Ingest.Path = t.TempDir() + "/missing.csv"

	if err := runWithConfig(context.Background(), cfg, &bytes.Buffer{}); err == nil {
		t.Error("runWithConfig() with missing file = nil error")
	}
}

func TestRunDemo_Format(t *testing.T) {
	t.Parallel()

	events := []persona.InteractionEvent{
		{UserID: "A", Category: "tech", Format: "video", TimeSpent: 20},
		{UserID: "B", Category: "food", Format: "video", TimeSpent: 10},
	}
	reg, err := persona.BuildPersonas(events, 1, []string{"25-34"}, 42)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	concept := persona.Concept{Categories: []string{"tech"}, Format: "video", TargetAge: "25-34", Description: "ad"}
	if err := runDemo(&out, reg, concept); err != nil {
		t.Fatal(err)
	}

	want := "Concept: ad\n" +
		"Concept Evaluation Results:\n" +
		strings.Repeat("-", 50) + "\n" +
		"persona_0: YES (score: 75.00)\n" +
		"Reason: Aligns with 25-34 age preferences Strong alignment with past engagement patterns\n\n"
	if out.String() != want {
		t.Errorf("output =\n%q\nwant\n%q", out.String(), want)
	}
}

func TestRunDemo_InvalidConcept(t *testing.T) {
	t.Parallel()

	reg, err := persona.BuildPersonas([]persona.InteractionEvent{
		{UserID: "A", Category: "tech", Format: "video", TimeSpent: 1},
	}, 1, []string{"x"}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := runDemo(&bytes.Buffer{}, reg, persona.Concept{}); err == nil {
		t.Error("runDemo() with empty concept = nil error")
	}
}

func TestNewHTTPServer(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	reg, err := persona.BuildPersonas([]persona.InteractionEvent{
		{UserID: "A", Category: "tech", Format: "video", TimeSpent: 1},
	}, 1, []string{"x"}, 1)
	if err != nil {
		t.Fatal(err)
	}

	srv := newHTTPServer(cfg, reg)
	if srv.Addr != cfg.Server.Address() || srv.ReadTimeout != cfg.Server.ReadTimeout {
		t.Errorf("server = %+v", srv)
	}

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("health status = %d", rec.Code)
	}
}

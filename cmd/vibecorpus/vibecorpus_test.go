// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/vibesearch/internal/corpus"
	"github.com/tomtom215/vibesearch/internal/recommend"
)

const testArtifact = `{"names":["Alpha","Beta","Gamma","alpha"],"embeddings":[[1,0],[1,0],[1,0],[0,0]]}`

func writeTestArtifact(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "embeddings.json")
	if err := os.WriteFile(path, []byte(testArtifact), 0o600); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd("1.0.0")

	if cmd.Use != "vibecorpus" {
		t.Errorf("expected Use='vibecorpus', got %q", cmd.Use)
	}
	if cmd.Version != "1.0.0" {
		t.Errorf("expected Version='1.0.0', got %q", cmd.Version)
	}
	for _, name := range []string{"format", "json", "log-level"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected persistent flag %q to exist", name)
		}
	}
	for _, name := range []string{"inspect", "convert", "clean-name", "query"} {
		if sub, _, err := cmd.Find([]string{name}); err != nil || sub.Name() != name {
			t.Errorf("expected subcommand %q", name)
		}
	}
}

func TestInspect(t *testing.T) {
	path := writeTestArtifact(t)

	out, err := execute(t, "inspect", path, "--json")
	if err != nil {
		t.Fatalf("inspect error = %v", err)
	}

	var got corpus.Stats
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if got.Songs != 4 || got.Dim != 2 {
		t.Errorf("unexpected size: %+v", got)
	}
	if len(got.DuplicateNames) != 1 || got.DuplicateNames[0] != "alpha" {
		t.Errorf("duplicate names = %v, want [alpha]", got.DuplicateNames)
	}
	if len(got.ZeroVectors) != 1 || got.ZeroVectors[0] != 3 {
		t.Errorf("zero vectors = %v, want [3]", got.ZeroVectors)
	}

	out, err = execute(t, "inspect", path)
	if err != nil {
		t.Fatalf("inspect error = %v", err)
	}
	if !strings.Contains(out, "songs:           4") {
		t.Errorf("expected song count in output: %s", out)
	}
}

func TestInspect_LoadError(t *testing.T) {
	_, err := execute(t, "inspect", filepath.Join(t.TempDir(), "missing.json"))

	var loadErr *corpus.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *corpus.LoadError, got %v", err)
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	src := writeTestArtifact(t)
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "embeddings.db")
	jsonPath := filepath.Join(dir, "back.json")

	if _, err := execute(t, "convert", src, dbPath); err != nil {
		t.Fatalf("convert to sqlite error = %v", err)
	}
	out, err := execute(t, "convert", dbPath, jsonPath)
	if err != nil {
		t.Fatalf("convert to json error = %v", err)
	}
	if !strings.Contains(out, "wrote 4 songs") {
		t.Errorf("unexpected output: %s", out)
	}

	original, err := corpus.Load(src, corpus.FormatJSON)
	if err != nil {
		t.Fatalf("load original: %v", err)
	}
	converted, err := corpus.Load(jsonPath, corpus.FormatJSON)
	if err != nil {
		t.Fatalf("load converted: %v", err)
	}
	if strings.Join(original.Names(), "|") != strings.Join(converted.Names(), "|") {
		t.Errorf("names changed: %v -> %v", original.Names(), converted.Names())
	}
}

func TestConvert_ExplicitTarget(t *testing.T) {
	src := writeTestArtifact(t)
	out := filepath.Join(t.TempDir(), "corpus.bin")

	if _, err := execute(t, "convert", src, out, "--to", "sqlite"); err != nil {
		t.Fatalf("convert error = %v", err)
	}
	c, err := corpus.Load(out, corpus.FormatSQLite)
	if err != nil {
		t.Fatalf("load converted: %v", err)
	}
	if c.Len() != 4 {
		t.Errorf("Len() = %d, want 4", c.Len())
	}

	if _, err := execute(t, "convert", src, filepath.Join(t.TempDir(), "corpus.bin")); !errors.Is(err, corpus.ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat for unknown extension, got %v", err)
	}
}

func TestCleanName(t *testing.T) {
	out, err := execute(t, "clean-name", "001-2285379-Square a Saw-Echoes.mp3", "07_intro.wav")
	if err != nil {
		t.Fatalf("clean-name error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{"Square a Saw - Echoes", "intro"}
	if len(lines) != len(want) {
		t.Fatalf("output lines = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestQuery(t *testing.T) {
	path := writeTestArtifact(t)

	out, err := execute(t, "query", path, "Beta", "--top-k", "2", "--json")
	if err != nil {
		t.Fatalf("query error = %v", err)
	}

	var got struct {
		Matched         string             `json:"matched"`
		Recommendations []recommend.Scored `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(out), &raw); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if e, ok := raw["error"]; !ok || string(e) != "null" {
		t.Errorf(`expected "error": null in output, got %s`, out)
	}
	if got.Matched != "Beta" {
		t.Errorf("matched = %q, want Beta", got.Matched)
	}
	if len(got.Recommendations) != 2 || got.Recommendations[0].Song != "Alpha" || got.Recommendations[1].Song != "Gamma" {
		t.Errorf("recommendations = %+v, want Alpha then Gamma", got.Recommendations)
	}
}

func TestQuery_NotFound(t *testing.T) {
	path := writeTestArtifact(t)

	_, err := execute(t, "query", path, "zzz-nonexistent")
	if !errors.Is(err, recommend.ErrSongNotFound) {
		t.Fatalf("expected ErrSongNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "zzz-nonexistent") {
		t.Errorf("expected query in error: %v", err)
	}
}

func TestQuery_NotFoundJSON(t *testing.T) {
	path := writeTestArtifact(t)

	out, err := execute(t, "query", path, "zzz-nonexistent", "--json")
	if !errors.Is(err, recommend.ErrSongNotFound) {
		t.Fatalf("expected ErrSongNotFound, got %v", err)
	}

	var got struct {
		Matched         *string           `json:"matched"`
		Recommendations []json.RawMessage `json:"recommendations"`
		Error           *string           `json:"error"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if got.Matched != nil {
		t.Errorf("matched = %q, want null", *got.Matched)
	}
	if got.Recommendations == nil || len(got.Recommendations) != 0 {
		t.Errorf("recommendations = %v, want []", got.Recommendations)
	}
	if got.Error == nil || !strings.Contains(*got.Error, "zzz-nonexistent") {
		t.Errorf("error = %v, want message naming the query", got.Error)
	}
}

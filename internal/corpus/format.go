// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tomtom215/vibesearch/internal/logging"
	"github.com/tomtom215/vibesearch/internal/metrics"
)

// Format identifies an artifact layout.
type Format string

const (
	FormatAuto   Format = "auto"
	FormatJSON   Format = "json"
	FormatSQLite Format = "sqlite"
)

// ParseFormat converts a configuration value to a Format. Empty means auto.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatSQLite:
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// DetectFormat picks a format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("%w: cannot infer format from %q", ErrUnknownFormat, filepath.Base(path))
	}
}

// Load reads the artifact at path. FormatAuto selects the layout by extension.
// Every failure is a *LoadError.
func Load(path string, format Format) (*Corpus, error) {
	start := time.Now()

	if format == "" || format == FormatAuto {
		detected, err := DetectFormat(path)
		if err != nil {
			return nil, loadError(path, err)
		}
		format = detected
	}

	if _, err := os.Stat(path); err != nil {
		return nil, loadError(path, err)
	}

	var (
		c   *Corpus
		err error
	)
	switch format {
	case FormatJSON:
		c, err = loadJSON(path)
	case FormatSQLite:
		c, err = loadSQLite(path)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, loadError(path, err)
	}

	elapsed := time.Since(start)
	metrics.RecordCorpusLoad(c.Len(), c.Dim(), elapsed)
	logging.Debug().
		Str("path", path).
		Str("format", string(format)).
		Int("songs", c.Len()).
		Int("dim", c.Dim()).
		Dur("duration", elapsed).
		Msg("Corpus artifact read")

	return c, nil
}

// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package corpus

import (
	"database/sql"
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCorpus(t *testing.T) *Corpus {
	t.Helper()
	c, err := New(
		[]string{"Alpha - One", "Beta - Two", "Gamma - Three"},
		[][]float32{{0.5, -1.25, 3}, {0, 1, 0}, {1e-3, 2.5, -7}},
	)
	require.NoError(t, err)
	return c
}

// writeRawSQLite stores pre-encoded embedding blobs, bypassing New.
func writeRawSQLite(t *testing.T, path string, names []string, blobs [][]byte) string {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(sqliteSchema)
	require.NoError(t, err)
	for i, name := range names {
		_, err = db.Exec(`INSERT INTO songs (position, name, embedding) VALUES (?, ?, ?)`, i, name, blobs[i])
		require.NoError(t, err)
	}
	return path
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatAuto, false},
		{"auto", FormatAuto, false},
		{"JSON", FormatJSON, false},
		{" sqlite ", FormatSQLite, false},
		{"pickle", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"data/embeddings.json", FormatJSON, false},
		{"data/EMBEDDINGS.JSON", FormatJSON, false},
		{"corpus.db", FormatSQLite, false},
		{"corpus.sqlite", FormatSQLite, false},
		{"corpus.sqlite3", FormatSQLite, false},
		{"embeddings.pkl", "", true},
		{"embeddings", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			got, err := DetectFormat(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "corpus.json")
	original := testCorpus(t)
	require.NoError(t, WriteJSON(original, path))

	loaded, err := Load(path, FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, original.Names(), loaded.Names())
	assert.Equal(t, original.Vectors(), loaded.Vectors())
}

func TestLoad_SQLiteRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "corpus.db")
	original := testCorpus(t)
	require.NoError(t, WriteSQLite(original, path))

	loaded, err := Load(path, FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, original.Names(), loaded.Names())
	assert.Equal(t, original.Vectors(), loaded.Vectors())
}

func TestWriteSQLite_Overwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "corpus.db")
	require.NoError(t, WriteSQLite(testCorpus(t), path))

	smaller, err := New([]string{"Only"}, [][]float32{{1, 2, 3}})
	require.NoError(t, err)
	require.NoError(t, WriteSQLite(smaller, path))

	loaded, err := Load(path, FormatSQLite)
	require.NoError(t, err)
	assert.Equal(t, []string{"Only"}, loaded.Names())
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
		return p
	}

	tests := []struct {
		name   string
		path   string
		format Format
		want   error
	}{
		{
			name:   "missing file",
			path:   filepath.Join(dir, "missing.json"),
			format: FormatAuto,
			want:   fs.ErrNotExist,
		},
		{
			name:   "missing sqlite file is not created",
			path:   filepath.Join(dir, "missing.db"),
			format: FormatAuto,
			want:   fs.ErrNotExist,
		},
		{
			name:   "unknown extension",
			path:   write("corpus.pkl", "{}"),
			format: FormatAuto,
			want:   ErrUnknownFormat,
		},
		{
			name:   "invalid json",
			path:   write("broken.json", `{"names": [`),
			format: FormatJSON,
			want:   ErrMalformedArtifact,
		},
		{
			name:   "missing names key",
			path:   write("nonames.json", `{"embeddings": [[1, 2]]}`),
			format: FormatJSON,
			want:   ErrMalformedArtifact,
		},
		{
			name:   "missing embeddings key",
			path:   write("noembeddings.json", `{"names": ["a"]}`),
			format: FormatJSON,
			want:   ErrMalformedArtifact,
		},
		{
			name:   "count mismatch",
			path:   write("mismatch.json", `{"names": ["a", "b"], "embeddings": [[1, 2]]}`),
			format: FormatJSON,
			want:   ErrCountMismatch,
		},
		{
			name:   "empty corpus",
			path:   write("empty.json", `{"names": [], "embeddings": []}`),
			format: FormatJSON,
			want:   ErrEmptyCorpus,
		},
		{
			name:   "ragged embeddings",
			path:   write("ragged.json", `{"names": ["a", "b"], "embeddings": [[1, 2], [3]]}`),
			format: FormatJSON,
			want:   ErrRaggedEmbeddings,
		},
		{
			name: "sqlite blob with NaN",
			path: writeRawSQLite(t, filepath.Join(dir, "nan.db"),
				[]string{"A", "Bad"},
				[][]byte{encodeEmbedding([]float32{1, 0}), encodeEmbedding([]float32{float32(math.NaN()), 1})}),
			format: FormatAuto,
			want:   ErrNonFiniteEmbedding,
		},
		{
			name: "sqlite blob with infinity",
			path: writeRawSQLite(t, filepath.Join(dir, "inf.sqlite"),
				[]string{"A"},
				[][]byte{encodeEmbedding([]float32{float32(math.Inf(1)), 0})}),
			format: FormatSQLite,
			want:   ErrNonFiniteEmbedding,
		},
		{
			name:   "json read as sqlite",
			path:   write("notadb.db", `{"names": []}`),
			format: FormatAuto,
			want:   ErrMalformedArtifact,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := Load(tt.path, tt.format)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, tt.want)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr), "expected *LoadError, got %T", err)
			assert.Equal(t, tt.path, loadErr.Path)
		})
	}

	_, err := os.Stat(filepath.Join(dir, "missing.db"))
	assert.True(t, errors.Is(err, fs.ErrNotExist), "Load must not create a missing sqlite file")
}

func TestEmbeddingBlob(t *testing.T) {
	t.Parallel()

	v := []float32{1.5, -2.25, 0, 3.4028235e38}
	got, err := decodeEmbedding(encodeEmbedding(v))
	require.NoError(t, err)
	assert.Equal(t, v, got)

	_, err = decodeEmbedding([]byte{1, 2, 3})
	assert.Error(t, err)
	_, err = decodeEmbedding(nil)
	assert.Error(t, err)
}

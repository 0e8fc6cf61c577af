// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanSongName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"001-2285379-Square a Saw-Echoes.mp3", "Square a Saw - Echoes"},
		{"/music/014-1190021-Artist-Title-With-Dashes.flac", "Artist - Title-With-Dashes"},
		{"07 Intro.wav", "Intro"},
		{"12_-_Outro.ogg", "Outro"},
		{"Plain Song.mp3", "Plain Song"},
		{"12345.mp3", "12345"},
		{"a-b-c.mp3", "a-b-c"},
		{"track.v2.mp3", "track.v2"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CleanSongName(tt.input))
		})
	}
}

// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package corpus

import (
	"path/filepath"
	"regexp"
	"strings"
)

var leadingTrackNumber = regexp.MustCompile(`^[0-9]+[-_\s]*`)

// CleanSongName turns an audio filename into a display name.
//
// Jamendo-style names "NNN-NNNNNNN-Artist-Title.ext" become "Artist - Title";
// dashes inside the title are kept. Other names lose their extension and any
// leading track number.
//
//	CleanSongName("001-2285379-Square a Saw-Echoes.mp3") // "Square a Saw - Echoes"
//	CleanSongName("07 Intro.flac")                       // "Intro"
func CleanSongName(filename string) string {
	base := filepath.Base(filename)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = base
	}

	if parts := strings.Split(stem, "-"); len(parts) >= 4 {
		return parts[2] + " - " + strings.Join(parts[3:], "-")
	}

	if cleaned := leadingTrackNumber.ReplaceAllString(stem, ""); cleaned != "" {
		return cleaned
	}
	return stem
}

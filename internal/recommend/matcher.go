// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package recommend

import "strings"

// Matcher resolves free-text queries to corpus positions.
type Matcher struct {
	folded []string
	index  map[string]int
}

// NewMatcher builds the case-folded name index. Later duplicates overwrite earlier ones.
func NewMatcher(names []string) *Matcher {
	m := &Matcher{
		folded: make([]string, len(names)),
		index:  make(map[string]int, len(names)),
	}
	for i, name := range names {
		key := fold(name)
		m.folded[i] = key
		m.index[key] = i
	}
	return m
}

// Find returns the position of the song matching query, trying an exact
// case-insensitive match first and then the first substring match in corpus order.
func (m *Matcher) Find(query string) (int, bool) {
	q := fold(query)

	if i, ok := m.index[q]; ok {
		return i, true
	}

	for i, name := range m.folded {
		if strings.Contains(name, q) {
			return i, true
		}
	}

	return -1, false
}

func fold(s string) string {
	return strings.ToLower(s)
}

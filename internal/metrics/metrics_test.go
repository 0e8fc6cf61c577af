// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/recommend", "200"))

	RecordAPIRequest("POST", "/recommend", "200", 3*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/recommend", "200"))
	if after-before != 1 {
		t.Errorf("expected api_requests_total to increase by 1, got %v", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("expected active requests %v, got %v", before+1, got)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("expected active requests %v, got %v", before, got)
	}
}

func TestRecordCorpusLoad(t *testing.T) {
	RecordCorpusLoad(42, 512, 250*time.Millisecond)

	if got := testutil.ToFloat64(CorpusSongsLoaded); got != 42 {
		t.Errorf("expected corpus_songs_loaded 42, got %v", got)
	}
	if got := testutil.ToFloat64(CorpusEmbeddingDimension); got != 512 {
		t.Errorf("expected corpus_embedding_dimension 512, got %v", got)
	}
	if got := testutil.ToFloat64(CorpusLoadDuration); got != 0.25 {
		t.Errorf("expected corpus_load_duration_seconds 0.25, got %v", got)
	}
}

func TestRecordRecommendation(t *testing.T) {
	tests := []struct {
		name    string
		matched bool
		outcome string
	}{
		{"match", true, OutcomeMatch},
		{"no match", false, OutcomeNoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(RecommendRequestsTotal.WithLabelValues(tt.outcome))
			RecordRecommendation(tt.matched, time.Microsecond)
			after := testutil.ToFloat64(RecommendRequestsTotal.WithLabelValues(tt.outcome))
			if after-before != 1 {
				t.Errorf("expected %s counter to increase by 1, got %v", tt.outcome, after-before)
			}
		})
	}
}

func TestRecordRecommendCache(t *testing.T) {
	hits := testutil.ToFloat64(RecommendCacheHits)
	misses := testutil.ToFloat64(RecommendCacheMisses)

	RecordRecommendCache(false, 1)
	RecordRecommendCache(true, 1)

	if got := testutil.ToFloat64(RecommendCacheHits) - hits; got != 1 {
		t.Errorf("expected 1 new cache hit, got %v", got)
	}
	if got := testutil.ToFloat64(RecommendCacheMisses) - misses; got != 1 {
		t.Errorf("expected 1 new cache miss, got %v", got)
	}
	if got := testutil.ToFloat64(RecommendCacheEntries); got != 1 {
		t.Errorf("expected recommend_cache_entries 1, got %v", got)
	}
}

// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package recommend

import (
	"context"
	"reflect"
	"sync"
	"testing"
	"time"
)

func TestCachedRecommender(t *testing.T) {
	t.Parallel()

	base := newTestRecommender(t,
		[]string{"Alpha - One", "Beta - Two", "Gamma - Three"},
		[][]float32{{1, 0}, {0.7, 0.3}, {0, 1}},
	)
	cached := NewCached(base, 16, time.Minute)
	ctx := context.Background()

	first := cached.Recommend(ctx, "alpha", 2)
	second := cached.Recommend(ctx, "alpha", 2)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical cached result, got %+v and %+v", first, second)
	}
	if !reflect.DeepEqual(first, base.Recommend(ctx, "alpha", 2)) {
		t.Error("expected cached result to equal uncached result")
	}

	hits, misses, size := cached.CacheStats()
	if hits != 1 || misses != 1 || size != 1 {
		t.Errorf("expected stats (1, 1, 1), got (%d, %d, %d)", hits, misses, size)
	}

	// topK is part of the key
	if m := mustMatch(t, cached.Recommend(ctx, "alpha", 1)); len(m.Recommendations) != 1 {
		t.Errorf("expected 1 recommendation for topK=1, got %d", len(m.Recommendations))
	}

	// NoMatch keeps the caller's query text
	for _, q := range []string{"Missing", "missing"} {
		nm, ok := cached.Recommend(ctx, q, 5).(NoMatch)
		if !ok {
			t.Fatalf("expected NoMatch for %q", q)
		}
		if nm.Query != q {
			t.Errorf("expected NoMatch query %q, got %q", q, nm.Query)
		}
	}

	if cached.Len() != 3 {
		t.Errorf("expected embedded Len 3, got %d", cached.Len())
	}
}

func TestCachedRecommender_Concurrent(t *testing.T) {
	t.Parallel()

	cached := NewCached(newTestRecommender(t,
		[]string{"A", "B", "C", "D"},
		[][]float32{{1, 0}, {0.9, 0.1}, {0.1, 0.9}, {0, 1}},
	), 2, time.Minute)

	queries := []string{"a", "b", "c", "d", "zzz"}
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				cached.Recommend(context.Background(), queries[(g+i)%len(queries)], 2)
			}
		}(g)
	}
	wg.Wait()

	if _, _, size := cached.CacheStats(); size > 2 {
		t.Errorf("expected at most 2 cached entries, got %d", size)
	}
}

func TestCachedRecommender_CleanupExpired(t *testing.T) {
	t.Parallel()

	cached := NewCached(newTestRecommender(t,
		[]string{"A", "B"},
		[][]float32{{1, 0}, {0, 1}},
	), 8, time.Millisecond)

	cached.Recommend(context.Background(), "a", 1)
	time.Sleep(10 * time.Millisecond)

	if removed := cached.CleanupExpired(); removed != 1 {
		t.Errorf("expected 1 expired entry removed, got %d", removed)
	}
	if _, _, size := cached.CacheStats(); size != 0 {
		t.Errorf("expected empty cache after cleanup, got %d", size)
	}
}

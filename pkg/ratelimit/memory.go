package ratelimit

import (
	"context"
	"sync"
	"time"
)

// sweepInterval is how often MemoryStore drops windows that went idle.
const sweepInterval = time.Minute

type memoryWindow struct {
	hits   []time.Time
	window time.Duration
}

// MemoryStore is a process-local sliding window store. Counts are not shared
// between replicas; use RedisStore for that.
type MemoryStore struct {
	mu        sync.Mutex
	windows   map[string]*memoryWindow
	lastSweep time.Time
	now       func() time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		windows: make(map[string]*memoryWindow),
		now:     time.Now,
	}
}

func (s *MemoryStore) Allow(_ context.Context, key string, limit int, window time.Duration) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)

	w, ok := s.windows[key]
	if !ok {
		w = &memoryWindow{}
	}
	w.window = window
	w.hits = prune(w.hits, now.Add(-window))

	res := Result{Limit: limit}
	if len(w.hits) < limit {
		w.hits = append(w.hits, now)
		res.Allowed = true
		res.Remaining = limit - len(w.hits)
	}
	if len(w.hits) > 0 {
		res.ResetAt = w.hits[0].Add(window)
		s.windows[key] = w
	} else {
		res.ResetAt = now.Add(window)
		delete(s.windows, key)
	}

	return res, nil
}

// sweep drops every key whose newest hit has left its window. It runs at most
// once per sweepInterval.
func (s *MemoryStore) sweep(now time.Time) {
	if now.Sub(s.lastSweep) < sweepInterval {
		return
	}
	s.lastSweep = now

	for key, w := range s.windows {
		if len(w.hits) == 0 || !w.hits[len(w.hits)-1].Add(w.window).After(now) {
			delete(s.windows, key)
		}
	}
}

// prune drops timestamps at or before cutoff. hits is sorted ascending.
func prune(hits []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for ; i < len(hits); i++ {
		if hits[i].After(cutoff) {
			break
		}
	}

	return hits[i:]
}

package pipeline

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cachedResult pairs a computed result with its expiry bookkeeping.
type cachedResult struct {
	result *Result
	built  time.Time
	ttl    time.Duration
}

// isExpired returns true if this entry has outlived its TTL.
func (c *cachedResult) isExpired() bool {
	if c.ttl == 0 {
		return true // No caching
	}
	return time.Since(c.built) > c.ttl
}

// Store memoizes pipeline results keyed by spec identity (resolved source
// names plus matching options). Entries expire after their spec's TTL and can
// be invalidated explicitly; there is no file-change detection. The zero-value
// of the map is managed internally, so NewStore is the only constructor.
//
// Results are immutable once stored, so concurrent sessions may share a Store
// safely; one session can never corrupt another's cached result.
type Store struct {
	mu      sync.RWMutex
	results map[string]*cachedResult
	sf      singleflight.Group
}

// NewStore creates an empty result store.
func NewStore() *Store {
	return &Store{results: make(map[string]*cachedResult)}
}

// defaultStore is the process-wide store used by the package-level helpers.
var defaultStore = NewStore()

// GetOrCompute returns the memoized result for the spec, running the pipeline
// on a miss or after expiry. Concurrent callers with the same key share one
// computation via singleflight. A spec with zero TTL bypasses the store.
func (s *Store) GetOrCompute(ctx context.Context, spec *Spec) (*Result, error) {
	if spec.CacheTTL == 0 {
		return Run(ctx, spec)
	}

	key := spec.CacheKey()

	// Fast path: fresh entry already present
	s.mu.RLock()
	entry, exists := s.results[key]
	s.mu.RUnlock()

	if exists && !entry.isExpired() {
		return entry.result, nil
	}

	// Slow path: compute under singleflight to prevent stampedes
	result, err, _ := s.sf.Do(key, func() (interface{}, error) {
		// Double-check after acquiring the singleflight slot
		s.mu.RLock()
		entry, exists := s.results[key]
		s.mu.RUnlock()

		if exists && !entry.isExpired() {
			return entry.result, nil
		}

		computed, err := Run(ctx, spec)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.results[key] = &cachedResult{result: computed, built: time.Now(), ttl: spec.CacheTTL}
		s.mu.Unlock()

		return computed, nil
	})

	if err != nil {
		return nil, err
	}

	return result.(*Result), nil
}

// Invalidate removes the entry for the spec, forcing the next GetOrCompute to
// recompute. Useful after the underlying files change, and for tests.
func (s *Store) Invalidate(spec *Spec) {
	s.mu.Lock()
	delete(s.results, spec.CacheKey())
	s.mu.Unlock()
}

// GetOrCompute runs against the process-wide default store.
func GetOrCompute(ctx context.Context, spec *Spec) (*Result, error) {
	return defaultStore.GetOrCompute(ctx, spec)
}

// Invalidate removes the spec's entry from the process-wide default store.
func Invalidate(spec *Spec) {
	defaultStore.Invalidate(spec)
}

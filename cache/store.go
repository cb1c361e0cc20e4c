package cache

import (
	"sync"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/solguard/solguard/result"
)

// Store is the cache interface the engine probes before running rules and
// stores a result into afterward.
type Store interface {
	Probe(fp Fingerprint) (result.PerFileResult, bool)
	Store(fp Fingerprint, res result.PerFileResult)
	GetOrCompute(fp Fingerprint, compute func() (result.PerFileResult, error)) (result.PerFileResult, bool, error)
	Stats() Stats
}

// Stats exposes hit/miss counters for observability.
type Stats struct {
	Hits   int64
	Misses int64
}

type entry struct {
	result    result.PerFileResult
	createdAt time.Time
	hitCount  atomic.Int64
}

// LRUStore is a bounded, TTL-aware, single-flight-guarded Store.
type LRUStore struct {
	lru *lru.Cache[Fingerprint, *entry]
	ttl time.Duration
	sf  singleflight.Group

	mu     sync.Mutex
	hits   int64
	misses int64
}

// NewLRUStore returns a Store bounded to maxEntries with the given TTL (zero
// TTL means entries never expire by age).
func NewLRUStore(maxEntries int, ttl time.Duration) (*LRUStore, error) {
	c, err := lru.New[Fingerprint, *entry](maxEntries)
	if err != nil {
		return nil, err
	}
	return &LRUStore{lru: c, ttl: ttl}, nil
}

// Probe returns the cached result for fp, if present and not expired,
// recording the lookup in the hit/miss stats.
func (s *LRUStore) Probe(fp Fingerprint) (result.PerFileResult, bool) {
	res, ok := s.peek(fp)
	if ok {
		s.recordHit()
	} else {
		s.recordMiss()
	}
	return res, ok
}

// peek looks up fp without touching the stats counters, for callers that
// already accounted for this fingerprint's outcome or that re-check the
// cache as a no-op fast path rather than a real probe.
func (s *LRUStore) peek(fp Fingerprint) (result.PerFileResult, bool) {
	e, ok := s.lru.Get(fp)
	if !ok {
		return result.PerFileResult{}, false
	}
	if s.ttl > 0 && time.Since(e.createdAt) > s.ttl {
		s.lru.Remove(fp)
		return result.PerFileResult{}, false
	}
	e.hitCount.Add(1)
	return e.result, true
}

// Store records res under fp. Last writer wins: a second Store call for the
// same fp simply replaces the entry.
func (s *LRUStore) Store(fp Fingerprint, res result.PerFileResult) {
	s.lru.Add(fp, &entry{result: res, createdAt: time.Now()})
}

// GetOrCompute probes the cache; on a miss, it runs compute under a
// per-fingerprint single-flight guard so that at most one analysis for a
// given fingerprint runs concurrently across workers, then stores and
// returns the computed result. The second return value reports whether the
// result came from the cache.
func (s *LRUStore) GetOrCompute(fp Fingerprint, compute func() (result.PerFileResult, error)) (result.PerFileResult, bool, error) {
	if res, ok := s.Probe(fp); ok {
		return res, true, nil
	}

	v, err, _ := s.sf.Do(string(fp), func() (any, error) {
		// Re-check without recording stats: the outer Probe above already
		// counted this lookup as a miss, and another flight may have stored
		// the result while this caller was waiting to acquire the
		// singleflight key.
		if res, ok := s.peek(fp); ok {
			return res, nil
		}
		res, err := compute()
		if err != nil {
			return result.PerFileResult{}, err
		}
		s.Store(fp, res)
		return res, nil
	})
	if err != nil {
		return result.PerFileResult{}, false, err
	}
	return v.(result.PerFileResult), false, nil
}

// Stats returns a snapshot of hit/miss counters.
func (s *LRUStore) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{Hits: s.hits, Misses: s.misses}
}

func (s *LRUStore) recordHit() {
	s.mu.Lock()
	s.hits++
	s.mu.Unlock()
}

func (s *LRUStore) recordMiss() {
	s.mu.Lock()
	s.misses++
	s.mu.Unlock()
}

// Package cache implements the content-addressed per-file result cache:
// fingerprinting, bounded LRU storage with TTL expiry, and single-flight
// deduplication of concurrent identical computations.
package cache

import (
	"encoding/binary"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint is the cache key: a stable hash over source bytes, the active
// rule-set signature, the effective config signature, and the engine
// version.
type Fingerprint string

// RuleSetSignature is a stable string identifying the exact set and order of
// rules that will run, produced by callers (typically the engine) from a
// registry snapshot — e.g. "ruleid@severity,ruleid@severity,...".
type RuleSetSignature string

// ConfigSignature is a stable string identifying the effective config,
// typically a canonical JSON/text encoding of config.Effective.Rules.
type ConfigSignature string

// EngineVersion identifies the engine build; bumping it invalidates every
// cache entry, since rule behavior for a given id may have changed.
type EngineVersion string

// Compute derives a Fingerprint from the file's source bytes plus the
// signatures that, together with the bytes, fully determine the analysis
// outcome: the active rule set, the effective config, and the engine build.
func Compute(source []byte, rules RuleSetSignature, cfg ConfigSignature, version EngineVersion) Fingerprint {
	h := xxhash.New()
	writeFramed(h, source)
	writeFramed(h, []byte(rules))
	writeFramed(h, []byte(cfg))
	writeFramed(h, []byte(version))
	return Fingerprint(strconv.FormatUint(h.Sum64(), 16))
}

// writeFramed writes a length-prefixed chunk so that concatenation
// boundaries between fields can never collide (e.g. source="ab"+rules="c"
// must hash differently from source="a"+rules="bc").
func writeFramed(h *xxhash.Digest, b []byte) {
	var lenBuf [8]byte
	binary.BigEndian.PutUint64(lenBuf[:], uint64(len(b)))
	_, _ = h.Write(lenBuf[:])
	_, _ = h.Write(b)
}

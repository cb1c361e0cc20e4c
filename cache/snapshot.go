package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/solguard/solguard/internal/errs"
	"github.com/solguard/solguard/internal/xlog"
	"github.com/solguard/solguard/result"
)

const snapshotFileName = "solguard-cache.json"

type snapshotEntry struct {
	Fingerprint Fingerprint          `json:"fingerprint"`
	Result      result.PerFileResult `json:"result"`
	CreatedAt   time.Time            `json:"created_at"`
	HitCount    int64                `json:"hit_count"`
}

// Save snapshots every entry in s to a single file under dir.
func Save(s *LRUStore, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &errs.CacheError{Op: "save", Err: err}
	}

	entries := make([]snapshotEntry, 0, len(s.lru.Keys()))
	for _, key := range s.lru.Keys() {
		e, ok := s.lru.Peek(key)
		if !ok {
			continue
		}
		entries = append(entries, snapshotEntry{
			Fingerprint: key,
			Result:      e.result,
			CreatedAt:   e.createdAt,
			HitCount:    e.hitCount.Load(),
		})
	}

	bs, err := json.Marshal(entries)
	if err != nil {
		return &errs.CacheError{Op: "save", Err: err}
	}

	path := filepath.Join(dir, snapshotFileName)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, bs, 0o644); err != nil {
		return &errs.CacheError{Op: "save", Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		return &errs.CacheError{Op: "save", Err: err}
	}
	return nil
}

// Load restores entries from the snapshot file under dir into s. A missing
// file is not an error (fresh cache). A corrupt snapshot is discarded with a
// warning via log, never a fatal error.
func Load(s *LRUStore, dir string, log xlog.Logger) error {
	log = xlog.OrNoOp(log)
	path := filepath.Join(dir, snapshotFileName)

	bs, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		log.WithField("path", path).Warnf("cache snapshot unreadable, starting cold: %v", err)
		return nil
	}

	var entries []snapshotEntry
	if err := json.Unmarshal(bs, &entries); err != nil {
		log.WithField("path", path).Warnf("corrupt cache snapshot discarded: %v", err)
		return nil
	}

	for _, se := range entries {
		e := &entry{result: se.Result, createdAt: se.CreatedAt}
		e.hitCount.Store(se.HitCount)
		s.lru.Add(se.Fingerprint, e)
	}
	return nil
}

// Package watch triggers re-analysis when a watched file changes, backed by
// fsnotify. It is a dev-loop convenience layered on top of the engine, not
// part of the core analysis contract.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/solguard/solguard/internal/xlog"
)

// OnChange is invoked once per debounced batch of filesystem events, with
// the set of files that changed.
type OnChange func(ctx context.Context, changed []string)

// Watcher watches a fixed set of root paths and calls OnChange after a
// short debounce window collects related events together.
type Watcher struct {
	roots    []string
	onChange OnChange
	log      xlog.Logger
	debounce time.Duration
}

// New returns a Watcher over roots (files or directories). debounce of zero
// defaults to 150ms, mirroring a typical editor-save burst.
func New(roots []string, onChange OnChange, log xlog.Logger, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = 150 * time.Millisecond
	}
	return &Watcher{roots: roots, onChange: onChange, log: xlog.OrNoOp(log), debounce: debounce}
}

// Start begins watching in a background goroutine and returns once the
// underlying fsnotify watcher is armed. Watching stops when ctx is
// cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	dirs, err := watchDirs(w.roots)
	if err != nil {
		fsw.Close()
		return err
	}
	for _, d := range dirs {
		if err := fsw.Add(d); err != nil {
			fsw.Close()
			return err
		}
		w.log.WithField("path", d).Debugf("watching directory")
	}

	go w.run(ctx, fsw)
	return nil
}

func (w *Watcher) run(ctx context.Context, fsw *fsnotify.Watcher) {
	defer fsw.Close()

	const relevant = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

	pending := make(map[string]bool)
	var timer *time.Timer
	var timerCh <-chan time.Time

	flush := func() {
		if len(pending) == 0 {
			return
		}
		changed := make([]string, 0, len(pending))
		for p := range pending {
			changed = append(changed, p)
		}
		pending = make(map[string]bool)
		w.onChange(ctx, changed)
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case evt, ok := <-fsw.Events:
			if !ok {
				return
			}
			if evt.Op&relevant == 0 {
				continue
			}
			if filepath.Ext(evt.Name) != ".sol" {
				continue
			}
			pending[evt.Name] = true
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			timerCh = timer.C
		case <-timerCh:
			flush()
			timerCh = nil
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.log.WithField("error", err.Error()).Warnf("watch error")
		}
	}
}

func watchDirs(roots []string) ([]string, error) {
	seen := make(map[string]bool)
	var dirs []string
	for _, root := range roots {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, err
		}
		dir := abs
		if info, err := os.Stat(abs); err != nil || !info.IsDir() {
			dir = filepath.Dir(abs)
		}
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs, nil
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// =============================================================================
// CONFIG WATCHER
// =============================================================================

// debounceDelay is how long the file must stay quiet before a reload.
// Editors save with bursts of truncate/write/rename events; reloading
// mid-burst would read a partial file, so the reload waits for the
// burst to end and always reflects the last write.
const debounceDelay = 200 * time.Millisecond

// Watcher reloads the configuration when its file changes on disk.
// Reloads are trailing-edge debounced per save burst, and additionally
// capped at one per second for pathological writers.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	limiter *rate.Limiter
	onLoad  func(*Config)
	onError func(error)
}

// NewWatcher creates a watcher for the configuration file at path.
// onLoad receives each successfully reloaded config; onError receives
// reload failures and may be nil.
func NewWatcher(path string, onLoad func(*Config), onError func(error)) (*Watcher, error) {
	if onLoad == nil {
		return nil, fmt.Errorf("config: watcher needs an onLoad callback")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: creating watcher: %w", err)
	}

	// Watch the directory, not the file: editors that rename-and-swap
	// on save would otherwise drop the watch.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("config: watching %s: %w", filepath.Dir(path), err)
	}

	return &Watcher{
		path:    path,
		watcher: fsw,
		limiter: rate.NewLimiter(rate.Limit(1), 1),
		onLoad:  onLoad,
		onError: onError,
	}, nil
}

// Run processes file events until the context is canceled. Every save
// burst results in exactly one reload, after the file has been quiet
// for debounceDelay.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	timer := time.NewTimer(debounceDelay)
	stopTimer(timer)
	defer timer.Stop()

	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			// Push the pending reload out to the end of the burst.
			stopTimer(timer)
			timer.Reset(debounceDelay)
			timerC = timer.C

		case <-timerC:
			if !w.limiter.Allow() {
				// Over the reload cap. The pending reload is kept,
				// not dropped: try again after another delay.
				timer.Reset(debounceDelay)
				continue
			}
			timerC = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.fail(err)
		}
	}
}

// stopTimer halts a timer and drains its channel so a later Reset
// cannot deliver a stale tick.
func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}

// relevant reports whether an event touches the config file with a
// content-changing operation.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(w.path) {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename)
}

func (w *Watcher) reload() {
	cfg, err := LoadFromPath(w.path)
	if err != nil {
		w.fail(err)
		return
	}
	w.onLoad(cfg)
}

func (w *Watcher) fail(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package watch reloads a [solar.Config] from a TOML file whenever
// the file changes.
package watch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/solarsystem/solar"
	"github.com/fsnotify/fsnotify"
)

// Load returns the config in the given TOML file. Fields that are not
// in the file have their default values. The config is validated.
func Load(file string) (solar.Config, error) {
	cfg := solar.DefaultConfig()
	if err := tomlx.Open(&cfg, file); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("watch: %s: %w", file, err)
	}
	return cfg, nil
}

// SettleDelay is how long the file must be unchanged before it is reloaded.
const SettleDelay = 100 * time.Millisecond

// Watcher calls a function with the new config each time its file is
// written with a valid config. Invalid configs are logged and skipped.
// Reloads wait until the file has not changed for [SettleDelay], so
// that a save that truncates and then rewrites the file is read once.
// The function is called on a separate goroutine, so GUI code must
// use AsyncLock and AsyncUnlock around any widget updates.
type Watcher struct {

	// File is the absolute path of the watched file.
	File string

	fn      func(cfg solar.Config)
	watcher *fsnotify.Watcher
	done    chan struct{}

	// settle is the pending reload; only used on the watcher goroutine.
	settle *time.Timer
}

// New starts watching the given file. The directory of the file is
// watched, so that editors that save by renaming are handled.
func New(file string, fn func(cfg solar.Config)) (*Watcher, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		return nil, errors.Join(err, fw.Close())
	}
	w := &Watcher{File: abs, fn: fn, watcher: fw, done: make(chan struct{})}
	go w.watch()
	slog.Info("watch: watching config file", "file", abs)
	return w, nil
}

// Close stops watching, and returns after the watcher goroutine has ended.
// A pending reload is cancelled.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) watch() {
	defer close(w.done)
	defer func() {
		if w.settle != nil {
			w.settle.Stop()
		}
	}()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.File {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.schedule()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			errors.Log(err)
		}
	}
}

// schedule reloads the file once it has been unchanged for [SettleDelay].
func (w *Watcher) schedule() {
	if w.settle == nil {
		w.settle = time.AfterFunc(SettleDelay, w.reload)
		return
	}
	w.settle.Reset(SettleDelay)
}

func (w *Watcher) reload() {
	cfg, err := Load(w.File)
	if err != nil {
		slog.Warn("watch: skipping config", "file", w.File, "err", err)
		return
	}
	slog.Info("watch: reloaded config", "file", w.File, "ShowOrbits", cfg.ShowOrbits, "Speed", cfg.Speed)
	w.fn(cfg)
}

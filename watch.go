// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/hostrules

package hostrules

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultWatchDebounce = 200 * time.Millisecond

// WatchOptions configures re-parsing of a config tree on file changes.
type WatchOptions struct {
	// OnResult receives the initial parse result and every successful
	// re-parse afterwards. The initial call happens synchronously inside
	// Watch before it returns; later calls come from the watcher goroutine.
	OnResult func(*ParseResult) `json:"-" yaml:"-"`
	// OnError receives fatal parse and watch errors. Watching continues,
	// so the next change can recover.
	OnError func(error) `json:"-" yaml:"-"`
	// Debounce delays re-parsing after a burst of file events.
	// Zero defaults to 200ms.
	Debounce time.Duration `json:"debounce,omitempty" yaml:"debounce,omitempty"`
}

// Watcher re-parses one root config whenever the file or any file in its
// import tree changes.
type Watcher struct {
	fsw    *fsnotify.Watcher
	stopCh chan struct{}
	doneCh chan struct{}
}

// Watch parses path once, then watches every parsed source file for changes.
//
// The initial parse must succeed, since it determines the watched import
// tree. Files imported only after a later edit are picked up on the next
// successful re-parse.
func Watch(path string, opts WatchOptions) (*Watcher, error) {
	if opts.Debounce <= 0 {
		opts.Debounce = defaultWatchDebounce
	}

	res, err := Load(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	sources := make(map[string]struct{})
	dirs := make(map[string]struct{})
	if err := watchSources(fsw, res.Sources, sources, dirs); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:    fsw,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}

	if opts.OnResult != nil {
		opts.OnResult(res)
	}

	go w.loop(path, opts, sources, dirs)

	return w, nil
}

// Close stops the watch loop and releases the underlying watcher.
func (w *Watcher) Close() error {
	close(w.stopCh)
	<-w.doneCh
	return w.fsw.Close()
}

// loop debounces file events and re-parses the config tree.
func (w *Watcher) loop(path string, opts WatchOptions, sources map[string]struct{}, dirs map[string]struct{}) {
	defer close(w.doneCh)

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)

	resetTimer := func() {
		if timer == nil {
			timer = time.NewTimer(opts.Debounce)
			timerC = timer.C
			return
		}

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}

		timer.Reset(opts.Debounce)
		timerC = timer.C
	}

	reload := func() {
		res, err := Load(path)
		if err != nil {
			if opts.OnError != nil {
				opts.OnError(err)
			}

			return
		}

		// New imports may have appeared; extend the watched set.
		if err := watchSources(w.fsw, res.Sources, sources, dirs); err != nil {
			if opts.OnError != nil {
				opts.OnError(err)
			}
		}

		if opts.OnResult != nil {
			opts.OnResult(res)
		}
	}

	for {
		select {
		case <-w.stopCh:
			if timer != nil {
				timer.Stop()
			}

			return
		case <-timerC:
			timerC = nil
			reload()
		case evt, ok := <-w.fsw.Events:
			if !ok {
				return
			}

			if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if _, watched := sources[filepath.Clean(evt.Name)]; watched {
				resetTimer()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}

			if opts.OnError != nil {
				opts.OnError(fmt.Errorf("watch: %w", err))
			}
		}
	}
}

// watchSources registers parent directories of all source files.
//
// Directories are watched instead of the files themselves so that
// rename-and-replace editors do not silently drop the watch.
func watchSources(fsw *fsnotify.Watcher, list []string, sources map[string]struct{}, dirs map[string]struct{}) error {
	for _, src := range list {
		sources[filepath.Clean(src)] = struct{}{}

		dir := filepath.Dir(src)
		if _, ok := dirs[dir]; ok {
			continue
		}

		if err := fsw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}

		dirs[dir] = struct{}{}
	}

	return nil
}

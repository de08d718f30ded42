// Copyright (c) 2026, The Pennant Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pennantcore

import (
	"log/slog"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch reloads the scenario whenever the given file is written,
// so records can be edited in any text editor alongside the GUI.
// Only one file is watched at a time.
func (ap *App) Watch(filename string) error {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	if ap.watcher == nil {
		w, err := watchFile(func(name string) {
			if name == ap.watchedFile() {
				ap.reload(name)
			}
		})
		if err != nil {
			return err
		}
		ap.watcher = w
	}
	ap.mu.Lock()
	prev := ap.watched
	ap.watched = abs
	ap.mu.Unlock()
	if prev != "" && filepath.Dir(prev) != filepath.Dir(abs) {
		ap.watcher.Remove(filepath.Dir(prev))
	}
	// editors often replace files, so the directory is watched
	return ap.watcher.Add(filepath.Dir(abs))
}

// StopWatch stops any watching started by [App.Watch], and returns
// once no further reload can happen.
func (ap *App) StopWatch() {
	if ap.watcher == nil {
		return
	}
	ap.mu.Lock()
	ap.watched = ""
	ap.mu.Unlock()
	errors.Log(ap.watcher.Close())
	ap.watcher = nil
}

// watchedFile returns the absolute path of the watched file, if any.
func (ap *App) watchedFile() string {
	ap.mu.Lock()
	defer ap.mu.Unlock()
	return ap.watched
}

// reload opens the scenario from filename and rebuilds,
// holding the scene lock when there is a GUI.
func (ap *App) reload(filename string) {
	if se := ap.SceneEditor; se != nil {
		se.AsyncLock()
		defer se.AsyncUnlock()
	}
	if err := ap.Scenario.Open(filename); err != nil {
		// a partial write; the next event will have the rest
		slog.Debug("reload failed", "file", filename, "err", err)
		return
	}
	slog.Info("reloaded scenario", "file", filename)
	ap.refresh()
}

// fileWatcher is an [fsnotify.Watcher] whose Close waits for its
// event loop to exit.
type fileWatcher struct {
	*fsnotify.Watcher
	done chan struct{}
}

// Close stops the watcher and waits for the event loop.
func (fw *fileWatcher) Close() error {
	err := fw.Watcher.Close()
	<-fw.done
	return err
}

// watchFile returns a new watcher that calls changed with the
// absolute path of every file written or created in the watched
// directories.
func watchFile(changed func(name string)) (*fileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	fw := &fileWatcher{Watcher: w, done: make(chan struct{})}
	go func() {
		defer close(fw.done)
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				name, err := filepath.Abs(ev.Name)
				if err != nil {
					continue
				}
				changed(name)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				errors.Log(err)
			}
		}
	}()
	return fw, nil
}

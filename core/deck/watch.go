// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.
package deck

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/showreelio/showreel/logging"
)

// Watcher reloads a deck file while it is being played. Editors typically
// emit bursts of write/rename events per save, so reloads are debounced;
// onReload receives the freshly parsed deck or the load error.
type Watcher struct {
	fsw    *fsnotify.Watcher
	stopCh chan struct{}
	doneCh chan struct{}
}

const debounce = 300 * time.Millisecond

// Watch starts watching the directory containing path and reloads the deck
// whenever the file settles after a change. Call Close to stop.
func Watch(path string, onReload func(*Deck, error)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the parent directory: editors that save via rename replace the
	// inode, which silently drops a watch on the file itself.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:    fsw,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	go w.run(path, onReload)
	return w, nil
}

func (w *Watcher) run(path string, onReload func(*Deck, error)) {
	defer close(w.doneCh)

	var pending *time.Timer
	var pendingC <-chan time.Time
	abs, _ := filepath.Abs(path)

	for {
		select {
		case <-w.stopCh:
			if pending != nil {
				pending.Stop()
			}
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if evAbs, _ := filepath.Abs(event.Name); evAbs != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logging.Debugf("deck watcher: %s on %s", event.Op, event.Name)
			if pending != nil {
				pending.Stop()
			}
			pending = time.NewTimer(debounce)
			pendingC = pending.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logging.Warnf("deck watcher: %v", err)

		case <-pendingC:
			pending, pendingC = nil, nil
			onReload(Load(path))
		}
	}
}

// Close stops the watcher. Safe to call once.
func (w *Watcher) Close() error {
	close(w.stopCh)
	err := w.fsw.Close()
	<-w.doneCh
	return err
}

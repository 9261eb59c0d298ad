// Package watch invalidates cached namespace state when data files
// change on disk.
package watch

import (
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Invalidator receives change notifications.  *namespace.Namespace
// satisfies it.
type Invalidator interface {
	Invalidate(source string)
	Reset()
}

// Watcher drives an Invalidator from filesystem events.
type Watcher struct {
	fs     *fsnotify.Watcher
	target Invalidator
	logger zerolog.Logger
	done   chan struct{}
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher) *Watcher

func WithLogger(logger zerolog.Logger) WatcherOption {
	return func(w *Watcher) *Watcher {
		w.logger = logger
		return w
	}
}

// NewWatcher constructs a watcher over the given target and starts its
// event loop.
func NewWatcher(target Invalidator, options ...WatcherOption) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fs:     fs,
		target: target,
		logger: zerolog.Nop(),
		done:   make(chan struct{}),
	}
	for _, opt := range options {
		w = opt(w)
	}
	go w.loop()
	return w, nil
}

// Add watches the given file or directory.
func (w *Watcher) Add(path string) error {
	return w.fs.Add(path)
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	err := w.fs.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Debug().Err(err).Msg("watch error")
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	switch {
	case event.Op&(fsnotify.Write|fsnotify.Create) != 0:
		w.logger.Debug().Str("path", event.Name).Msg("invalidating changed file")
		w.target.Invalidate(event.Name)
	case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		// A removed or renamed file may be imported under other
		// spellings too; drop everything.
		w.logger.Debug().Str("path", event.Name).Msg("resetting after remove")
		w.target.Reset()
	}
}

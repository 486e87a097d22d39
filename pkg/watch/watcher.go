// Package watch delivers settled change notifications for a single
// definition file using fsnotify.
//
// The watcher registers on the file's parent directory rather than the
// file itself, so notifications keep flowing across editor atomic saves,
// which replace the file instead of writing it in place. Events are
// filtered to the file's base name and coalesced through a debounce
// window before the handler runs.
package watch

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/viewport/pkg/errors"
	"github.com/matzehuels/viewport/pkg/observability"
)

// Handler is called once per settled change to the watched file. Several
// filesystem events inside one debounce window produce a single call.
type Handler func(path string)

// ErrorHandler receives watch errors that occur after New returns.
type ErrorHandler func(err error)

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the settle window for coalescing events.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = newDebouncer(d)
		}
	}
}

// WithErrorHandler sets the handler for asynchronous watch errors.
func WithErrorHandler(h ErrorHandler) Option {
	return func(w *Watcher) { w.onError = h }
}

// Watcher watches one definition file for changes.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce *debouncer
	path     string
	base     string
	handler  Handler
	onError  ErrorHandler

	done      chan struct{}
	closeOnce sync.Once
}

// New starts watching path and calls handler after each settled change.
// The file must exist when the watcher starts.
func New(path string, handler Handler, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "resolving %q", path)
	}
	if _, err := os.Stat(abs); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "definition file %q does not exist", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "checking %q", path)
	}

	w := &Watcher{
		debounce: newDebouncer(DefaultDebounce),
		path:     abs,
		base:     filepath.Base(abs),
		handler:  handler,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "creating file watcher")
	}
	dir := filepath.Dir(abs)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "watching %q", dir)
	}
	w.fsw = fsw

	observability.Watch().OnWatchStart(abs)
	go w.run()
	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string { return w.path }

// Close stops the watcher and drops any pending notification. It is safe
// to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		w.debounce.cancel()
		err = w.fsw.Close()
		observability.Watch().OnWatchStop(w.path)
	})
	return err
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Base(event.Name) != w.base {
		return
	}
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) &&
		!event.Op.Has(fsnotify.Rename) && !event.Op.Has(fsnotify.Remove) {
		return
	}

	w.debounce.trigger(func() {
		select {
		case <-w.done:
			return
		default:
		}

		observability.Watch().OnFileChange(w.path)
		if w.handler != nil {
			w.handler(w.path)
		}
	})
}

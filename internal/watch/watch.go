// Package watch recompresses a stylesheet whenever it changes on disk.
//
// The directory holding the file is watched rather than the file itself, so
// editors that save by writing a temp file and renaming it over the
// original keep being followed.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bimmerbailey/cssmin/internal/logging"
)

// ErrRemoved is returned when the watched file disappears and does not
// come back within Options.ReappearTimeout.
var ErrRemoved = errors.New("watched file removed")

// DefaultReappearTimeout is how long a removed or renamed file may stay
// missing before Run gives up.
const DefaultReappearTimeout = 2 * time.Second

// Options configures the watcher.
type Options struct {
	FilePath string        // Stylesheet to watch
	Debounce time.Duration // Quiet period after the last change before OnChange runs

	// ReappearTimeout bounds how long the file may be missing after a
	// remove or rename. Zero means DefaultReappearTimeout.
	ReappearTimeout time.Duration

	// OnChange is called once when Run starts and again after every
	// settled change. A returned error stops Run.
	OnChange func(ctx context.Context, path string) error
}

// Watcher follows one stylesheet.
type Watcher struct {
	opts    Options
	path    string
	watcher *fsnotify.Watcher
}

// New creates a new Watcher with the given options.
func New(opts Options) *Watcher {
	if opts.ReappearTimeout <= 0 {
		opts.ReappearTimeout = DefaultReappearTimeout
	}
	return &Watcher{opts: opts}
}

// Run calls OnChange for the current contents and then after every change.
// It blocks until ctx is cancelled, which returns nil, or until an error
// occurs.
func (w *Watcher) Run(ctx context.Context) error {
	if w.opts.OnChange == nil {
		return fmt.Errorf("watch: OnChange is required")
	}

	path, err := filepath.Abs(w.opts.FilePath)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", w.opts.FilePath, err)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	w.path = path

	if err := w.setupWatcher(); err != nil {
		return fmt.Errorf("failed to setup watcher: %w", err)
	}
	defer w.watcher.Close()

	if err := w.fire(ctx); err != nil {
		return err
	}

	return w.watch(ctx)
}

func (w *Watcher) setupWatcher() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		watcher.Close()
		return err
	}

	w.watcher = watcher
	return nil
}

func (w *Watcher) watch(ctx context.Context) error {
	logger := logging.FromContext(ctx)

	debounce := time.NewTimer(time.Hour)
	debounce.Stop()
	defer debounce.Stop()

	var missing <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher closed unexpectedly")
			}
			if event.Name != w.path {
				continue
			}

			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
				missing = nil
				debounce.Reset(w.opts.Debounce)

			case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
				logger.Debug("file went away, waiting for it to reappear", logging.FieldPath, w.path)
				missing = time.After(w.opts.ReappearTimeout)
			}

		case <-debounce.C:
			if err := w.fire(ctx); err != nil {
				return err
			}

		case <-missing:
			missing = nil
			if _, err := os.Stat(w.path); err != nil {
				return fmt.Errorf("%w: %s", ErrRemoved, w.opts.FilePath)
			}
			debounce.Reset(w.opts.Debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

// fire runs OnChange unless the file is gone; a missing file is picked up
// by the reappear timer instead.
func (w *Watcher) fire(ctx context.Context) error {
	if _, err := os.Stat(w.path); err != nil {
		return nil
	}
	if err := w.opts.OnChange(ctx, w.opts.FilePath); err != nil {
		return fmt.Errorf("handling change: %w", err)
	}
	return nil
}

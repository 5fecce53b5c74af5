package content

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const defaultDebounce = 500 * time.Millisecond

// Watcher reloads the content file into a Store when it changes on disk.
// It is meant for local editing; a bad edit keeps the previous document.
type Watcher struct {
	path     string
	store    *Store
	logger   *zap.Logger
	debounce time.Duration
	ready    chan struct{}

	// OnReload is called after every reload attempt with its error, if any.
	OnReload func(err error)
}

// NewWatcher creates a watcher for path feeding store.
func NewWatcher(path string, store *Store, logger *zap.Logger) *Watcher {
	return &Watcher{
		path:     path,
		store:    store,
		logger:   logger,
		debounce: defaultDebounce,
		ready:    make(chan struct{}),
	}
}

// Ready is closed once the watch is registered; changes made after that are
// picked up.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches until ctx is cancelled. It must be called at most once. The parent directory is watched rather
// than the file so that editors which replace the file on save are noticed.
func (w *Watcher) Run(ctx context.Context) (err error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		err = errors.Wrap(err, "failed to create file watcher")
		return err
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	err = fsw.Add(dir)
	if err != nil {
		err = errors.Wrapf(err, "failed to watch %s", dir)
		return err
	}

	w.logger.Info("Watching content file", zap.String("path", w.path))
	close(w.ready)

	target := filepath.Clean(w.path)
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("Content file changed",
				zap.String("file", event.Name),
				zap.String("operation", event.Op.String()),
			)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload()

		case werr, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("File watcher error", zap.Error(werr))
		}
	}
}

func (w *Watcher) reload() {
	p, err := Load(w.path)
	if err != nil {
		w.logger.Warn("Content reload failed, keeping previous content",
			zap.String("path", w.path),
			zap.Error(err),
		)
	} else {
		w.store.Replace(p)
		w.logger.Info("Content reloaded",
			zap.String("path", w.path),
			zap.Int("work_experience", len(p.WorkExperience)),
			zap.Int("projects", len(p.Projects)),
		)
	}
	if w.OnReload != nil {
		w.OnReload(err)
	}
}

// Package watcher notifies when the sound database changes on disk.
//
// Another soundboard process (for example `soundboard add` run from a second
// terminal) writes through the same SQLite file, so the board refreshes its
// catalog when the file or its WAL changes. Bursts of writes are debounced.
package watcher

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kobeSmallman/mobileSoundboard/internal/log"
)

// DefaultDebounce is used when Config.Debounce is zero.
const DefaultDebounce = 100 * time.Millisecond

// Config configures a Watcher.
type Config struct {
	DBPath   string
	Debounce time.Duration
}

// Watcher watches the database directory for writes to the database files.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	dbPath    string
	debounce  time.Duration

	onChange chan struct{}
	done     chan struct{}
	wg       sync.WaitGroup

	mu      sync.Mutex
	started bool
	stopped bool
}

// New creates a watcher. Call Start to begin receiving notifications.
func New(cfg Config) (*Watcher, error) {
	if cfg.DBPath == "" {
		return nil, errors.New("watcher: database path is required")
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		fsWatcher: fsw,
		dbPath:    filepath.Clean(cfg.DBPath),
		debounce:  debounce,
		onChange:  make(chan struct{}, 1),
		done:      make(chan struct{}),
	}, nil
}

// Start begins watching and returns the notification channel.
// The channel is closed after Stop.
func (w *Watcher) Start() (<-chan struct{}, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return nil, errors.New("watcher: already started")
	}

	dir := filepath.Dir(w.dbPath)
	if err := w.fsWatcher.Add(dir); err != nil {
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}
	w.started = true

	w.wg.Add(1)
	go w.loop()

	log.Debug(log.CatDB, "Watching database", "path", w.dbPath, "debounce", w.debounce)
	return w.onChange, nil
}

// Stop ends watching. It is safe to call more than once.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	started := w.started
	w.mu.Unlock()

	close(w.done)
	err := w.fsWatcher.Close()
	w.wg.Wait()
	if !started {
		close(w.onChange)
	}
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	defer close(w.onChange)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			select {
			case w.onChange <- struct{}{}:
			default:
				// A notification is already pending.
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warn(log.CatDB, "Database watcher error", "error", err.Error())
		}
	}
}

// relevant keeps writes to the database file and its -wal/-shm/-journal siblings.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) {
		return false
	}
	name := filepath.Clean(event.Name)
	if name == w.dbPath {
		return true
	}
	if filepath.Dir(name) != filepath.Dir(w.dbPath) {
		return false
	}
	suffix, ok := strings.CutPrefix(filepath.Base(name), filepath.Base(w.dbPath))
	return ok && (suffix == "-wal" || suffix == "-shm" || suffix == "-journal")
}

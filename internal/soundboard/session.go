// Package soundboard wires the sound registry and the playback and recording
// managers into one explicitly constructed session.
//
// A Session owns every long-lived resource: the database, the audio output
// context, the microphone slot and the database watcher. The board UI and the
// one-shot CLI commands both drive the core through it.
package soundboard

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/kobeSmallman/mobileSoundboard/internal/audio"
	"github.com/kobeSmallman/mobileSoundboard/internal/audio/ebitenplayer"
	"github.com/kobeSmallman/mobileSoundboard/internal/audio/malgomic"
	"github.com/kobeSmallman/mobileSoundboard/internal/audio/probe"
	"github.com/kobeSmallman/mobileSoundboard/internal/config"
	"github.com/kobeSmallman/mobileSoundboard/internal/infrastructure/sqlite"
	"github.com/kobeSmallman/mobileSoundboard/internal/log"
	"github.com/kobeSmallman/mobileSoundboard/internal/picker"
	"github.com/kobeSmallman/mobileSoundboard/internal/playback"
	"github.com/kobeSmallman/mobileSoundboard/internal/recording"
	"github.com/kobeSmallman/mobileSoundboard/internal/sound"
	"github.com/kobeSmallman/mobileSoundboard/internal/sounds/application"
	"github.com/kobeSmallman/mobileSoundboard/internal/sounds/domain"
	"github.com/kobeSmallman/mobileSoundboard/internal/watcher"
)

// Bundle is the set of built-in clips.
type Bundle interface {
	Keys() []string
	Has(key string) bool
	Open(key string) (io.ReadCloser, error)
}

type options struct {
	player     audio.Player
	microphone audio.Microphone
	picker     application.FilePicker
	bundle     Bundle
	validator  application.AudioValidator
}

// Option overrides one of the engines New would otherwise construct from config.
type Option func(*options)

// WithPlayer uses p instead of the ebiten output context.
func WithPlayer(p audio.Player) Option { return func(o *options) { o.player = p } }

// WithMicrophone uses m instead of the malgo capture device.
func WithMicrophone(m audio.Microphone) Option { return func(o *options) { o.microphone = m } }

// WithPicker uses p for Import.
func WithPicker(p application.FilePicker) Option { return func(o *options) { o.picker = p } }

// WithBundle replaces the embedded built-in clips.
func WithBundle(b Bundle) Option { return func(o *options) { o.bundle = b } }

// WithValidator replaces the format probe used on import.
func WithValidator(v application.AudioValidator) Option { return func(o *options) { o.validator = v } }

// Session is the running soundboard.
type Session struct {
	cfg      config.Config
	db       *sqlite.DB
	library  *application.Library
	playback *playback.Manager
	recorder *recording.Manager
	picker   application.FilePicker
	bundle   Bundle
	probes   *probe.Registry

	watcher *watcher.Watcher
	changes <-chan struct{}

	closeOnce sync.Once
	closeErr  error
}

// New opens the store, loads the catalog and prepares the audio engines.
// Neither the output device nor the microphone is opened until first use.
func New(ctx context.Context, cfg config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.bundle == nil {
		o.bundle = sound.Default()
	}
	if o.validator == nil {
		o.validator = probe.Default()
	}

	db, err := sqlite.NewDB(cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("opening sound database: %w", err)
	}

	s := &Session{cfg: cfg, db: db}
	if err := s.wire(ctx, o); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Info(log.CatConfig, "Session ready", "db", db.Path(), "sounds", len(s.Entries()))
	return s, nil
}

func (s *Session) wire(ctx context.Context, o options) error {
	repo := s.db.SoundRepository()
	if err := repo.Init(ctx); err != nil {
		return fmt.Errorf("initializing sound store: %w", err)
	}

	catalog := application.NewCatalog(repo, o.bundle)
	s.library = application.NewLibrary(repo, catalog, o.validator)
	if _, err := catalog.Refresh(ctx); err != nil {
		return fmt.Errorf("loading sounds: %w", err)
	}

	s.bundle = o.bundle
	s.probes = probe.Default()

	player := o.player
	if player == nil {
		player = newLazyPlayer(ebitenplayer.Config{
			SampleRate: s.cfg.Playback.SampleRate,
			CacheTTL:   s.cfg.Playback.CacheTTL,
		})
	}
	s.playback = playback.NewManager(player, playback.NewResolver(o.bundle))

	mic := o.microphone
	if mic == nil {
		dir := s.cfg.RecordingsPath()
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating recordings directory: %w", err)
		}
		mic = malgomic.New(malgomic.Config{
			Dir:        dir,
			SampleRate: s.cfg.Recording.SampleRate,
			Channels:   s.cfg.Recording.Channels,
			Device:     s.cfg.Recording.Device,
			Allowed:    s.cfg.Recording.MicrophoneAllowed,
		})
	}
	s.recorder = recording.NewManager(mic, s.library, s.cfg.Recording.DefaultLabel)

	s.picker = o.picker
	if s.picker == nil && s.cfg.Picker.Native {
		s.picker = picker.Native{Title: "Add a sound", Dir: s.cfg.Picker.Dir}
	}

	if s.cfg.AutoRefresh {
		w, err := watcher.New(watcher.Config{DBPath: s.db.Path(), Debounce: s.cfg.AutoRefreshDebounce})
		if err != nil {
			log.ErrorErr(log.CatDB, "Auto-refresh disabled", err)
			return nil
		}
		changes, err := w.Start()
		if err != nil {
			_ = w.Stop()
			log.ErrorErr(log.CatDB, "Auto-refresh disabled", err)
			return nil
		}
		s.watcher, s.changes = w, changes
	}
	return nil
}

// Config returns the configuration the session was opened with.
func (s *Session) Config() config.Config { return s.cfg }

// Entries returns the last catalog snapshot.
func (s *Session) Entries() []domain.CatalogEntry {
	return s.library.Catalog().Entries()
}

// Refresh re-reads the store.
func (s *Session) Refresh(ctx context.Context) ([]domain.CatalogEntry, error) {
	return s.library.Catalog().Refresh(ctx)
}

// Changes is signalled when another process writes the database.
// It is nil when auto-refresh is off.
func (s *Session) Changes() <-chan struct{} { return s.changes }

// Play starts the catalog entry with the given id.
func (s *Session) Play(ctx context.Context, id domain.SoundID) error {
	entry, ok := s.library.Catalog().Lookup(id)
	if !ok {
		return &domain.InvalidSoundError{ID: id, Reason: "not in the catalog"}
	}
	return s.playback.Play(ctx, entry)
}

// Stop stops one sound.
func (s *Session) Stop(ctx context.Context, id domain.SoundID) error {
	return s.playback.Stop(ctx, id)
}

// StopAll stops every playing sound.
func (s *Session) StopAll(ctx context.Context) error {
	return s.playback.StopAll(ctx)
}

// ToggleLoop flips the global loop flag and returns its new value.
func (s *Session) ToggleLoop(ctx context.Context) (bool, error) {
	return s.playback.ToggleGlobalLoop(ctx)
}

// Looping reports the global loop flag.
func (s *Session) Looping() bool { return s.playback.Looping() }

// PlaybackState reports what the sound with id is doing.
func (s *Session) PlaybackState(id domain.SoundID) playback.State {
	return s.playback.State(id)
}

// Playing returns the ids with a live handle.
func (s *Session) Playing() []domain.SoundID { return s.playback.Live() }

// StartRecording begins capture.
func (s *Session) StartRecording(ctx context.Context) error {
	return s.recorder.Start(ctx)
}

// StopRecording saves the active recording. saved is false when nothing was recording.
func (s *Session) StopRecording(ctx context.Context) (uri string, saved bool, err error) {
	return s.recorder.Stop(ctx)
}

// ToggleRecording starts or stops capture. uri is set when a recording was saved.
func (s *Session) ToggleRecording(ctx context.Context) (string, error) {
	return s.recorder.Toggle(ctx)
}

// Recording reports whether capture is confirmed running.
func (s *Session) Recording() bool { return s.recorder.Recording() }

// CanImport reports whether Import has a picker to use.
func (s *Session) CanImport() bool { return s.picker != nil }

// Import asks the configured picker for a file and adds it.
func (s *Session) Import(ctx context.Context) (domain.CatalogEntry, error) {
	if s.picker == nil {
		return domain.CatalogEntry{}, fmt.Errorf("no file picker configured (set picker.native: true)")
	}
	return s.library.ImportFile(ctx, s.picker)
}

// ImportPath adds the audio file at path. A non-empty label replaces the
// file-name label.
func (s *Session) ImportPath(ctx context.Context, path, label string) (domain.CatalogEntry, error) {
	entry, err := s.library.ImportFile(ctx, picker.Path(path))
	if err != nil || label == "" || label == entry.Label {
		return entry, err
	}
	if err := s.library.Rename(ctx, entry.ID, label); err != nil {
		return entry, err
	}
	entry.Label = label
	return entry, nil
}

// Rename changes the label of a stored sound.
func (s *Session) Rename(ctx context.Context, id domain.SoundID, label string) error {
	return s.library.Rename(ctx, id, label)
}

// Remove stops and deletes a stored sound.
func (s *Session) Remove(ctx context.Context, id domain.SoundID) error {
	if id.IsBuiltIn() {
		return domain.ErrBuiltInImmutable
	}
	if err := s.playback.Stop(ctx, id); err != nil {
		log.ErrorErr(log.CatAudio, "Failed to stop sound before removal", err, "id", id.String())
	}
	return s.library.Remove(ctx, id)
}

// Close saves an active recording, stops playback and releases the store.
// It is safe to call more than once.
func (s *Session) Close(ctx context.Context) error {
	s.closeOnce.Do(func() {
		var result *multierror.Error
		if err := s.recorder.Close(ctx); err != nil {
			result = multierror.Append(result, err)
		}
		if err := s.playback.Close(ctx); err != nil {
			result = multierror.Append(result, err)
		}
		if s.watcher != nil {
			if err := s.watcher.Stop(); err != nil {
				result = multierror.Append(result, err)
			}
		}
		if err := s.db.Close(); err != nil {
			result = multierror.Append(result, err)
		}
		s.closeErr = result.ErrorOrNil()
	})
	return s.closeErr
}

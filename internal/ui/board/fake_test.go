package board

import (
	"context"
	"slices"
	"sync"

	"github.com/kobeSmallman/mobileSoundboard/internal/playback"
	"github.com/kobeSmallman/mobileSoundboard/internal/sounds/domain"
)

// fakeBoard is an in-memory Soundboard.
type fakeBoard struct {
	mu        sync.Mutex
	entries   []domain.CatalogEntry
	playing   map[domain.SoundID]bool
	looping   bool
	recording bool
	canImport bool
	imported  domain.CatalogEntry
	changes   chan struct{}

	playErr    error
	refreshErr error

	plays         []domain.SoundID
	recordToggles int
	refreshes     int
}

func newFakeBoard() *fakeBoard {
	return &fakeBoard{
		entries: []domain.CatalogEntry{
			{ID: domain.StoredID(1), Label: "Doorbell", URI: "file:///sounds/doorbell.wav"},
			domain.BuiltInEntry(0, "Sound1.wav"),
			domain.BuiltInEntry(1, "Sound2.wav"),
			domain.BuiltInEntry(2, "Sound3.wav"),
		},
		playing: map[domain.SoundID]bool{},
	}
}

func (f *fakeBoard) Entries() []domain.CatalogEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.entries)
}

func (f *fakeBoard) Refresh(context.Context) ([]domain.CatalogEntry, error) {
	f.mu.Lock()
	f.refreshes++
	err := f.refreshErr
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return f.Entries(), nil
}

func (f *fakeBoard) Changes() <-chan struct{} {
	if f.changes == nil {
		return nil
	}
	return f.changes
}

func (f *fakeBoard) Play(_ context.Context, id domain.SoundID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.plays = append(f.plays, id)
	if f.playErr != nil {
		return f.playErr
	}
	f.playing[id] = true
	return nil
}

func (f *fakeBoard) StopAll(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.playing = map[domain.SoundID]bool{}
	return nil
}

func (f *fakeBoard) ToggleLoop(context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.looping = !f.looping
	return f.looping, nil
}

func (f *fakeBoard) Looping() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.looping
}

func (f *fakeBoard) PlaybackState(id domain.SoundID) playback.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch {
	case f.playing[id] && f.looping:
		return playback.StateLooping
	case f.playing[id]:
		return playback.StatePlaying
	default:
		return playback.StateIdle
	}
}

func (f *fakeBoard) ToggleRecording(context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recordToggles++
	if f.recording {
		f.recording = false
		f.entries = append([]domain.CatalogEntry{{ID: domain.StoredID(9), Label: "New Recording", URI: "file:///rec.wav"}}, f.entries...)
		return "file:///rec.wav", nil
	}
	f.recording = true
	return "", nil
}

func (f *fakeBoard) Recording() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.recording
}

func (f *fakeBoard) CanImport() bool { return f.canImport }

func (f *fakeBoard) Import(context.Context) (domain.CatalogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append([]domain.CatalogEntry{f.imported}, f.entries...)
	return f.imported, nil
}

func (f *fakeBoard) Rename(_ context.Context, id domain.SoundID, label string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.entries {
		if f.entries[i].ID == id {
			f.entries[i].Label = label
			return nil
		}
	}
	id64, _ := id.Stored()
	return &domain.SoundNotFoundError{ID: id64}
}

func (f *fakeBoard) Remove(_ context.Context, id domain.SoundID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = slices.DeleteFunc(f.entries, func(e domain.CatalogEntry) bool { return e.ID == id })
	return nil
}

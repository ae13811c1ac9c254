package application

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kobeSmallman/mobileSoundboard/internal/mocks"
	"github.com/kobeSmallman/mobileSoundboard/internal/sounds/domain"
)

type validatorFunc func(path string) error

func (f validatorFunc) Validate(path string) error { return f(path) }

func newLibrary(repo domain.SoundRepository, v AudioValidator) *Library {
	return NewLibrary(repo, NewCatalog(repo, keyList{"Sound1.wav"}), v)
}

func TestLibrary_AddRefreshesCatalog(t *testing.T) {
	repo := &memRepo{}
	lib := newLibrary(repo, nil)

	id, err := lib.Add(t.Context(), "Alarm", "file://a.mp3")
	require.NoError(t, err)
	assert.Equal(t, domain.StoredID(1), id)

	entries := lib.Catalog().Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Alarm", entries[0].Label)
	assert.True(t, entries[1].IsDefault)
}

func TestLibrary_AddStorageErrorSkipsRefresh(t *testing.T) {
	repo := mocks.NewMockSoundRepository(t)
	storageErr := &domain.StorageError{Op: "add", Err: errors.New("database or disk is full")}
	repo.EXPECT().Add(mock.Anything, "Alarm", "file://a.mp3").Return(int64(0), storageErr)

	lib := newLibrary(repo, nil)
	id, err := lib.Add(t.Context(), "Alarm", "file://a.mp3")

	var target *domain.StorageError
	require.ErrorAs(t, err, &target)
	assert.True(t, id.IsZero())
}

func TestLibrary_RenameAndRemove(t *testing.T) {
	repo := &memRepo{}
	lib := newLibrary(repo, nil)
	ctx := t.Context()

	id, err := lib.Add(ctx, "Old", "file://x.wav")
	require.NoError(t, err)

	require.NoError(t, lib.Rename(ctx, id, "New"))
	entry, ok := lib.Catalog().Lookup(id)
	require.True(t, ok)
	assert.Equal(t, "New", entry.Label)

	require.NoError(t, lib.Remove(ctx, id))
	_, ok = lib.Catalog().Lookup(id)
	assert.False(t, ok)

	require.NoError(t, lib.Remove(ctx, id), "second remove is a no-op")
	assert.Len(t, lib.Catalog().Entries(), 1)
}

func TestLibrary_BuiltInsAreImmutable(t *testing.T) {
	repo := mocks.NewMockSoundRepository(t)
	lib := newLibrary(repo, nil)

	err := lib.Rename(t.Context(), domain.BuiltInID(0), "Nope")
	require.ErrorIs(t, err, domain.ErrBuiltInImmutable)

	err = lib.Remove(t.Context(), domain.BuiltInID(0))
	require.ErrorIs(t, err, domain.ErrBuiltInImmutable)

	repo.AssertNotCalled(t, "UpdateLabel", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestLibrary_ZeroIDRejected(t *testing.T) {
	lib := newLibrary(mocks.NewMockSoundRepository(t), nil)

	var invalid *domain.InvalidSoundError
	require.ErrorAs(t, lib.Rename(t.Context(), domain.SoundID{}, "x"), &invalid)
}

func TestLibrary_RenameMissingDoesNotRefresh(t *testing.T) {
	repo := mocks.NewMockSoundRepository(t)
	repo.EXPECT().UpdateLabel(mock.Anything, int64(42), "x").Return(&domain.SoundNotFoundError{ID: 42})

	lib := newLibrary(repo, nil)
	err := lib.Rename(t.Context(), domain.StoredID(42), "x")

	var notFound *domain.SoundNotFoundError
	require.ErrorAs(t, err, &notFound)
	repo.AssertNotCalled(t, "List", mock.Anything)
}

func TestLibrary_ImportFile(t *testing.T) {
	repo := &memRepo{}
	var validated string
	lib := newLibrary(repo, validatorFunc(func(path string) error {
		validated = path
		return nil
	}))

	picker := mocks.NewMockFilePicker(t)
	picker.EXPECT().Pick(mock.Anything).Return(domain.PickedFile{Path: "/music/door bell.mp3", Name: "door bell.mp3"}, nil)

	entry, err := lib.ImportFile(t.Context(), picker)
	require.NoError(t, err)
	assert.Equal(t, "/music/door bell.mp3", validated)
	assert.Equal(t, domain.CatalogEntry{ID: domain.StoredID(1), Label: "door bell", URI: "file:///music/door bell.mp3"}, entry)

	sounds, _ := repo.List(t.Context())
	require.Len(t, sounds, 1)
	assert.Equal(t, "file:///music/door bell.mp3", sounds[0].URI)
}

func TestLibrary_ImportFileFallsBackToBaseName(t *testing.T) {
	lib := newLibrary(&memRepo{}, nil)

	picker := mocks.NewMockFilePicker(t)
	picker.EXPECT().Pick(mock.Anything).Return(domain.PickedFile{Path: "/tmp/clap.wav"}, nil)

	entry, err := lib.ImportFile(t.Context(), picker)
	require.NoError(t, err)
	assert.Equal(t, "clap", entry.Label)
}

func TestLibrary_ImportFileCancelled(t *testing.T) {
	repo := mocks.NewMockSoundRepository(t)
	lib := newLibrary(repo, nil)

	picker := mocks.NewMockFilePicker(t)
	picker.EXPECT().Pick(mock.Anything).Return(domain.PickedFile{}, domain.ErrPickerCancelled)

	_, err := lib.ImportFile(t.Context(), picker)
	require.ErrorIs(t, err, domain.ErrPickerCancelled)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestLibrary_ImportFileRejectsUndecodable(t *testing.T) {
	repo := mocks.NewMockSoundRepository(t)
	lib := newLibrary(repo, validatorFunc(func(string) error {
		return errors.New("unsupported format .txt")
	}))

	picker := mocks.NewMockFilePicker(t)
	picker.EXPECT().Pick(mock.Anything).Return(domain.PickedFile{Path: "/tmp/notes.txt", Name: "notes.txt"}, nil)

	_, err := lib.ImportFile(t.Context(), picker)
	var invalid *domain.InvalidSoundError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Reason, "unsupported format")
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestLibrary_ImportFileEmptyPath(t *testing.T) {
	lib := newLibrary(mocks.NewMockSoundRepository(t), nil)

	picker := mocks.NewMockFilePicker(t)
	picker.EXPECT().Pick(mock.Anything).Return(domain.PickedFile{}, nil)

	_, err := lib.ImportFile(t.Context(), picker)
	var invalid *domain.InvalidSoundError
	require.ErrorAs(t, err, &invalid)
}

package playback

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kobeSmallman/mobileSoundboard/internal/sounds/domain"
)

func TestResolver_BuiltIn(t *testing.T) {
	r := NewResolver(memBundle{"Sound1.mp3": "clip"})

	src, err := r.Resolve(domain.BuiltInEntry(0, "Sound1.mp3"))
	require.NoError(t, err)
	assert.Equal(t, "Sound1.mp3", src.Name)

	rc, err := src.Open()
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "clip", string(data))
}

func TestResolver_UnknownBuiltIn(t *testing.T) {
	r := NewResolver(memBundle{})

	_, err := r.Resolve(domain.BuiltInEntry(0, "Sound9.mp3"))
	var invalid *domain.InvalidSoundError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, domain.BuiltInID(0), invalid.ID)
}

func TestResolver_UserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.mp3")
	require.NoError(t, os.WriteFile(path, []byte("mp3"), 0o600))

	r := NewResolver(nil)
	src, err := r.Resolve(domain.CatalogEntry{ID: domain.StoredID(1), URI: "file://" + path})
	require.NoError(t, err)
	assert.Equal(t, path, src.Name)

	rc, err := src.Open()
	require.NoError(t, err)
	require.NoError(t, rc.Close())
}

func TestResolver_UserFileMissingFailsOnOpen(t *testing.T) {
	r := NewResolver(nil)
	src, err := r.Resolve(domain.CatalogEntry{ID: domain.StoredID(1), URI: "file:///nonexistent/a.mp3"})
	require.NoError(t, err, "resolution does not touch the file system")

	_, err = src.Open()
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolver_EmptyURI(t *testing.T) {
	_, err := NewResolver(nil).Resolve(domain.CatalogEntry{ID: domain.StoredID(4)})
	var invalid *domain.InvalidSoundError
	require.ErrorAs(t, err, &invalid)
}

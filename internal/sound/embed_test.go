package sound

import (
	"bytes"
	"io"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_KeysAreOrderedAndEmbedded(t *testing.T) {
	b := Default()
	keys := b.Keys()
	require.Equal(t, []string{"Sound1.wav", "Sound2.wav", "Sound3.wav"}, keys)

	for _, key := range keys {
		rc, err := b.Open(key)
		require.NoError(t, err, key)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())

		dec := wav.NewDecoder(bytes.NewReader(data))
		assert.True(t, dec.IsValidFile(), "%s is not a valid wav file", key)
	}
}

func TestDefault_KeysReturnsCopy(t *testing.T) {
	b := Default()
	keys := b.Keys()
	keys[0] = "mutated"
	assert.Equal(t, "Sound1.wav", b.Keys()[0])
}

func TestBundle_OpenUnknownKey(t *testing.T) {
	_, err := Default().Open("missing.wav")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestNewBundle(t *testing.T) {
	fsys := fstest.MapFS{
		"Sound1.mp3": {Data: []byte("one")},
		"Sound2.mp3": {Data: []byte("two")},
	}
	b := NewBundle(fsys, "Sound1.mp3", "Sound2.mp3")

	assert.True(t, b.Has("Sound2.mp3"))
	assert.False(t, b.Has("Sound3.mp3"))

	rc, err := b.Open("Sound2.mp3")
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}

func TestNewBundle_KeyListedButMissingFromFS(t *testing.T) {
	b := NewBundle(fstest.MapFS{}, "ghost.wav")
	_, err := b.Open("ghost.wav")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

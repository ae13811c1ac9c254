package ebitenplayer

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kobeSmallman/mobileSoundboard/internal/sound"
)

func readBundled(t *testing.T, key string) []byte {
	t.Helper()
	rc, err := sound.Default().Open(key)
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return data
}

func TestDecode_BundledWav(t *testing.T) {
	data := readBundled(t, "Sound1.wav")

	pcm, err := decode("Sound1.wav", data, DefaultSampleRate)
	require.NoError(t, err)
	assert.NotEmpty(t, pcm)
	assert.Zero(t, len(pcm)%bytesPerFrame, "pcm is 16-bit stereo")
}

func TestDecode_ExtensionIsCaseInsensitive(t *testing.T) {
	data := readBundled(t, "Sound2.wav")

	_, err := decode("/home/me/CLIP.WAV", data, DefaultSampleRate)
	require.NoError(t, err)
}

func TestDecode_UnsupportedFormat(t *testing.T) {
	_, err := decode("clip.flac", []byte("fLaC"), DefaultSampleRate)
	require.ErrorContains(t, err, "unsupported audio format")
}

func TestDecode_Corrupt(t *testing.T) {
	_, err := decode("clip.wav", []byte("not a riff file at all"), DefaultSampleRate)
	require.ErrorContains(t, err, "failed to decode clip.wav")
}

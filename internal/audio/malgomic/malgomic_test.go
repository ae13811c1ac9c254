package malgomic

import (
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kobeSmallman/mobileSoundboard/internal/audio"
)

func TestPCMToInts(t *testing.T) {
	pcm := make([]byte, 7)
	binary.LittleEndian.PutUint16(pcm[0:], uint16(0x7FFF))
	binary.LittleEndian.PutUint16(pcm[2:], 0x8000)
	binary.LittleEndian.PutUint16(pcm[4:], 1)

	assert.Equal(t, []int{32767, -32768, 1}, pcmToInts(pcm))
}

func TestWriteWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	pcm := make([]byte, 2*8000)
	for i := 0; i < len(pcm); i += 2 {
		binary.LittleEndian.PutUint16(pcm[i:], uint16(i))
	}

	require.NoError(t, writeWAV(path, pcm, 8000, 1))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile())
	assert.Equal(t, uint32(8000), dec.SampleRate)
	assert.Equal(t, uint16(1), dec.NumChans)
	assert.Equal(t, uint16(16), dec.BitDepth)

	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	assert.Len(t, buf.Data, 8000)
}

func TestWriteWAV_EmptyCapture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "silence.wav")
	require.NoError(t, writeWAV(path, nil, 44100, 2))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.True(t, wav.NewDecoder(f).IsValidFile())
}

func TestMatchName(t *testing.T) {
	names := []string{"Built-in Microphone", "USB Audio CODEC", "Webcam Mic"}

	assert.Equal(t, 1, matchName(names, "usb"))
	assert.Equal(t, 2, matchName(names, "WEBCAM"))
	assert.Equal(t, -1, matchName(names, "bluetooth"))
}

func TestSelectDevice_NoDevices(t *testing.T) {
	_, ok := selectDevice(nil, "")
	assert.False(t, ok)
}

func TestRequestPermission_DisallowedByConfig(t *testing.T) {
	m := New(Config{Dir: t.TempDir(), Allowed: false})

	ok, err := m.RequestPermission(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewRecording_RequiresRecordingMode(t *testing.T) {
	m := New(Config{Dir: t.TempDir(), Allowed: true})

	_, err := m.NewRecording(context.Background())
	require.ErrorIs(t, err, ErrRecordingModeDisabled)

	require.NoError(t, m.SetAudioMode(context.Background(), audio.Mode{AllowsRecording: true, PlaysInSilentMode: true}))
	rec, err := m.NewRecording(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rec.URI(), "URI is empty until the recording stops")
}

func TestNewRecording_UniquePaths(t *testing.T) {
	dir := t.TempDir()
	m := New(Config{Dir: dir, Allowed: true})
	require.NoError(t, m.SetAudioMode(context.Background(), audio.Mode{AllowsRecording: true}))

	a, err := m.NewRecording(context.Background())
	require.NoError(t, err)
	b, err := m.NewRecording(context.Background())
	require.NoError(t, err)

	pa, pb := a.(*recording).path, b.(*recording).path
	assert.NotEqual(t, pa, pb)
	assert.Equal(t, dir, filepath.Dir(pa))
	assert.Equal(t, ".wav", filepath.Ext(pa))
}

func TestRecording_StartBeforePrepare(t *testing.T) {
	r := &recording{cfg: Config{Dir: t.TempDir()}}
	require.ErrorIs(t, r.Start(context.Background()), errNotPrepared)
	require.ErrorIs(t, r.StopAndUnload(context.Background()), errNotPrepared)
}

type fakeDevice struct {
	stopErr  error
	uninited bool
}

func (d *fakeDevice) Start() error { return nil }
func (d *fakeDevice) Stop() error  { return d.stopErr }
func (d *fakeDevice) Uninit()      { d.uninited = true }

func TestStopAndUnload_DeviceStopFailureKeepsTake(t *testing.T) {
	dev := &fakeDevice{stopErr: errors.New("device busy")}
	path := filepath.Join(t.TempDir(), "take.wav")
	r := &recording{
		cfg:    Config{Dir: filepath.Dir(path), SampleRate: 8000, Channels: 1},
		path:   path,
		device: dev,
		pcm:    make([]byte, 1600),
	}

	require.NoError(t, r.StopAndUnload(context.Background()))
	assert.True(t, dev.uninited)
	assert.FileExists(t, path)

	uri := r.URI()
	require.NotEmpty(t, uri)
	assert.Equal(t, path, audio.PathFromURI(uri))
}

func TestNew_Defaults(t *testing.T) {
	m := New(Config{})
	assert.Equal(t, 44100, m.cfg.SampleRate)
	assert.Equal(t, 1, m.cfg.Channels)
}

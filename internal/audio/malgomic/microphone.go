// Package malgomic captures microphone audio with miniaudio (gen2brain/malgo)
// and stores each recording as a 16-bit PCM WAV file.
package malgomic

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gen2brain/malgo"
	"github.com/google/uuid"

	"github.com/kobeSmallman/mobileSoundboard/internal/audio"
	"github.com/kobeSmallman/mobileSoundboard/internal/log"
)

// ErrRecordingModeDisabled is returned by NewRecording before SetAudioMode allows capture.
var ErrRecordingModeDisabled = errors.New("audio mode does not allow recording")

// Config configures capture.
type Config struct {
	Dir        string // where WAV files are written
	SampleRate int
	Channels   int
	Device     string // substring of the capture device name; empty selects the default
	Allowed    bool   // user consent to use the microphone
}

// Microphone implements audio.Microphone.
type Microphone struct {
	cfg Config

	mu   sync.Mutex
	mode audio.Mode
}

var _ audio.Microphone = (*Microphone)(nil)

// New creates a Microphone. Zero rates and channel counts fall back to 44.1kHz mono.
func New(cfg Config) *Microphone {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 44100
	}
	if cfg.Channels <= 0 {
		cfg.Channels = 1
	}
	return &Microphone{cfg: cfg}
}

// RequestPermission grants access when the user allowed it in config and a
// matching capture device exists.
func (m *Microphone) RequestPermission(ctx context.Context) (bool, error) {
	if !m.cfg.Allowed {
		log.Info(log.CatRecord, "Microphone disabled in configuration")
		return false, nil
	}

	type result struct {
		ok  bool
		err error
	}
	done := make(chan result, 1)
	go func() {
		ok, err := m.deviceAvailable()
		done <- result{ok, err}
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case r := <-done:
		return r.ok, r.err
	}
}

func (m *Microphone) deviceAvailable() (bool, error) {
	mctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return false, fmt.Errorf("failed to initialize audio context: %w", err)
	}
	defer func() {
		_ = mctx.Uninit()
		mctx.Free()
	}()

	infos, err := mctx.Devices(malgo.Capture)
	if err != nil {
		return false, fmt.Errorf("failed to list capture devices: %w", err)
	}
	_, ok := selectDevice(infos, m.cfg.Device)
	if !ok {
		log.Warn(log.CatRecord, "No matching capture device", "wanted", m.cfg.Device, "found", len(infos))
	}
	return ok, nil
}

// SetAudioMode records the session mode for subsequent recordings.
func (m *Microphone) SetAudioMode(_ context.Context, mode audio.Mode) error {
	m.mu.Lock()
	m.mode = mode
	m.mu.Unlock()
	log.Debug(log.CatRecord, "Audio mode set", "allows_recording", mode.AllowsRecording, "silent_mode", mode.PlaysInSilentMode)
	return nil
}

// NewRecording allocates a recording that will be written to a fresh file.
func (m *Microphone) NewRecording(_ context.Context) (audio.Recording, error) {
	m.mu.Lock()
	mode := m.mode
	m.mu.Unlock()
	if !mode.AllowsRecording {
		return nil, ErrRecordingModeDisabled
	}

	path := filepath.Join(m.cfg.Dir, "recording-"+uuid.NewString()+".wav")
	return &recording{cfg: m.cfg, path: path}, nil
}

// selectDevice returns the index of the first device whose name contains want.
// An empty want selects the first device.
func selectDevice(infos []malgo.DeviceInfo, want string) (int, bool) {
	if len(infos) == 0 {
		return 0, false
	}
	if want == "" {
		return 0, true
	}
	names := make([]string, len(infos))
	for i := range infos {
		names[i] = infos[i].Name()
	}
	i := matchName(names, want)
	return i, i >= 0
}

func matchName(names []string, want string) int {
	want = strings.ToLower(want)
	for i, name := range names {
		if strings.Contains(strings.ToLower(name), want) {
			return i
		}
	}
	return -1
}

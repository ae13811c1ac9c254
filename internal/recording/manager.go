// Package recording manages the single microphone recording slot.
//
// States move Idle -> RequestingPermission -> Recording -> Stopping -> Idle.
// A denied or failed start always lands back in Idle. A successful stop always
// hands the captured audio to the Sink.
package recording

import (
	"context"
	"errors"
	"os"
	"sync"

	"github.com/kobeSmallman/mobileSoundboard/internal/audio"
	"github.com/kobeSmallman/mobileSoundboard/internal/log"
	"github.com/kobeSmallman/mobileSoundboard/internal/sounds/domain"
)

// DefaultLabel names recordings when no label is configured.
const DefaultLabel = "New Recording"

// ErrClosed is returned by Start after Close.
var ErrClosed = errors.New("recorder closed")

// State is the recording slot state.
type State int

const (
	StateIdle State = iota
	StateRequestingPermission
	StateRecording
	StateStopping
)

func (s State) String() string {
	switch s {
	case StateRequestingPermission:
		return "requesting-permission"
	case StateRecording:
		return "recording"
	case StateStopping:
		return "stopping"
	default:
		return "idle"
	}
}

// Sink persists finished recordings.
type Sink interface {
	Add(ctx context.Context, label, uri string) (domain.SoundID, error)
}

// Manager owns the recording slot.
type Manager struct {
	mic   audio.Microphone
	sink  Sink
	label string

	mu     sync.Mutex
	state  State
	rec    audio.Recording
	closed bool
}

// NewManager creates an idle Manager. An empty label uses DefaultLabel.
func NewManager(mic audio.Microphone, sink Sink, label string) *Manager {
	if label == "" {
		label = DefaultLabel
	}
	return &Manager{mic: mic, sink: sink, label: label}
}

// Start asks for microphone permission and begins capture.
// ctx bounds the permission prompt.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return &domain.RecordingError{Op: "start", Err: ErrClosed}
	}
	if m.state != StateIdle {
		m.mu.Unlock()
		return domain.ErrRecordingInProgress
	}
	m.state = StateRequestingPermission
	m.mu.Unlock()

	rec, err := m.begin(ctx)
	if err != nil {
		m.setState(StateIdle, nil)
		return err
	}

	m.mu.Lock()
	if m.closed {
		m.state = StateIdle
		m.mu.Unlock()
		discard(ctx, rec)
		return &domain.RecordingError{Op: "start", Err: ErrClosed}
	}
	m.state = StateRecording
	m.rec = rec
	m.mu.Unlock()

	log.Info(log.CatRecord, "Recording")
	return nil
}

// discard releases a capture that started after Close and removes its file.
func discard(ctx context.Context, rec audio.Recording) {
	if err := rec.StopAndUnload(ctx); err != nil {
		log.Warn(log.CatRecord, "Failed to release recording started during close", "error", err.Error())
		return
	}
	uri := rec.URI()
	if uri == "" {
		return
	}
	if err := os.Remove(audio.PathFromURI(uri)); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn(log.CatRecord, "Failed to remove discarded recording", "uri", uri, "error", err.Error())
	}
}

func (m *Manager) begin(ctx context.Context) (audio.Recording, error) {
	granted, err := m.mic.RequestPermission(ctx)
	if err != nil {
		return nil, &domain.RecordingError{Op: "permission", Err: err}
	}
	if !granted {
		log.Warn(log.CatRecord, "Microphone permission denied")
		return nil, &domain.PermissionDeniedError{}
	}

	if err := m.mic.SetAudioMode(ctx, audio.Mode{AllowsRecording: true, PlaysInSilentMode: true}); err != nil {
		return nil, &domain.RecordingError{Op: "mode", Err: err}
	}

	rec, err := m.mic.NewRecording(ctx)
	if err != nil {
		return nil, &domain.RecordingError{Op: "prepare", Err: err}
	}
	if err := rec.Prepare(ctx); err != nil {
		return nil, &domain.RecordingError{Op: "prepare", Err: err}
	}
	if err := rec.Start(ctx); err != nil {
		if unloadErr := rec.StopAndUnload(ctx); unloadErr != nil {
			log.Warn(log.CatRecord, "Failed to release recording after start error", "error", unloadErr.Error())
		}
		return nil, &domain.RecordingError{Op: "start", Err: err}
	}
	return rec, nil
}

// Stop finishes the active recording and adds it to the sink under the
// default label. It returns stopped=false when nothing was recording.
func (m *Manager) Stop(ctx context.Context) (uri string, stopped bool, err error) {
	m.mu.Lock()
	if m.state != StateRecording {
		m.mu.Unlock()
		return "", false, nil
	}
	m.state = StateStopping
	rec := m.rec
	m.mu.Unlock()

	err = rec.StopAndUnload(ctx)
	m.setState(StateIdle, nil)
	if err != nil {
		return "", true, &domain.RecordingError{Op: "stop", Err: err}
	}

	uri = rec.URI()
	if uri == "" {
		return "", true, &domain.RecordingError{Op: "stop", Err: errors.New("engine returned no recording reference")}
	}

	if _, err := m.sink.Add(ctx, m.label, uri); err != nil {
		log.ErrorErr(log.CatRecord, "Failed to save recording", err, "uri", uri)
		return uri, true, err
	}
	log.Info(log.CatRecord, "Recording saved", "uri", uri)
	return uri, true, nil
}

// Toggle starts when idle and stops otherwise. uri is set when a recording was saved.
func (m *Manager) Toggle(ctx context.Context) (uri string, err error) {
	if m.Recording() {
		uri, _, err = m.Stop(ctx)
		return uri, err
	}
	return "", m.Start(ctx)
}

// Recording reports whether capture is confirmed running.
func (m *Manager) Recording() bool {
	return m.State() == StateRecording
}

// State returns the current slot state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Close saves an active recording. A Start still waiting on the permission
// prompt is released and discarded when it completes; later Starts fail.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()

	_, _, err := m.Stop(ctx)
	return err
}

func (m *Manager) setState(s State, rec audio.Recording) {
	m.mu.Lock()
	m.state = s
	m.rec = rec
	m.mu.Unlock()
}

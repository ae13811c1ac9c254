package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for expected alternate outcomes and guarded misuse.
var (
	// ErrPickerCancelled indicates the user dismissed the file picker.
	// It is a normal outcome, not a failure.
	ErrPickerCancelled = errors.New("file selection cancelled")

	// ErrBuiltInImmutable indicates an attempt to rename or delete a built-in sound.
	ErrBuiltInImmutable = errors.New("built-in sounds cannot be modified")

	// ErrRecordingInProgress indicates start was requested while a recording is active.
	ErrRecordingInProgress = errors.New("a recording is already in progress")
)

// StorageError indicates the storage engine rejected a read or write.
type StorageError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// SoundNotFoundError indicates no persisted sound has the given id.
type SoundNotFoundError struct {
	ID int64
}

// Error implements the error interface.
func (e *SoundNotFoundError) Error() string {
	return fmt.Sprintf("sound not found: id=%d", e.ID)
}

// PermissionDeniedError indicates microphone access was refused.
type PermissionDeniedError struct {
	Device string
}

// Error implements the error interface.
func (e *PermissionDeniedError) Error() string {
	if e.Device == "" {
		return "microphone permission denied"
	}
	return fmt.Sprintf("microphone permission denied: device=%q", e.Device)
}

// InvalidSoundError indicates a sound has no usable audio reference.
type InvalidSoundError struct {
	ID     SoundID
	Reason string
}

// Error implements the error interface.
func (e *InvalidSoundError) Error() string {
	if e.ID.IsZero() {
		return fmt.Sprintf("invalid sound: %s", e.Reason)
	}
	return fmt.Sprintf("invalid sound %s: %s", e.ID, e.Reason)
}

// PlaybackError indicates a sound failed to load, play, loop, or stop.
type PlaybackError struct {
	ID  SoundID
	Op  string // load, loop, play, stop
	Err error
}

// Error implements the error interface.
func (e *PlaybackError) Error() string {
	return fmt.Sprintf("playback %s failed for sound %s: %v", e.Op, e.ID, e.Err)
}

func (e *PlaybackError) Unwrap() error { return e.Err }

// RecordingError indicates the capture engine failed after permission was granted.
type RecordingError struct {
	Op  string // mode, prepare, start, stop
	Err error
}

// Error implements the error interface.
func (e *RecordingError) Error() string {
	return fmt.Sprintf("recording %s failed: %v", e.Op, e.Err)
}

func (e *RecordingError) Unwrap() error { return e.Err }

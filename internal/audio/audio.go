// Package audio defines the ports soundboard uses to talk to audio engines.
//
// Playback goes through Player and PlaybackHandle, capture through Microphone
// and Recording. Concrete engines live in the ebitenplayer and malgomic
// subpackages; probe validates imported files.
package audio

import (
	"context"
	"io"
	"strings"
)

// Source is a playable audio resource.
type Source struct {
	// Name identifies the resource and carries its extension, e.g. "Sound1.wav"
	// or "/home/me/clip.mp3". Engines pick a decoder from it.
	Name string
	// Open returns a fresh reader over the encoded bytes.
	Open func() (io.ReadCloser, error)
}

// Player loads sources into playback handles.
type Player interface {
	Load(ctx context.Context, src Source) (PlaybackHandle, error)
}

// PlaybackHandle is one loaded, possibly playing sound instance.
// Play returns once playback has started.
type PlaybackHandle interface {
	SetLooping(ctx context.Context, looping bool) error
	Play(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Mode configures the audio session before capture.
type Mode struct {
	AllowsRecording   bool
	PlaysInSilentMode bool
}

// Microphone grants access to the capture device.
type Microphone interface {
	// RequestPermission reports whether capture is allowed. It may block on a prompt.
	RequestPermission(ctx context.Context) (bool, error)
	SetAudioMode(ctx context.Context, mode Mode) error
	NewRecording(ctx context.Context) (Recording, error)
}

// Recording is a single capture lifecycle: Prepare, Start, StopAndUnload, then URI.
type Recording interface {
	Prepare(ctx context.Context) error
	Start(ctx context.Context) error
	StopAndUnload(ctx context.Context) error
	// URI is the reference to the captured audio. Valid after StopAndUnload.
	URI() string
}

// fileScheme prefixes URIs of sounds stored on the local filesystem.
const fileScheme = "file://"

// FileURI returns the URI stored for a local path.
func FileURI(path string) string {
	return fileScheme + path
}

// PathFromURI strips the file scheme. Other values are returned unchanged.
func PathFromURI(uri string) string {
	return strings.TrimPrefix(uri, fileScheme)
}

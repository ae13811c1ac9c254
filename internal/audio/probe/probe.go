// Package probe checks that a file holds audio the playback engine can decode.
//
// Formats are looked up by file extension in a Registry. Default registers
// MP3 (hajimehoshi/go-mp3), Ogg Vorbis (jfreymuth/oggvorbis) and PCM WAV
// (go-audio/wav).
package probe

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	// ErrUnsupportedFormat is returned for extensions with no registered prober.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	// ErrNotWavFile is returned when a .wav file lacks a RIFF/WAVE header.
	ErrNotWavFile = errors.New("not a valid wav file")
	// ErrUnsupportedWavEncoding is returned for non-PCM or unusual bit depths.
	ErrUnsupportedWavEncoding = errors.New("only 8 and 16 bit PCM wav is supported")
)

// Info describes a decodable audio stream.
type Info struct {
	Format     string
	SampleRate int
	Channels   int
	Duration   time.Duration // zero when the format cannot report it cheaply
}

// Prober reads just enough of r to confirm it decodes.
type Prober interface {
	Probe(r io.ReadSeeker) (Info, error)
}

// Registry maps lower-case extensions (without the dot) to probers.
type Registry struct {
	probers map[string]Prober
	mtx     sync.Mutex
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{probers: make(map[string]Prober)}
}

// Default returns a registry with every format the player can decode.
func Default() *Registry {
	r := NewRegistry()
	r.Register("mp3", MP3{})
	r.Register("ogg", Vorbis{})
	r.Register("oga", Vorbis{})
	r.Register("wav", WAV{})
	return r
}

// Register associates ext with p, replacing any previous prober.
func (r *Registry) Register(ext string, p Prober) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.probers[normalizeExt(ext)] = p
}

// Get returns the prober for ext.
func (r *Registry) Get(ext string) (Prober, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	p, ok := r.probers[normalizeExt(ext)]
	return p, ok
}

// Supported reports whether name has a registered extension.
func (r *Registry) Supported(name string) bool {
	_, ok := r.Get(filepath.Ext(name))
	return ok
}

// File probes the file at path.
func (r *Registry) File(path string) (Info, error) {
	ext := filepath.Ext(path)
	p, ok := r.Get(ext)
	if !ok {
		return Info{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path) //nolint:gosec // G304: path comes from the user's own file picker
	if err != nil {
		return Info{}, fmt.Errorf("failed to open %s: %w", filepath.Base(path), err)
	}
	defer func() { _ = f.Close() }()

	info, err := p.Probe(f)
	if err != nil {
		return Info{}, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return info, nil
}

// Reader probes rs, choosing the format from the extension of name.
func (r *Registry) Reader(name string, rs io.ReadSeeker) (Info, error) {
	ext := filepath.Ext(name)
	p, ok := r.Get(ext)
	if !ok {
		return Info{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	info, err := p.Probe(rs)
	if err != nil {
		return Info{}, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return info, nil
}

// Validate implements the import check used by the sound library.
func (r *Registry) Validate(path string) error {
	_, err := r.File(path)
	return err
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

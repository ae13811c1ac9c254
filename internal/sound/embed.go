// Package sound provides the built-in sounds bundled with soundboard.
// The bundle maps a fixed, ordered list of resource keys to playable WAV data.
package sound

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path"
	"slices"
)

// soundFiles contains the embedded built-in clips.
//
//go:embed sounds/*.wav
var soundFiles embed.FS

// builtInKeys is the display order of the bundled clips.
// Built-in ids are positional, so appending is safe and reordering is not.
var builtInKeys = []string{
	"Sound1.wav",
	"Sound2.wav",
	"Sound3.wav",
}

// Bundle is a read-only lookup from resource key to audio data.
type Bundle struct {
	fsys fs.FS
	dir  string
	keys []string
}

// Default returns the bundle compiled into the binary.
func Default() *Bundle {
	return &Bundle{fsys: soundFiles, dir: "sounds", keys: builtInKeys}
}

// NewBundle builds a bundle over fsys with keys in the given order.
// Keys are file names at the root of fsys.
func NewBundle(fsys fs.FS, keys ...string) *Bundle {
	return &Bundle{fsys: fsys, dir: ".", keys: slices.Clone(keys)}
}

// Keys returns the ordered resource keys.
func (b *Bundle) Keys() []string {
	return slices.Clone(b.keys)
}

// Has reports whether key is part of the bundle.
func (b *Bundle) Has(key string) bool {
	return slices.Contains(b.keys, key)
}

// Open returns a reader over the clip stored under key.
func (b *Bundle) Open(key string) (io.ReadCloser, error) {
	if !b.Has(key) {
		return nil, fmt.Errorf("unknown built-in sound %q: %w", key, fs.ErrNotExist)
	}
	f, err := b.fsys.Open(path.Join(b.dir, key))
	if err != nil {
		return nil, fmt.Errorf("failed to open built-in sound %q: %w", key, err)
	}
	return f, nil
}

package playback

import (
	"io"
	"os"

	"github.com/kobeSmallman/mobileSoundboard/internal/audio"
	"github.com/kobeSmallman/mobileSoundboard/internal/sounds/domain"
)

// Bundle looks up built-in sounds by resource key.
type Bundle interface {
	Has(key string) bool
	Open(key string) (io.ReadCloser, error)
}

// Resolver turns catalog entries into playable sources.
// Built-ins resolve through the bundle; user sounds are local files.
type Resolver struct {
	bundle Bundle
}

// NewResolver creates a Resolver over bundle.
func NewResolver(bundle Bundle) *Resolver {
	return &Resolver{bundle: bundle}
}

// Resolve returns the source for entry. It does not touch the file system.
func (r *Resolver) Resolve(entry domain.CatalogEntry) (audio.Source, error) {
	if entry.URI == "" {
		return audio.Source{}, &domain.InvalidSoundError{ID: entry.ID, Reason: "empty audio reference"}
	}

	if entry.IsDefault || entry.ID.IsBuiltIn() {
		key := entry.URI
		if r.bundle == nil || !r.bundle.Has(key) {
			return audio.Source{}, &domain.InvalidSoundError{ID: entry.ID, Reason: "unknown built-in sound " + key}
		}
		return audio.Source{
			Name: key,
			Open: func() (io.ReadCloser, error) { return r.bundle.Open(key) },
		}, nil
	}

	path := audio.PathFromURI(entry.URI)
	return audio.Source{
		Name: path,
		Open: func() (io.ReadCloser, error) {
			return os.Open(path) //nolint:gosec // G304: path is a sound the user added
		},
	}, nil
}

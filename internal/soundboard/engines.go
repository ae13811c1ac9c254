package soundboard

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/kobeSmallman/mobileSoundboard/internal/audio"
	"github.com/kobeSmallman/mobileSoundboard/internal/audio/ebitenplayer"
	"github.com/kobeSmallman/mobileSoundboard/internal/log"
	"github.com/kobeSmallman/mobileSoundboard/internal/sounds/domain"
)

// lazyPlayer opens the output device on first Load, so commands that never
// play (list, add, rename) work on machines without audio. A failed open is
// retried on the next Load.
type lazyPlayer struct {
	open func() (audio.Player, error)

	mu     sync.Mutex
	player audio.Player
}

var _ audio.Player = (*lazyPlayer)(nil)

func newLazyPlayer(cfg ebitenplayer.Config) *lazyPlayer {
	return &lazyPlayer{open: func() (audio.Player, error) {
		return ebitenplayer.New(cfg)
	}}
}

func (l *lazyPlayer) Load(ctx context.Context, src audio.Source) (audio.PlaybackHandle, error) {
	l.mu.Lock()
	if l.player == nil {
		p, err := l.open()
		if err != nil {
			l.mu.Unlock()
			log.Warn(log.CatAudio, "Audio output unavailable", "error", err.Error())
			return nil, fmt.Errorf("starting audio output: %w", err)
		}
		l.player = p
	}
	player := l.player
	l.mu.Unlock()

	return player.Load(ctx, src)
}

// Duration reports how long the sound with id plays once. It is zero when the
// format does not report a length.
func (s *Session) Duration(id domain.SoundID) (time.Duration, error) {
	entry, ok := s.library.Catalog().Lookup(id)
	if !ok {
		return 0, &domain.InvalidSoundError{ID: id, Reason: "not in the catalog"}
	}
	if entry.URI == "" {
		return 0, &domain.InvalidSoundError{ID: id, Reason: "empty audio reference"}
	}

	if entry.IsDefault {
		rc, err := s.bundle.Open(entry.URI)
		if err != nil {
			return 0, &domain.InvalidSoundError{ID: id, Reason: err.Error()}
		}
		defer func() { _ = rc.Close() }()
		data, err := io.ReadAll(rc)
		if err != nil {
			return 0, fmt.Errorf("reading %s: %w", entry.URI, err)
		}
		info, err := s.probes.Reader(entry.URI, bytes.NewReader(data))
		if err != nil {
			return 0, err
		}
		return info.Duration, nil
	}

	info, err := s.probes.File(audio.PathFromURI(entry.URI))
	if err != nil {
		return 0, err
	}
	return info.Duration, nil
}

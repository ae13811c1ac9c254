package ebitenplayer

import (
	"context"
	"sync"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/kobeSmallman/mobileSoundboard/internal/audio"
	"github.com/kobeSmallman/mobileSoundboard/internal/log"
)

// handle wraps one ebiten player over its own loop stream.
type handle struct {
	name   string
	player *ebaudio.Player
	stream *loopStream

	mu     sync.Mutex
	closed bool
}

var _ audio.PlaybackHandle = (*handle)(nil)

func (h *handle) SetLooping(_ context.Context, looping bool) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrHandleClosed
	}
	h.stream.SetLooping(looping)
	return nil
}

func (h *handle) Play(_ context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrHandleClosed
	}
	if h.stream.Finished() {
		if err := h.player.Rewind(); err != nil {
			return err
		}
	}
	h.player.Play()
	log.Debug(log.CatAudio, "Playing", "source", h.name, "looping", h.stream.Looping())
	return nil
}

// Stop halts playback and releases the ebiten player. Stopping twice is a no-op.
func (h *handle) Stop(_ context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	h.player.Pause()
	return h.player.Close()
}

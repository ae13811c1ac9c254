package playback

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/kobeSmallman/mobileSoundboard/internal/audio"
)

var errEngine = errors.New("engine failure")

// fakeHandle records engine calls.
type fakeHandle struct {
	mu        sync.Mutex
	name      string
	looping   bool
	playing   bool
	stopped   bool
	stops     int
	failLoop  bool
	failStop  bool
	failPlay  bool
	loopCalls []bool
	onLoop    func(looping bool) // runs before the call is applied
}

func (h *fakeHandle) SetLooping(_ context.Context, looping bool) error {
	if h.onLoop != nil {
		h.onLoop(looping)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.loopCalls = append(h.loopCalls, looping)
	if h.failLoop {
		return errEngine
	}
	h.looping = looping
	return nil
}

func (h *fakeHandle) Play(context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.failPlay {
		return errEngine
	}
	h.playing = true
	return nil
}

func (h *fakeHandle) Stop(context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stops++
	h.playing = false
	h.stopped = true
	if h.failStop {
		return errEngine
	}
	return nil
}

func (h *fakeHandle) Looping() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.looping
}

func (h *fakeHandle) Stopped() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stopped
}

// fakePlayer hands out fakeHandles. configure runs on each new handle.
type fakePlayer struct {
	mu        sync.Mutex
	loaded    []*fakeHandle
	configure func(name string, h *fakeHandle)
	gate      chan struct{} // when set, Load waits for it
	entered   chan struct{} // when set, Load signals before waiting
	failLoad  bool
}

func (p *fakePlayer) Load(ctx context.Context, src audio.Source) (audio.PlaybackHandle, error) {
	if p.entered != nil {
		p.entered <- struct{}{}
	}
	if p.gate != nil {
		select {
		case <-p.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if p.failLoad {
		return nil, errEngine
	}
	h := &fakeHandle{name: src.Name}
	if p.configure != nil {
		p.configure(src.Name, h)
	}
	p.mu.Lock()
	p.loaded = append(p.loaded, h)
	p.mu.Unlock()
	return h, nil
}

func (p *fakePlayer) Loaded() []*fakeHandle {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*fakeHandle(nil), p.loaded...)
}

// memBundle is a bundle of in-memory clips.
type memBundle map[string]string

func (b memBundle) Has(key string) bool { _, ok := b[key]; return ok }

func (b memBundle) Open(key string) (io.ReadCloser, error) {
	data, ok := b[key]
	if !ok {
		return nil, errors.New("missing " + key)
	}
	return io.NopCloser(strings.NewReader(data)), nil
}

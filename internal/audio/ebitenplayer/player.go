// Package ebitenplayer plays sounds through the ebiten audio context.
//
// Sources are decoded once to 16-bit stereo PCM at the context sample rate and
// kept in a TTL cache, so replaying a sound never decodes it again.
package ebitenplayer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kobeSmallman/mobileSoundboard/internal/audio"
	"github.com/kobeSmallman/mobileSoundboard/internal/log"
)

const tracerName = "github.com/kobeSmallman/mobileSoundboard/internal/audio/ebitenplayer"

// DefaultSampleRate is used when Config.SampleRate is zero.
const DefaultSampleRate = 44100

// ErrHandleClosed is returned when a stopped handle is used again.
var ErrHandleClosed = errors.New("playback handle already stopped")

// Config configures the player.
type Config struct {
	SampleRate int
	CacheTTL   time.Duration
}

// Player implements audio.Player on an ebiten audio context.
type Player struct {
	ctx    *ebaudio.Context
	pcm    *cache.Cache
	tracer trace.Tracer
}

var _ audio.Player = (*Player)(nil)

var (
	contextOnce sync.Once
	sharedCtx   *ebaudio.Context
)

// New creates a Player. ebiten allows one audio context per process, so every
// Player shares it and the first sample rate wins.
func New(cfg Config) (*Player, error) {
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	contextOnce.Do(func() {
		sharedCtx = ebaudio.CurrentContext()
		if sharedCtx == nil {
			sharedCtx = ebaudio.NewContext(rate)
		}
	})
	if sharedCtx.SampleRate() != rate {
		return nil, fmt.Errorf("audio context already running at %d Hz, cannot switch to %d Hz", sharedCtx.SampleRate(), rate)
	}

	log.Debug(log.CatAudio, "Audio context ready", "sample_rate", rate, "cache_ttl", ttl)
	return &Player{
		ctx:    sharedCtx,
		pcm:    cache.New(ttl, ttl*2),
		tracer: otel.Tracer(tracerName),
	}, nil
}

// Load decodes src (or reuses cached PCM) and returns a paused handle.
func (p *Player) Load(ctx context.Context, src audio.Source) (audio.PlaybackHandle, error) {
	_, span := p.tracer.Start(ctx, "player.load", trace.WithAttributes(attribute.String("sound.source", src.Name)))
	defer span.End()

	pcm, err := p.decoded(src)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	stream := newLoopStream(pcm)
	player, err := p.ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create player for %s: %w", src.Name, err)
	}
	return &handle{name: src.Name, player: player, stream: stream}, nil
}

// Forget drops cached PCM for name.
func (p *Player) Forget(name string) {
	p.pcm.Delete(name)
}

func (p *Player) decoded(src audio.Source) ([]byte, error) {
	if cached, found := p.pcm.Get(src.Name); found {
		log.Debug(log.CatAudio, "Decoded audio cache hit", "source", src.Name)
		return cached.([]byte), nil
	}
	if src.Open == nil {
		return nil, fmt.Errorf("source %s has no opener", src.Name)
	}

	rc, err := src.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", src.Name, err)
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", src.Name, err)
	}

	pcm, err := decode(src.Name, data, p.ctx.SampleRate())
	if err != nil {
		return nil, err
	}
	p.pcm.Set(src.Name, pcm, cache.DefaultExpiration)
	log.Debug(log.CatAudio, "Decoded audio", "source", src.Name, "bytes", len(pcm))
	return pcm, nil
}

// decode converts encoded audio to 16-bit stereo PCM at sampleRate.
// The format is chosen from the extension of name.
func decode(name string, data []byte, sampleRate int) ([]byte, error) {
	var (
		stream io.Reader
		err    error
	)

	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	case ".ogg", ".oga":
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format: %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", name, err)
	}
	if len(pcm) == 0 {
		return nil, fmt.Errorf("decoded audio %s is empty", name)
	}
	return pcm, nil
}

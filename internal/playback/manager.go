// Package playback tracks live playback handles and the global loop flag.
//
// At most one handle is registered per sound id. The registry map is never
// mutated in place: every change installs a new map under the lock, and batch
// operations iterate the map they snapshotted. Engine calls run outside the lock.
package playback

import (
	"context"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-multierror"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kobeSmallman/mobileSoundboard/internal/audio"
	"github.com/kobeSmallman/mobileSoundboard/internal/log"
	"github.com/kobeSmallman/mobileSoundboard/internal/sounds/domain"
)

const tracerName = "github.com/kobeSmallman/mobileSoundboard/internal/playback"

// State is the playback state of one sound id.
type State int

const (
	StateIdle State = iota
	StateLoading
	StatePlaying
	StateLooping
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StatePlaying:
		return "playing"
	case StateLooping:
		return "looping"
	default:
		return "idle"
	}
}

// Handle is a registered engine handle.
type Handle struct {
	ID      domain.SoundID
	engine  audio.PlaybackHandle
	looping atomic.Bool
}

// Looping reports the loop state last applied to the engine handle.
func (h *Handle) Looping() bool { return h.looping.Load() }

type registry map[domain.SoundID]*Handle

// Manager coordinates playback across sounds.
type Manager struct {
	player   audio.Player
	resolver *Resolver
	tracer   trace.Tracer

	// loopMu orders every application of the loop flag to engine handles.
	// It is taken before mu and never held across Load.
	loopMu sync.Mutex

	mu       sync.Mutex
	handles  registry
	inflight map[domain.SoundID]int
	looping  bool
}

// NewManager creates a Manager with the loop flag off.
func NewManager(player audio.Player, resolver *Resolver) *Manager {
	return &Manager{
		player:   player,
		resolver: resolver,
		tracer:   otel.Tracer(tracerName),
		handles:  registry{},
		inflight: map[domain.SoundID]int{},
	}
}

// Play loads entry, applies the loop flag, registers the handle and starts it.
// A handle already registered for the same id is stopped before the new one starts.
func (m *Manager) Play(ctx context.Context, entry domain.CatalogEntry) (err error) {
	ctx, span := m.tracer.Start(ctx, "playback.play", trace.WithAttributes(attribute.String("sound.id", entry.ID.String())))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	src, err := m.resolver.Resolve(entry)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.inflight[entry.ID]++
	loop := m.looping
	m.mu.Unlock()

	engine, err := m.player.Load(ctx, src)
	if err != nil {
		m.finishLoad(entry.ID)
		log.ErrorErr(log.CatAudio, "Load failed", err, "id", entry.ID.String(), "source", src.Name)
		return &domain.PlaybackError{ID: entry.ID, Op: "load", Err: err}
	}
	if err := engine.SetLooping(ctx, loop); err != nil {
		_ = engine.Stop(ctx)
		m.finishLoad(entry.ID)
		return &domain.PlaybackError{ID: entry.ID, Op: "loop", Err: err}
	}

	h := &Handle{ID: entry.ID, engine: engine}
	h.looping.Store(loop)

	m.loopMu.Lock()
	m.mu.Lock()
	prev := m.handles[entry.ID]
	next := maps.Clone(m.handles)
	next[entry.ID] = h
	m.handles = next
	m.decInflight(entry.ID)
	current := m.looping
	m.mu.Unlock()

	// The flag may have been toggled while loading. A toggle that starts now
	// waits on loopMu and then sees h in its snapshot.
	if current != loop {
		if loopErr := engine.SetLooping(ctx, current); loopErr != nil {
			log.Warn(log.CatAudio, "Failed to re-apply loop flag", "id", entry.ID.String(), "error", loopErr.Error())
		} else {
			h.looping.Store(current)
		}
	}
	m.loopMu.Unlock()

	if prev != nil {
		if stopErr := prev.engine.Stop(ctx); stopErr != nil {
			log.Warn(log.CatAudio, "Failed to stop replaced handle", "id", entry.ID.String(), "error", stopErr.Error())
		}
	}

	if err := engine.Play(ctx); err != nil {
		m.unregister(h)
		_ = engine.Stop(ctx)
		return &domain.PlaybackError{ID: entry.ID, Op: "play", Err: err}
	}

	log.Debug(log.CatAudio, "Started playback", "id", entry.ID.String(), "looping", h.Looping())
	return nil
}

// ToggleGlobalLoop flips the loop flag and applies it to every live handle.
// Failures are collected; the returned flag is the new value either way.
func (m *Manager) ToggleGlobalLoop(ctx context.Context) (bool, error) {
	m.loopMu.Lock()
	defer m.loopMu.Unlock()

	m.mu.Lock()
	m.looping = !m.looping
	looping := m.looping
	snapshot := m.handles
	m.mu.Unlock()

	var result *multierror.Error
	for _, id := range sortedIDs(snapshot) {
		h := snapshot[id]
		if err := h.engine.SetLooping(ctx, looping); err != nil {
			result = multierror.Append(result, &domain.PlaybackError{ID: id, Op: "loop", Err: err})
			continue
		}
		h.looping.Store(looping)
	}

	log.Info(log.CatAudio, "Global loop toggled", "looping", looping, "live", len(snapshot))
	return looping, result.ErrorOrNil()
}

// StopAll empties the registry and stops every handle it held.
// Handles that fail to stop are dropped anyway.
func (m *Manager) StopAll(ctx context.Context) error {
	m.mu.Lock()
	snapshot := m.handles
	m.handles = registry{}
	m.mu.Unlock()

	var result *multierror.Error
	for _, id := range sortedIDs(snapshot) {
		if err := snapshot[id].engine.Stop(ctx); err != nil {
			result = multierror.Append(result, &domain.PlaybackError{ID: id, Op: "stop", Err: err})
		}
	}

	if len(snapshot) > 0 {
		log.Info(log.CatAudio, "Stopped all", "count", len(snapshot))
	}
	return result.ErrorOrNil()
}

// Stop stops and unregisters one sound. Stopping an idle sound is a no-op.
func (m *Manager) Stop(ctx context.Context, id domain.SoundID) error {
	m.mu.Lock()
	h, ok := m.handles[id]
	if ok {
		next := maps.Clone(m.handles)
		delete(next, id)
		m.handles = next
	}
	m.mu.Unlock()

	if !ok {
		return nil
	}
	if err := h.engine.Stop(ctx); err != nil {
		return &domain.PlaybackError{ID: id, Op: "stop", Err: err}
	}
	return nil
}

// Close stops everything. The manager stays usable.
func (m *Manager) Close(ctx context.Context) error {
	return m.StopAll(ctx)
}

// Looping returns the global loop flag.
func (m *Manager) Looping() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.looping
}

// Live returns the registered ids in a stable order.
func (m *Manager) Live() []domain.SoundID {
	m.mu.Lock()
	snapshot := m.handles
	m.mu.Unlock()
	return sortedIDs(snapshot)
}

// Handle returns the registered handle for id.
func (m *Manager) Handle(id domain.SoundID) (*Handle, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.handles[id]
	return h, ok
}

// State reports the playback state of id.
func (m *Manager) State(id domain.SoundID) State {
	m.mu.Lock()
	defer m.mu.Unlock()

	if h, ok := m.handles[id]; ok {
		if h.Looping() {
			return StateLooping
		}
		return StatePlaying
	}
	if m.inflight[id] > 0 {
		return StateLoading
	}
	return StateIdle
}

func (m *Manager) finishLoad(id domain.SoundID) {
	m.mu.Lock()
	m.decInflight(id)
	m.mu.Unlock()
}

// decInflight must be called with mu held.
func (m *Manager) decInflight(id domain.SoundID) {
	if m.inflight[id] <= 1 {
		delete(m.inflight, id)
		return
	}
	m.inflight[id]--
}

// unregister removes h if it is still the registered handle for its id.
func (m *Manager) unregister(h *Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.handles[h.ID] != h {
		return
	}
	next := maps.Clone(m.handles)
	delete(next, h.ID)
	m.handles = next
}

func sortedIDs(r registry) []domain.SoundID {
	ids := slices.Collect(maps.Keys(r))
	slices.SortFunc(ids, compareIDs)
	return ids
}

// compareIDs orders stored ids numerically before built-ins by index.
func compareIDs(a, b domain.SoundID) int {
	if a.IsBuiltIn() != b.IsBuiltIn() {
		if a.IsBuiltIn() {
			return 1
		}
		return -1
	}
	av, bv := idValue(a), idValue(b)
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

func idValue(id domain.SoundID) int64 {
	if n, ok := id.Stored(); ok {
		return n
	}
	n, _ := id.BuiltIn()
	return int64(n)
}

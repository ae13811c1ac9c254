package application

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/kobeSmallman/mobileSoundboard/internal/log"
	"github.com/kobeSmallman/mobileSoundboard/internal/sounds/domain"
)

// Catalog is the merged read view of stored and built-in sounds.
// Readers always see a complete snapshot; Refresh replaces it whole.
type Catalog struct {
	repo     domain.SoundRepository
	builtIns BuiltIns

	refreshMu sync.Mutex
	snapshot  atomic.Pointer[[]domain.CatalogEntry]
}

// NewCatalog creates a Catalog with an empty snapshot.
func NewCatalog(repo domain.SoundRepository, builtIns BuiltIns) *Catalog {
	c := &Catalog{repo: repo, builtIns: builtIns}
	c.snapshot.Store(&[]domain.CatalogEntry{})
	return c
}

// Refresh rebuilds the snapshot: stored sounds first, then built-ins in bundle order.
// On failure the previous snapshot is kept.
func (c *Catalog) Refresh(ctx context.Context) ([]domain.CatalogEntry, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	sounds, err := c.repo.List(ctx)
	if err != nil {
		log.ErrorErr(log.CatDB, "Catalog refresh failed", err)
		return nil, err
	}

	keys := c.builtIns.Keys()
	entries := make([]domain.CatalogEntry, 0, len(sounds)+len(keys))
	for _, s := range sounds {
		entries = append(entries, domain.EntryFromSound(s))
	}
	for i, key := range keys {
		entries = append(entries, domain.BuiltInEntry(i, key))
	}

	c.snapshot.Store(&entries)
	log.Debug(log.CatDB, "Catalog refreshed", "stored", len(sounds), "builtin", len(keys))
	return slices.Clone(entries), nil
}

// Entries returns a copy of the current snapshot.
func (c *Catalog) Entries() []domain.CatalogEntry {
	return slices.Clone(*c.snapshot.Load())
}

// Lookup finds the entry with id in the current snapshot.
func (c *Catalog) Lookup(id domain.SoundID) (domain.CatalogEntry, bool) {
	for _, e := range *c.snapshot.Load() {
		if e.ID == id {
			return e, true
		}
	}
	return domain.CatalogEntry{}, false
}

package domain

import "context"

// SoundRepository is the durable store of user-added sounds.
// All methods may block on I/O and honor ctx cancellation.
type SoundRepository interface {
	// Init ensures the schema exists. Safe to call repeatedly.
	Init(ctx context.Context) error

	// Add inserts a sound and returns its newly assigned id.
	Add(ctx context.Context, label, uri string) (int64, error)

	// List returns every persisted sound. Order is not contractual.
	List(ctx context.Context) ([]Sound, error)

	// UpdateLabel renames a sound.
	// Returns SoundNotFoundError if id does not exist; nothing changes in that case.
	UpdateLabel(ctx context.Context, id int64, label string) error

	// Remove deletes a sound. Removing a missing id is not an error.
	Remove(ctx context.Context, id int64) error
}

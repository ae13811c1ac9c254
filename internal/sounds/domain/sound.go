package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Sound is a user-added clip persisted by the store.
type Sound struct {
	ID    int64
	Label string
	URI   string // opaque reference to wherever the audio bytes live
}

// idKind tags which identifier space a SoundID belongs to.
type idKind uint8

const (
	kindNone idKind = iota
	kindStored
	kindBuiltIn
)

// builtInPrefix is the textual form of built-in ids.
const builtInPrefix = "default-"

// SoundID identifies a catalog entry: either Stored(n) or BuiltIn(index).
// The zero value is invalid. SoundID is comparable and safe as a map key.
type SoundID struct {
	kind  idKind
	value int64
}

// StoredID returns the identifier of a persisted sound.
func StoredID(id int64) SoundID {
	return SoundID{kind: kindStored, value: id}
}

// BuiltInID returns the identifier of the built-in sound at index.
func BuiltInID(index int) SoundID {
	return SoundID{kind: kindBuiltIn, value: int64(index)}
}

// IsZero reports whether id was never assigned.
func (id SoundID) IsZero() bool { return id.kind == kindNone }

// IsBuiltIn reports whether id refers to a bundled sound.
func (id SoundID) IsBuiltIn() bool { return id.kind == kindBuiltIn }

// Stored returns the store id and true for persisted sounds.
func (id SoundID) Stored() (int64, bool) {
	if id.kind != kindStored {
		return 0, false
	}
	return id.value, true
}

// BuiltIn returns the bundled list index and true for built-in sounds.
func (id SoundID) BuiltIn() (int, bool) {
	if id.kind != kindBuiltIn {
		return 0, false
	}
	return int(id.value), true
}

// String renders "<n>" for stored ids and "default-<index>" for built-ins.
func (id SoundID) String() string {
	switch id.kind {
	case kindStored:
		return strconv.FormatInt(id.value, 10)
	case kindBuiltIn:
		return builtInPrefix + strconv.FormatInt(id.value, 10)
	default:
		return ""
	}
}

// ParseSoundID is the inverse of SoundID.String.
func ParseSoundID(s string) (SoundID, error) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, builtInPrefix); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n < 0 {
			return SoundID{}, fmt.Errorf("invalid built-in sound id %q", s)
		}
		return BuiltInID(n), nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return SoundID{}, fmt.Errorf("invalid sound id %q", s)
	}
	return StoredID(n), nil
}

// CatalogEntry is the UI-facing view of one sound, stored or built-in.
type CatalogEntry struct {
	ID        SoundID
	Label     string
	URI       string
	IsDefault bool
}

// EntryFromSound maps a persisted sound to a catalog entry unchanged.
func EntryFromSound(s Sound) CatalogEntry {
	return CatalogEntry{
		ID:    StoredID(s.ID),
		Label: s.Label,
		URI:   s.URI,
	}
}

// BuiltInEntry maps the built-in resource key at index to a catalog entry.
// The id is positional: reordering the bundled list changes identities.
func BuiltInEntry(index int, key string) CatalogEntry {
	return CatalogEntry{
		ID:        BuiltInID(index),
		Label:     fmt.Sprintf("Default Sound %d", index+1),
		URI:       key,
		IsDefault: true,
	}
}

// PickedFile is a user-chosen audio file returned by a file picker.
type PickedFile struct {
	Path string // local filesystem path
	Name string // display name, usually the base file name
}

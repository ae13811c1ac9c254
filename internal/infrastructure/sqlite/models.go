package sqlite

import "github.com/kobeSmallman/mobileSoundboard/internal/sounds/domain"

// SoundModel represents a row of the sounds table.
// label and uri are nullable in the schema.
type SoundModel struct {
	ID    int64
	Label *string
	URI   *string
}

// toDomain converts a row to a domain Sound, mapping NULL to "".
func (m *SoundModel) toDomain() domain.Sound {
	s := domain.Sound{ID: m.ID}
	if m.Label != nil {
		s.Label = *m.Label
	}
	if m.URI != nil {
		s.URI = *m.URI
	}
	return s
}

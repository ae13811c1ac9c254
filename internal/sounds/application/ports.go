package application

import (
	"context"

	"github.com/kobeSmallman/mobileSoundboard/internal/sounds/domain"
)

// BuiltIns lists the bundled resource keys in display order.
type BuiltIns interface {
	Keys() []string
}

// FilePicker asks the user for an audio file.
// Returns domain.ErrPickerCancelled when the user backs out.
type FilePicker interface {
	Pick(ctx context.Context) (domain.PickedFile, error)
}

// AudioValidator checks that a local file holds decodable audio.
type AudioValidator interface {
	Validate(path string) error
}

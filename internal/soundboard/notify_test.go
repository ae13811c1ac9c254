package soundboard

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kobeSmallman/mobileSoundboard/internal/sounds/domain"
)

func TestNotify(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name  string
		err   error
		level Level
		text  string
	}{
		{"permission", &domain.PermissionDeniedError{}, LevelWarn, "Permission to access microphone is required!"},
		{"recording in progress", domain.ErrRecordingInProgress, LevelWarn, "A recording is already in progress."},
		{"built-in", fmt.Errorf("rename: %w", domain.ErrBuiltInImmutable), LevelWarn, "Default sounds cannot be renamed or deleted."},
		{"not found", &domain.SoundNotFoundError{ID: 3}, LevelWarn, "That sound no longer exists."},
		{"empty reference", &domain.InvalidSoundError{ID: domain.StoredID(1), Reason: "empty audio reference"}, LevelError, "Cannot play the sound: empty audio reference"},
		{"unknown built-in", &domain.InvalidSoundError{ID: domain.BuiltInID(7), Reason: "unknown built-in sound Sound8.wav"}, LevelError, "Cannot play the sound: unknown built-in sound Sound8.wav"},
		{"not in catalog", &domain.InvalidSoundError{ID: domain.StoredID(9), Reason: "not in the catalog"}, LevelError, "Cannot play the sound: not in the catalog"},
		{"no reason", &domain.InvalidSoundError{ID: domain.StoredID(2)}, LevelError, "Cannot play the sound."},
		{"bad import", &domain.InvalidSoundError{Reason: "unsupported audio format"}, LevelError, "Failed to add file: unsupported audio format"},
		{"load", &domain.PlaybackError{ID: domain.StoredID(1), Op: "load", Err: cause}, LevelError, "Cannot play the sound."},
		{"stop", &domain.PlaybackError{ID: domain.StoredID(1), Op: "stop", Err: cause}, LevelError, "Cannot stop the sound."},
		{"recording", &domain.RecordingError{Op: "start", Err: cause}, LevelError, "Recording failed: boom"},
		{"list", &domain.StorageError{Op: "list", Err: cause}, LevelError, "Could not load sounds."},
		{"write", &domain.StorageError{Op: "add", Err: cause}, LevelError, "Could not save changes."},
		{"other", cause, LevelError, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := Notify(tt.err)
			require.True(t, ok)
			assert.Equal(t, tt.level, n.Level)
			assert.Equal(t, tt.text, n.Text)
		})
	}
}

func TestNotify_Silent(t *testing.T) {
	for _, err := range []error{nil, domain.ErrPickerCancelled, fmt.Errorf("import: %w", domain.ErrPickerCancelled), context.Canceled} {
		_, ok := Notify(err)
		assert.False(t, ok, "%v", err)
	}
}

func TestNotify_Aggregate(t *testing.T) {
	var merr *multierror.Error
	merr = multierror.Append(merr,
		&domain.PlaybackError{ID: domain.StoredID(1), Op: "loop", Err: errors.New("a")},
		&domain.PlaybackError{ID: domain.StoredID(2), Op: "loop", Err: errors.New("b")},
	)

	n, ok := Notify(merr.ErrorOrNil())
	require.True(t, ok)
	assert.Equal(t, LevelWarn, n.Level)
	assert.Equal(t, "Cannot play the sound. (2 sounds affected)", n.Text)
}

func TestNotify_SingleAggregateUnwraps(t *testing.T) {
	merr := multierror.Append(nil, &domain.PlaybackError{ID: domain.StoredID(1), Op: "stop", Err: errors.New("x")})

	n, ok := Notify(merr.ErrorOrNil())
	require.True(t, ok)
	assert.Equal(t, "Cannot stop the sound.", n.Text)
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "warn", LevelWarn.String())
	assert.Equal(t, "error", LevelError.String())
}

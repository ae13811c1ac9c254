package soundboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/kobeSmallman/mobileSoundboard/internal/sounds/domain"
)

// Level is the severity of a notification.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notification is a user-visible message.
type Notification struct {
	Level Level
	Text  string
}

// Info builds an informational notification.
func Info(format string, args ...any) Notification {
	return Notification{Level: LevelInfo, Text: fmt.Sprintf(format, args...)}
}

// Notify maps err to the message shown to the user. ok is false when the
// error is a normal outcome that needs no message, such as a dismissed picker.
func Notify(err error) (n Notification, ok bool) {
	if err == nil || errors.Is(err, domain.ErrPickerCancelled) || errors.Is(err, context.Canceled) {
		return Notification{}, false
	}

	var merr *multierror.Error
	if errors.As(err, &merr) && len(merr.Errors) > 1 {
		first, _ := Notify(merr.Errors[0])
		return Notification{
			Level: LevelWarn,
			Text:  fmt.Sprintf("%s (%d sounds affected)", first.Text, len(merr.Errors)),
		}, true
	}

	var (
		permErr     *domain.PermissionDeniedError
		invalidErr  *domain.InvalidSoundError
		playErr     *domain.PlaybackError
		recErr      *domain.RecordingError
		notFoundErr *domain.SoundNotFoundError
		storageErr  *domain.StorageError
	)
	switch {
	case errors.As(err, &permErr):
		return Notification{Level: LevelWarn, Text: "Permission to access microphone is required!"}, true
	case errors.Is(err, domain.ErrRecordingInProgress):
		return Notification{Level: LevelWarn, Text: "A recording is already in progress."}, true
	case errors.Is(err, domain.ErrBuiltInImmutable):
		return Notification{Level: LevelWarn, Text: "Default sounds cannot be renamed or deleted."}, true
	case errors.As(err, &notFoundErr):
		return Notification{Level: LevelWarn, Text: "That sound no longer exists."}, true
	case errors.As(err, &invalidErr):
		if invalidErr.ID.IsZero() {
			return Notification{Level: LevelError, Text: "Failed to add file: " + invalidErr.Reason}, true
		}
		if invalidErr.Reason == "" {
			return Notification{Level: LevelError, Text: "Cannot play the sound."}, true
		}
		return Notification{Level: LevelError, Text: "Cannot play the sound: " + invalidErr.Reason}, true
	case errors.As(err, &playErr):
		if playErr.Op == "stop" {
			return Notification{Level: LevelError, Text: "Cannot stop the sound."}, true
		}
		return Notification{Level: LevelError, Text: "Cannot play the sound."}, true
	case errors.As(err, &recErr):
		if recErr.Err == nil {
			return Notification{Level: LevelError, Text: "Recording failed."}, true
		}
		return Notification{Level: LevelError, Text: "Recording failed: " + recErr.Err.Error()}, true
	case errors.As(err, &storageErr):
		if storageErr.Op == "list" || storageErr.Op == "init" {
			return Notification{Level: LevelError, Text: "Could not load sounds."}, true
		}
		return Notification{Level: LevelError, Text: "Could not save changes."}, true
	default:
		return Notification{Level: LevelError, Text: err.Error()}, true
	}
}

// Package picker lets the user choose an audio file to import.
//
// Native shows the platform file dialog through ncruces/zenity. Path returns a
// file named up front, which is what the CLI uses.
package picker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"

	"github.com/kobeSmallman/mobileSoundboard/internal/log"
	"github.com/kobeSmallman/mobileSoundboard/internal/sounds/application"
	"github.com/kobeSmallman/mobileSoundboard/internal/sounds/domain"
)

// AudioPatterns are the file globs offered by the dialog.
var AudioPatterns = []string{"*.mp3", "*.ogg", "*.oga", "*.wav"}

// Native opens the system file selection dialog.
type Native struct {
	Title string
	Dir   string // initial directory; empty lets the platform decide
}

var _ application.FilePicker = Native{}

// Pick shows the dialog. Dismissing it returns domain.ErrPickerCancelled.
func (n Native) Pick(ctx context.Context) (domain.PickedFile, error) {
	title := n.Title
	if title == "" {
		title = "Add a sound"
	}
	opts := []zenity.Option{
		zenity.Context(ctx),
		zenity.Title(title),
		zenity.FileFilters{{Name: "Audio files", Patterns: AudioPatterns, CaseFold: true}},
	}
	if n.Dir != "" {
		opts = append(opts, zenity.Filename(n.Dir+string(filepath.Separator)))
	}

	path, err := zenity.SelectFile(opts...)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) || errors.Is(err, context.Canceled) {
			return domain.PickedFile{}, domain.ErrPickerCancelled
		}
		log.ErrorErr(log.CatUI, "File dialog failed", err)
		return domain.PickedFile{}, fmt.Errorf("file dialog failed: %w", err)
	}
	return fileFor(path)
}

// Path is a picker that always returns the same file.
type Path string

var _ application.FilePicker = Path("")

// Pick resolves the path. An empty path counts as cancellation.
func (p Path) Pick(_ context.Context) (domain.PickedFile, error) {
	if strings.TrimSpace(string(p)) == "" {
		return domain.PickedFile{}, domain.ErrPickerCancelled
	}
	return fileFor(string(p))
}

// fileFor checks path names a regular file and builds the picked file.
func fileFor(path string) (domain.PickedFile, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return domain.PickedFile{}, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return domain.PickedFile{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if info.IsDir() {
		return domain.PickedFile{}, fmt.Errorf("%s is a directory", path)
	}
	return domain.PickedFile{Path: abs, Name: filepath.Base(abs)}, nil
}

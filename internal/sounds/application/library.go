package application

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/kobeSmallman/mobileSoundboard/internal/audio"
	"github.com/kobeSmallman/mobileSoundboard/internal/log"
	"github.com/kobeSmallman/mobileSoundboard/internal/sounds/domain"
)

// Library is the write path for user sounds.
// Each successful mutation refreshes the Catalog before returning.
type Library struct {
	repo      domain.SoundRepository
	catalog   *Catalog
	validator AudioValidator
}

// NewLibrary creates a Library. validator may be nil to skip import checks.
func NewLibrary(repo domain.SoundRepository, catalog *Catalog, validator AudioValidator) *Library {
	return &Library{repo: repo, catalog: catalog, validator: validator}
}

// Catalog returns the catalog kept in sync by this library.
func (l *Library) Catalog() *Catalog {
	return l.catalog
}

// Add persists a sound and refreshes the catalog.
// The id is valid even when the refresh fails.
func (l *Library) Add(ctx context.Context, label, uri string) (domain.SoundID, error) {
	id, err := l.repo.Add(ctx, label, uri)
	if err != nil {
		return domain.SoundID{}, err
	}
	log.Info(log.CatDB, "Added sound", "id", id, "label", label)

	_, err = l.catalog.Refresh(ctx)
	return domain.StoredID(id), err
}

// Rename changes the label of a stored sound.
func (l *Library) Rename(ctx context.Context, id domain.SoundID, label string) error {
	stored, err := storedID(id)
	if err != nil {
		return err
	}
	if err := l.repo.UpdateLabel(ctx, stored, label); err != nil {
		return err
	}
	log.Info(log.CatDB, "Renamed sound", "id", stored, "label", label)

	_, err = l.catalog.Refresh(ctx)
	return err
}

// Remove deletes a stored sound. Removing a missing sound succeeds.
func (l *Library) Remove(ctx context.Context, id domain.SoundID) error {
	stored, err := storedID(id)
	if err != nil {
		return err
	}
	if err := l.repo.Remove(ctx, stored); err != nil {
		return err
	}
	log.Info(log.CatDB, "Removed sound", "id", stored)

	_, err = l.catalog.Refresh(ctx)
	return err
}

// ImportFile asks picker for a file, validates it and adds it under its display name.
// Cancellation is returned as domain.ErrPickerCancelled.
func (l *Library) ImportFile(ctx context.Context, picker FilePicker) (domain.CatalogEntry, error) {
	file, err := picker.Pick(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrPickerCancelled) {
			log.Debug(log.CatDB, "Import cancelled")
		}
		return domain.CatalogEntry{}, err
	}
	if file.Path == "" {
		return domain.CatalogEntry{}, &domain.InvalidSoundError{Reason: "picker returned an empty path"}
	}

	if l.validator != nil {
		if err := l.validator.Validate(file.Path); err != nil {
			log.Warn(log.CatDB, "Rejected import", "path", file.Path, "error", err.Error())
			return domain.CatalogEntry{}, &domain.InvalidSoundError{Reason: err.Error()}
		}
	}

	label := displayLabel(file)
	uri := audio.FileURI(file.Path)
	id, err := l.Add(ctx, label, uri)
	if id.IsZero() {
		return domain.CatalogEntry{}, err
	}
	return domain.CatalogEntry{ID: id, Label: label, URI: uri}, err
}

// storedID rejects built-in and unset ids before they reach the repository.
func storedID(id domain.SoundID) (int64, error) {
	if id.IsBuiltIn() {
		return 0, domain.ErrBuiltInImmutable
	}
	stored, ok := id.Stored()
	if !ok {
		return 0, &domain.InvalidSoundError{Reason: "missing sound id"}
	}
	return stored, nil
}

// displayLabel prefers the picker's display name without its extension.
func displayLabel(file domain.PickedFile) string {
	name := file.Name
	if name == "" {
		name = filepath.Base(file.Path)
	}
	if trimmed := strings.TrimSuffix(name, filepath.Ext(name)); trimmed != "" {
		return trimmed
	}
	return name
}

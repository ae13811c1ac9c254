// Package domain implements the domain layer for the soundboard sound registry.
//
// This package follows the same layering as the rest of soundboard:
//   - Contains only pure Go code with standard library imports
//   - Defines entity types (Sound, CatalogEntry) and the SoundID value object
//   - Defines the error taxonomy surfaced to the user
//   - Declares the SoundRepository port implemented by infrastructure/sqlite
//
// # Identifiers
//
// Persisted sounds are keyed by an integer assigned by the store. Built-in
// sounds have no row; they are keyed by their position in the bundled list.
// SoundID keeps the two spaces apart so a stored id 0 can never be mistaken
// for built-in index 0.
//
// # Import Aliasing
//
// The application package for sounds has a different name, but callers that
// import both usually alias this one:
//
//	import (
//	    sounds "github.com/kobeSmallman/mobileSoundboard/internal/sounds/domain"
//	)
package domain

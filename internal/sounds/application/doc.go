// Package application implements the sound registry on top of the domain layer.
//
// # Components
//
//   - Catalog: merges persisted sounds with the bundled built-ins into one
//     ordered, fully replaced snapshot.
//   - Library: the only write path. Every successful mutation of the
//     SoundRepository is followed by a Catalog refresh.
//
// # Ports
//
// BuiltIns, FilePicker and AudioValidator are the collaborators this layer
// consumes. The concrete adapters live in internal/sound, internal/picker and
// internal/audio/probe.
package application

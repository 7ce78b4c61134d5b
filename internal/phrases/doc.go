// Package phrases persists the subtitle lines a learner bookmarks while
// watching.
//
// Phrases are keyed by their playback timestamp (stored at millisecond
// precision) and kept in a SQLite database under the configured data
// directory. Open takes an exclusive file lock beside the database so two
// bilingo processes never write the same deck at once; a second Open fails
// with ErrLocked. Decks can be exported to YAML or JSON for flashcard tools
// and imported back.
package phrases

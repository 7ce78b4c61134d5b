// Package session owns the state of one study session: the loaded video, the
// subtitle tracks, and the playback clock.
//
// State is a plain value. Reduce derives the next State from an Action
// without side effects, and Store serializes every update behind one mutex so
// subtitle ingestion and clock ticks are applied in the order they arrive.
// Readers get copies through Snapshot or a subscription callback and never a
// handle they could mutate.
package session

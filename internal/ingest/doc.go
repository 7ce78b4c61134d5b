// Package ingest turns uploaded subtitle files into the bilingual track set
// consumed by playback.
//
// The Engine parses a file (SRT or ASS by extension), classifies its language
// layout, and either starts a fresh TrackSet or completes a partial one whose
// missing language the new file supplies. Re-uploading the language that is
// already present replaces the set rather than appending to it. The engine is
// synchronous and stateless: callers own the TrackSet and must apply uploads
// in order.
//
// Dispatcher sits in front of the engine for callers that receive arbitrary
// files. It routes each file by extension or MIME type, keeps the video
// reference separate from the subtitle tracks, and reports files it cannot
// handle with ErrUnsupportedFile.
package ingest

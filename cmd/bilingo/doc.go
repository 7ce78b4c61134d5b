// Package main hosts the bilingo CLI entrypoint and command graph.
//
// The Cobra-based command tree loads subtitle and video files into a study
// session, answers "what is on screen at T" lookups, simulates the playback
// clock with stop-at-sentence-end, exports single-language SRT tracks, and
// manages the saved-phrase deck. It centralizes configuration resolution,
// .env loading, and structured logging setup so subcommands can focus on
// output instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main

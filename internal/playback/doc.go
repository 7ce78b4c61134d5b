// Package playback answers time-indexed questions against subtitle tracks:
// which cue is on screen at a given second, which sentence a replay should
// jump to, where a skip lands, and when playback should pause because the
// sentence being watched has ended.
//
// Everything here is a pure function of its inputs. Monitor is a value type
// whose Tick returns the next Monitor rather than mutating the receiver, so it
// can live inside reducer state.
package playback

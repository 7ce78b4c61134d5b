package session

import (
	"log/slog"
	"sync"

	"bilingo/internal/ingest"
	"bilingo/internal/logging"
)

// Store serializes updates to a session State.
type Store struct {
	mu          sync.Mutex
	state       State
	engine      *ingest.Engine
	logger      *slog.Logger
	subscribers map[int]func(State)
	nextSubID   int
}

// NewStore wraps initial. A nil engine gets the default ingest engine.
func NewStore(initial State, engine *ingest.Engine, logger *slog.Logger) *Store {
	if engine == nil {
		engine = ingest.NewEngine(ingest.WithLogger(logger))
	}
	return &Store{
		state:       initial,
		engine:      engine,
		logger:      logging.NewComponentLogger(logger, "session"),
		subscribers: make(map[int]func(State)),
	}
}

// Dispatch applies a and returns a copy of the new state.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyLocked(a)
}

// Ingest runs the engine against the current tracks and installs the result.
// Parsing happens under the store lock so concurrent uploads are applied one
// after the other.
func (s *Store) Ingest(file ingest.SubtitleFile) (State, ingest.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	outcome := s.engine.Apply(s.state.Tracks, file)
	return s.applyLocked(IngestSubtitle{Tracks: outcome.Tracks}), outcome
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers fn to receive a copy of the state after every update.
// fn runs while the store is locked and must not call back into the store.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *Store) applyLocked(a Action) State {
	prev := s.state
	s.state = Reduce(prev, a)
	if prev.Playing && !s.state.Playing {
		if _, isTick := a.(Tick); isTick {
			s.logger.Debug("paused at sentence end", logging.Float64("time", s.state.Time))
		}
	}
	for _, fn := range s.subscribers {
		fn(s.state.clone())
	}
	return s.state.clone()
}

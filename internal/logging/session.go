package logging

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// FieldSessionID is the structured logging key for the per-invocation session identifier.
const FieldSessionID = "session_id"

// NewSessionID returns a fresh identifier for one CLI invocation.
func NewSessionID() string {
	return uuid.NewString()
}

// withSession binds the session id to h so every record, including those of
// derived component loggers, carries it. A blank id leaves h unchanged.
func withSession(h slog.Handler, sessionID string) slog.Handler {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return h
	}
	return h.WithAttrs([]slog.Attr{slog.String(FieldSessionID, sessionID)})
}

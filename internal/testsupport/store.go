package testsupport

import (
	"testing"

	"bilingo/internal/config"
	"bilingo/internal/phrases"
)

// MustOpenPhrases opens a phrases.Store for tests and registers cleanup.
func MustOpenPhrases(t testing.TB, cfg *config.Config) *phrases.Store {
	t.Helper()

	store, err := phrases.Open(cfg)
	if err != nil {
		t.Fatalf("phrases.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

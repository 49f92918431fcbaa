package artifact

import (
	"context"
	"sync"

	"PanganPulse/internal/domain/models"
	"PanganPulse/internal/domain/service"
)

// Loader memoizes artifact loads per (market, commodity, windowSize) key
// for the process lifetime. Loading is expensive and artifacts are
// immutable, so each key is resolved at most once even under concurrent
// first access; negative results (not found) are memoized too.
type Loader struct {
	store service.ArtifactStore

	mu      sync.Mutex
	entries map[string]*loadEntry
}

type loadEntry struct {
	once     sync.Once
	artifact *models.ForecastArtifact
	err      error
}

// NewLoader wraps an artifact store with a per-key memo cache.
func NewLoader(store service.ArtifactStore) *Loader {
	return &Loader{
		store:   store,
		entries: make(map[string]*loadEntry),
	}
}

// Load resolves and caches the artifact for a key.
func (l *Loader) Load(ctx context.Context, market, commodity string, windowSize int) (*models.ForecastArtifact, error) {
	key := fileKey(market, commodity, windowSize)

	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &loadEntry{}
		l.entries[key] = e
	}
	l.mu.Unlock()

	e.once.Do(func() {
		e.artifact, e.err = l.store.Load(ctx, market, commodity, windowSize)
	})
	return e.artifact, e.err
}

var _ service.ArtifactStore = (*Loader)(nil)

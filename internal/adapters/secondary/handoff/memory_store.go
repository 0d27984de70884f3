package handoff

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"autopredict-web/internal/config"
	"autopredict-web/internal/core/domain"
	ports "autopredict-web/internal/core/ports/output"
)

type entry struct {
	result    *domain.PredictionResult
	expiresAt time.Time
}

// memoryStore keeps each result until it is taken once or its TTL elapses.
// At most maxEntries results are held; the oldest is evicted first.
// Nothing survives a process restart.
type memoryStore struct {
	mu         sync.Mutex
	entries    map[uuid.UUID]entry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// NewMemoryStore creates an in-process result carrier
func NewMemoryStore(cfg *config.HandoffConfig) ports.ResultCarrier {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	maxEntries := cfg.MaxEntries
	if maxEntries <= 0 {
		maxEntries = 1000
	}
	return &memoryStore{
		entries:    make(map[uuid.UUID]entry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (s *memoryStore) Put(_ context.Context, result *domain.PredictionResult) (uuid.UUID, error) {
	id := uuid.New()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	for len(s.entries) >= s.maxEntries {
		s.evictOldestLocked()
	}
	s.entries[id] = entry{
		result:    result,
		expiresAt: s.now().Add(s.ttl),
	}
	return id, nil
}

func (s *memoryStore) Take(_ context.Context, id uuid.UUID) (*domain.PredictionResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	delete(s.entries, id)

	if s.now().After(e.expiresAt) {
		return nil, false
	}
	return e.result, true
}

func (s *memoryStore) sweepLocked() {
	now := s.now()
	expired := 0
	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, id)
			expired++
		}
	}
	if expired > 0 {
		log.WithField("expired", expired).Debug("dropped unclaimed prediction handoffs")
	}
}

func (s *memoryStore) evictOldestLocked() {
	var (
		oldest    uuid.UUID
		oldestExp time.Time
		found     bool
	)
	for id, e := range s.entries {
		if !found || e.expiresAt.Before(oldestExp) {
			oldest, oldestExp, found = id, e.expiresAt, true
		}
	}
	if !found {
		return
	}
	delete(s.entries, oldest)
	log.WithField("handoff", oldest).Warn("evicted unclaimed prediction handoff at capacity")
}

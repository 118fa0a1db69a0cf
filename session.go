package transmission

import (
	"context"
	"sync"
)

// sessionCache is a mutex-guarded session-id slot. Holding the lock across
// the fetch serializes concurrent refreshes: only one handshake is in flight,
// later callers reuse its result.
type sessionCache struct {
	mu sync.Mutex
	id string
}

func (s *sessionCache) get(ctx context.Context, fetch func(context.Context) (string, error)) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.id != "" {
		return s.id, nil
	}
	id, err := fetch(ctx)
	if err != nil {
		return "", err
	}
	s.id = id
	return id, nil
}

func (s *sessionCache) invalidate() {
	s.mu.Lock()
	s.id = ""
	s.mu.Unlock()
}

func (s *sessionCache) current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

package store

import (
	"context"
	"sync"

	"lendflow/internal/domain"
)

// Memory is an in-memory application store for tests and local runs.
type Memory struct {
	mu   sync.Mutex
	apps []domain.Application
}

func NewMemory() *Memory {
	return &Memory{}
}

func (s *Memory) Save(_ context.Context, app domain.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apps = append(s.apps, app)
	return nil
}

// Saved returns a copy of everything stored so far.
func (s *Memory) Saved() []domain.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Application, len(s.apps))
	copy(out, s.apps)
	return out
}

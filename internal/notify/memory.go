package notify

import (
	"context"
	"sync"

	"lendflow/internal/domain"
)

// Memory records notifications instead of delivering them. Used in tests and
// in local runs without a broker.
type Memory struct {
	mu   sync.Mutex
	sent []domain.NotificationRequest
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) SendNotification(_ context.Context, req domain.NotificationRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, req)
	return nil
}

// Sent returns a copy of everything dispatched so far.
func (m *Memory) Sent() []domain.NotificationRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.NotificationRequest, len(m.sent))
	copy(out, m.sent)
	return out
}

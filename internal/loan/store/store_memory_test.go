package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lendflow/internal/domain"
)

func TestMemory_SaveAndList(t *testing.T) {
	s := NewMemory()

	app := domain.Application{
		ApplicantName: "Maria Santos",
		Email:         "maria@example.com",
		Phone:         "+15550100",
		LoanAmount:    12000,
		LoanPurpose:   "home improvement",
		Documents: []domain.Document{
			{Type: domain.DocumentIDProof, FileRef: "id.pdf"},
		},
	}
	require.NoError(t, s.Save(context.Background(), app))

	saved := s.Saved()
	require.Len(t, saved, 1)
	assert.Equal(t, app, saved[0])
}

func TestMemory_ConcurrentSaves(t *testing.T) {
	s := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Save(context.Background(), domain.Application{Email: "a@b.c"})
		}()
	}
	wg.Wait()

	assert.Len(t, s.Saved(), 50)
}

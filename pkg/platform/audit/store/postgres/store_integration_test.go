//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	audit "lendflow/pkg/platform/audit"
	"lendflow/pkg/platform/audit/store/postgres"
	"lendflow/pkg/testutil/containers"
)

type OutboxStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *postgres.Store
}

func TestOutboxStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OutboxStoreSuite))
}

func (s *OutboxStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = postgres.New(s.postgres.DB)
}

func (s *OutboxStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(), "audit_outbox")
	s.Require().NoError(err)
}

func testEvent(email, action string) audit.Event {
	return audit.Event{
		RunID:     uuid.NewString(),
		Email:     email,
		Action:    action,
		Outcome:   "REJECTED",
		Details:   "Credit score 600 is below minimum required score of 650",
		Timestamp: time.Now().UTC(),
	}
}

func (s *OutboxStoreSuite) TestAppendLandsInOutboxUnpublished() {
	ctx := context.Background()
	email := "outbox-" + uuid.NewString() + "@example.com"

	err := s.store.Append(ctx, testEvent(email, "CREDIT_SCORE_CHECK"))
	s.Require().NoError(err)

	var unpublished int
	row := s.postgres.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM audit_outbox WHERE published_at IS NULL AND payload->>'email' = $1`, email)
	s.Require().NoError(row.Scan(&unpublished))
	s.Equal(1, unpublished)
}

func (s *OutboxStoreSuite) TestListByEmailReturnsEventsOldestFirst() {
	ctx := context.Background()
	email := "list-" + uuid.NewString() + "@example.com"

	first := testEvent(email, "BASIC_VALIDATION")
	second := testEvent(email, "CREDIT_SCORE_CHECK")
	second.Timestamp = first.Timestamp.Add(time.Second)

	s.Require().NoError(s.store.Append(ctx, first))
	s.Require().NoError(s.store.Append(ctx, second))
	s.Require().NoError(s.store.Append(ctx, testEvent("other@example.com", "BASIC_VALIDATION")))

	events, err := s.store.ListByEmail(ctx, email)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal("BASIC_VALIDATION", events[0].Action)
	s.Equal("CREDIT_SCORE_CHECK", events[1].Action)
	s.Equal(first.RunID, events[0].RunID)
	s.NotEmpty(events[0].ID)
	s.WithinDuration(first.Timestamp, events[0].Timestamp, time.Millisecond)
}

func (s *OutboxStoreSuite) TestAppendRejectsMalformedEventID() {
	err := s.store.Append(context.Background(), audit.Event{
		ID:     "not-a-uuid",
		RunID:  uuid.NewString(),
		Action: "BASIC_VALIDATION",
	})
	s.Error(err)
}

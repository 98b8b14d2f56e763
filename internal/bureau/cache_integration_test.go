//go:build integration

package bureau_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"lendflow/internal/bureau"
	"lendflow/internal/decision/ports"
	"lendflow/pkg/testutil/containers"
)

type ScoreCacheSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	cache *bureau.ScoreCache
}

func TestScoreCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(ScoreCacheSuite))
}

func (s *ScoreCacheSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.cache = bureau.NewScoreCache(s.redis.Client, time.Minute, nil)
}

func (s *ScoreCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *ScoreCacheSuite) TestPutThenGet() {
	ctx := context.Background()
	report := &ports.CreditReport{Successful: true, Score: 720}

	s.Require().NoError(s.cache.Put(ctx, "+15550100", report))

	got, hit := s.cache.Get(ctx, "+15550100")
	s.Require().True(hit)
	s.Equal(report.Score, got.Score)
	s.True(got.Successful)
}

func (s *ScoreCacheSuite) TestGetMiss() {
	_, hit := s.cache.Get(context.Background(), "+15559999")
	s.False(hit)
}

func (s *ScoreCacheSuite) TestGetCorruptEntry() {
	ctx := context.Background()
	err := s.redis.Client.Set(ctx, "bureau:score:+15550100", "not json", time.Minute).Err()
	s.Require().NoError(err)

	_, hit := s.cache.Get(ctx, "+15550100")
	s.False(hit)
}

func (s *ScoreCacheSuite) TestEntryExpires() {
	ctx := context.Background()
	shortCache := bureau.NewScoreCache(s.redis.Client, 50*time.Millisecond, nil)

	s.Require().NoError(shortCache.Put(ctx, "+15550100", &ports.CreditReport{Successful: true, Score: 700}))
	time.Sleep(100 * time.Millisecond)

	_, hit := shortCache.Get(ctx, "+15550100")
	s.False(hit)
}

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/orgmigrate/pkg/domain/mock"
	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/infra"
	"github.com/m-mizutani/orgmigrate/pkg/usecase"
	"github.com/m-mizutani/orgmigrate/pkg/utils/logging"
)

func TestWaitRateLimit(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ctx := logging.CtxWithTime(context.Background(), func() time.Time { return now })
	policy := usecase.RateLimitPolicy{LowWater: 10, Margin: 5 * time.Second}

	testCases := map[string]struct {
		limit *model.RateLimit
		want  []time.Duration
	}{
		"enough quota": {
			limit: &model.RateLimit{Remaining: 10, Reset: now.Add(time.Minute)},
			want:  nil,
		},
		"low quota waits until reset plus margin": {
			limit: &model.RateLimit{Remaining: 9, Reset: now.Add(time.Minute)},
			want:  []time.Duration{65 * time.Second},
		},
		"reset already passed": {
			limit: &model.RateLimit{Remaining: 0, Reset: now.Add(-time.Minute)},
			want:  nil,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			sleeper := &sleepRecorder{}
			client := &mock.GitHubMock{
				RateLimitFunc: func(ctx context.Context) (*model.RateLimit, error) {
					return tc.limit, nil
				},
			}
			uc := usecase.New(infra.New(infra.WithSleeper(sleeper.Sleep)), usecase.WithRateLimitPolicy(policy))

			gt.NoError(t, uc.WaitRateLimitForTest(ctx, client))
			gt.V(t, sleeper.slept).Equal(tc.want)
		})
	}

	t.Run("rate limit lookup failure", func(t *testing.T) {
		client := &mock.GitHubMock{
			RateLimitFunc: func(ctx context.Context) (*model.RateLimit, error) {
				return nil, errors.New("unavailable")
			},
		}
		uc := usecase.New(infra.New())
		gt.Error(t, uc.WaitRateLimitForTest(ctx, client))
	})
}

package usecase

import (
	"context"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgmigrate/pkg/domain/interfaces"
	"github.com/m-mizutani/orgmigrate/pkg/utils/logging"
)

// waitRateLimit sleeps until the quota resets plus a margin when fewer than
// LowWater core requests remain.
func (x *UseCase) waitRateLimit(ctx context.Context, client interfaces.GitHub) error {
	limit, err := client.RateLimit(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to get rate limit")
	}

	if limit.Remaining >= x.rateLimit.LowWater {
		return nil
	}

	now := logging.CtxTime(ctx)
	resumeAt := limit.Reset.Add(x.rateLimit.Margin)
	wait := resumeAt.Sub(now)
	if wait <= 0 {
		return nil
	}

	logging.From(ctx).Info("rate limit is low, waiting for reset",
		slog.Int("remaining", limit.Remaining),
		slog.Int("limit", limit.Limit),
		slog.Time("reset", limit.Reset),
		slog.String("resume", humanize.RelTime(resumeAt, now, "ago", "from now")),
		slog.Duration("wait", wait),
	)

	if err := x.clients.Sleep(ctx, wait); err != nil {
		return goerr.Wrap(err, "interrupted while waiting for rate limit reset")
	}
	return nil
}

package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/orgmigrate/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Throttle holds the pauses between mutating calls and the rate limit policy
type Throttle struct {
	createDelay time.Duration
	pushDelay   time.Duration
	issueDelay  time.Duration
	lowWater    int64
	margin      time.Duration
}

func (x *Throttle) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "create-delay",
			Usage:       "Pause after creating a repository",
			Category:    "Throttle",
			Value:       usecase.DefaultThrottle.AfterCreate,
			Sources:     cli.EnvVars("ORGMIGRATE_CREATE_DELAY"),
			Destination: &x.createDelay,
		},
		&cli.DurationFlag{
			Name:        "push-delay",
			Usage:       "Pause after pushing a repository with changes",
			Category:    "Throttle",
			Value:       usecase.DefaultThrottle.AfterPush,
			Sources:     cli.EnvVars("ORGMIGRATE_PUSH_DELAY"),
			Destination: &x.pushDelay,
		},
		&cli.DurationFlag{
			Name:        "issue-delay",
			Usage:       "Pause after creating an issue",
			Category:    "Throttle",
			Value:       usecase.DefaultThrottle.AfterIssue,
			Sources:     cli.EnvVars("ORGMIGRATE_ISSUE_DELAY"),
			Destination: &x.issueDelay,
		},
		&cli.Int64Flag{
			Name:        "rate-limit-low-water",
			Usage:       "Wait for the rate limit reset when fewer requests remain",
			Category:    "Throttle",
			Value:       int64(usecase.DefaultRateLimitPolicy.LowWater),
			Sources:     cli.EnvVars("ORGMIGRATE_RATE_LIMIT_LOW_WATER"),
			Destination: &x.lowWater,
		},
		&cli.DurationFlag{
			Name:        "rate-limit-margin",
			Usage:       "Extra wait after the rate limit reset time",
			Category:    "Throttle",
			Value:       usecase.DefaultRateLimitPolicy.Margin,
			Sources:     cli.EnvVars("ORGMIGRATE_RATE_LIMIT_MARGIN"),
			Destination: &x.margin,
		},
	}
}

func (x *Throttle) Options() []usecase.Option {
	return []usecase.Option{
		usecase.WithThrottle(usecase.Throttle{
			AfterCreate: x.createDelay,
			AfterPush:   x.pushDelay,
			AfterIssue:  x.issueDelay,
		}),
		usecase.WithRateLimitPolicy(usecase.RateLimitPolicy{
			LowWater: int(x.lowWater),
			Margin:   x.margin,
		}),
	}
}

func (x *Throttle) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("createDelay", x.createDelay),
		slog.Duration("pushDelay", x.pushDelay),
		slog.Duration("issueDelay", x.issueDelay),
		slog.Int64("lowWater", x.lowWater),
		slog.Duration("margin", x.margin),
	)
}

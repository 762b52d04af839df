package config

import (
	"log/slog"

	"github.com/m-mizutani/orgmigrate/pkg/domain/interfaces"
	"github.com/m-mizutani/orgmigrate/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Retry selects how failed branch pushes are handled
type Retry struct {
	maxAttempts int64
}

func (x *Retry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "max-attempts",
			Usage:       "Push attempts per branch. The operator is asked after each failure if 0",
			Category:    "Push",
			Sources:     cli.EnvVars("ORGMIGRATE_MAX_ATTEMPTS"),
			Destination: &x.maxAttempts,
		},
	}
}

func (x *Retry) Policy(prompter interfaces.Prompter) usecase.RetryPolicy {
	if x.maxAttempts > 0 {
		return usecase.MaxAttempts(int(x.maxAttempts))
	}
	return usecase.PromptRetry(prompter)
}

func (x *Retry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("maxAttempts", x.maxAttempts),
	)
}

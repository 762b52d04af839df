package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/orgmigrate/pkg/usecase"
	"github.com/m-mizutani/orgmigrate/pkg/utils/cache"
	"github.com/urfave/cli/v3"
)

// Issues configures replication of issues to the target
type Issues struct {
	attribution string
	noFooter    bool
	cacheSize   int64
	cacheTTL    time.Duration
}

func (x *Issues) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "attribution",
			Usage:       "Name written in the footer of replicated issues",
			Category:    "Issues",
			Value:       usecase.DefaultAttribution,
			Sources:     cli.EnvVars("ORGMIGRATE_ATTRIBUTION"),
			Destination: &x.attribution,
		},
		&cli.BoolFlag{
			Name:        "no-footer",
			Usage:       "Copy issue bodies without the provenance footer",
			Category:    "Issues",
			Sources:     cli.EnvVars("ORGMIGRATE_NO_FOOTER"),
			Destination: &x.noFooter,
		},
		&cli.Int64Flag{
			Name:        "issue-cache-size",
			Usage:       "Number of target repositories whose open issues are cached",
			Category:    "Issues",
			Value:       cache.DefaultSize,
			Sources:     cli.EnvVars("ORGMIGRATE_ISSUE_CACHE_SIZE"),
			Destination: &x.cacheSize,
		},
		&cli.DurationFlag{
			Name:        "issue-cache-ttl",
			Usage:       "Lifetime of cached target issues",
			Category:    "Issues",
			Value:       cache.DefaultTTL,
			Sources:     cli.EnvVars("ORGMIGRATE_ISSUE_CACHE_TTL"),
			Destination: &x.cacheTTL,
		},
	}
}

func (x *Issues) Options() []usecase.Option {
	return []usecase.Option{
		usecase.WithAttribution(x.attribution),
		usecase.WithFooter(!x.noFooter),
		usecase.WithIssueCache(int(x.cacheSize), x.cacheTTL),
	}
}

func (x *Issues) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("attribution", x.attribution),
		slog.Bool("footer", !x.noFooter),
		slog.Int64("cacheSize", x.cacheSize),
		slog.Duration("cacheTTL", x.cacheTTL),
	)
}

package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/orgmigrate/pkg/cli/config"
	"github.com/m-mizutani/orgmigrate/pkg/infra"
	"github.com/m-mizutani/orgmigrate/pkg/usecase"
	"github.com/m-mizutani/orgmigrate/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// migrateCommand runs provision, push and issues in order against an already
// fetched snapshot.
func migrateCommand() *cli.Command {
	var (
		skipIssues bool

		source   config.Source
		target   config.Target
		storage  config.Storage
		throttle config.Throttle
		retry    config.Retry
		issues   config.Issues
	)

	return &cli.Command{
		Name:  "migrate",
		Usage: "Provision target repositories, push branches and tags, then replicate issues",
		Flags: slice.Flatten([]cli.Flag{
			&cli.BoolFlag{
				Name:        "skip-issues",
				Usage:       "Do not replicate issues",
				Sources:     cli.EnvVars("ORGMIGRATE_SKIP_ISSUES"),
				Destination: &skipIssues,
			},
		},
			source.Flags(),
			target.Flags(),
			storage.Flags(),
			throttle.Flags(),
			retry.Flags(),
			issues.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = logging.WithRun(ctx, c.Name)
			logging.From(ctx).Info("starting migrate",
				slog.Any("source", &source),
				slog.Any("target", &target),
				slog.Any("storage", &storage),
				slog.Any("throttle", &throttle),
				slog.Any("retry", &retry),
				slog.Any("issues", &issues),
				slog.Bool("skipIssues", skipIssues),
			)

			srcClient, err := source.New()
			if err != nil {
				return err
			}
			dstClient, err := target.New()
			if err != nil {
				return err
			}
			clients, err := newClients(ctx, &storage,
				infra.WithSource(srcClient),
				infra.WithTarget(dstClient),
			)
			if err != nil {
				return err
			}

			options := append(throttle.Options(), issues.Options()...)
			options = append(options, usecase.WithRetryPolicy(retry.Policy(clients.Prompter())))
			uc := newUseCase(clients, &storage, options...)
			input := config.MigrationInput(&source, &target)

			if _, err := uc.ProvisionRepositories(ctx, input); err != nil {
				return err
			}

			reports, err := uc.SyncRepositories(ctx, input)
			logSyncReports(ctx, reports)
			if err != nil {
				return err
			}

			if skipIssues {
				return nil
			}
			_, err = uc.ReplicateIssues(ctx, input)
			return err
		},
	}
}

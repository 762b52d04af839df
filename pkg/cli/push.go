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

func pushCommand() *cli.Command {
	var (
		source   config.Source
		target   config.Target
		storage  config.Storage
		throttle config.Throttle
		retry    config.Retry
	)

	return &cli.Command{
		Name:  "push",
		Usage: "Pull every branch from the source and push branches and tags to the target",
		Flags: slice.Flatten(
			source.Flags(),
			target.Flags(),
			storage.Flags(),
			throttle.Flags(),
			retry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = logging.WithRun(ctx, c.Name)
			logging.From(ctx).Info("starting push",
				slog.Any("source", &source),
				slog.Any("target", &target),
				slog.Any("storage", &storage),
				slog.Any("throttle", &throttle),
				slog.Any("retry", &retry),
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

			uc := newUseCase(clients, &storage, append(throttle.Options(),
				usecase.WithRetryPolicy(retry.Policy(clients.Prompter())),
			)...)

			reports, err := uc.SyncRepositories(ctx, config.MigrationInput(&source, &target))
			logSyncReports(ctx, reports)
			return err
		},
	}
}

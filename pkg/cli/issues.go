package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/orgmigrate/pkg/cli/config"
	"github.com/m-mizutani/orgmigrate/pkg/infra"
	"github.com/m-mizutani/orgmigrate/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func issuesCommand() *cli.Command {
	var (
		source   config.Source
		target   config.Target
		storage  config.Storage
		throttle config.Throttle
		issues   config.Issues
	)

	return &cli.Command{
		Name:  "issues",
		Usage: "Create open issues fetched from the source in the target repositories",
		Flags: slice.Flatten(
			source.Flags(),
			target.Flags(),
			storage.Flags(),
			throttle.Flags(),
			issues.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = logging.WithRun(ctx, c.Name)
			logging.From(ctx).Info("starting issue replication",
				slog.Any("source", &source),
				slog.Any("target", &target),
				slog.Any("storage", &storage),
				slog.Any("throttle", &throttle),
				slog.Any("issues", &issues),
			)

			client, err := target.New()
			if err != nil {
				return err
			}
			clients, err := newClients(ctx, &storage, infra.WithTarget(client))
			if err != nil {
				return err
			}

			uc := newUseCase(clients, &storage, append(throttle.Options(), issues.Options()...)...)
			_, err = uc.ReplicateIssues(ctx, config.MigrationInput(&source, &target))
			return err
		},
	}
}

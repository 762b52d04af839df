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

func provisionCommand() *cli.Command {
	var (
		source   config.Source
		target   config.Target
		storage  config.Storage
		throttle config.Throttle
	)

	return &cli.Command{
		Name:  "provision",
		Usage: "Create fetched repositories in the target organization",
		Flags: slice.Flatten(
			source.Flags(),
			target.Flags(),
			storage.Flags(),
			throttle.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = logging.WithRun(ctx, c.Name)
			logging.From(ctx).Info("starting provision",
				slog.Any("source", &source),
				slog.Any("target", &target),
				slog.Any("storage", &storage),
				slog.Any("throttle", &throttle),
			)

			client, err := target.New()
			if err != nil {
				return err
			}
			clients, err := newClients(ctx, &storage, infra.WithTarget(client))
			if err != nil {
				return err
			}

			uc := newUseCase(clients, &storage, throttle.Options()...)
			report, err := uc.ProvisionRepositories(ctx, config.MigrationInput(&source, &target))
			if err != nil {
				return err
			}

			logging.From(ctx).Info("provisioned repositories",
				slog.Int("created", len(report.Created)),
				slog.Int("skipped", len(report.Skipped)),
			)
			return nil
		},
	}
}

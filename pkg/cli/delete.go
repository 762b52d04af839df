package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/orgmigrate/pkg/cli/config"
	"github.com/m-mizutani/orgmigrate/pkg/infra"
	"github.com/m-mizutani/orgmigrate/pkg/infra/prompt"
	"github.com/m-mizutani/orgmigrate/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func deleteCommand() *cli.Command {
	var (
		yes bool

		source  config.Source
		target  config.Target
		storage config.Storage
	)

	return &cli.Command{
		Name:  "delete",
		Usage: "Delete the fetched repositories from the target organization",
		Flags: slice.Flatten([]cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "Delete without confirmation",
				Destination: &yes,
			},
		},
			source.Flags(),
			target.Flags(),
			storage.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = logging.WithRun(ctx, c.Name)
			logging.From(ctx).Info("starting delete",
				slog.Any("source", &source),
				slog.Any("target", &target),
				slog.Any("storage", &storage),
				slog.Bool("yes", yes),
			)

			client, err := target.New()
			if err != nil {
				return err
			}
			options := []infra.Option{infra.WithTarget(client)}
			if yes {
				options = append(options, infra.WithPrompter(prompt.NewStatic(true)))
			}
			clients, err := newClients(ctx, &storage, options...)
			if err != nil {
				return err
			}

			uc := newUseCase(clients, &storage)
			report, err := uc.DeleteRepositories(ctx, config.MigrationInput(&source, &target))
			if err != nil {
				return err
			}

			for _, name := range report.Failed {
				logging.From(ctx).Warn("repository was not deleted", slog.Any("repo", name))
			}
			logging.From(ctx).Info("deleted repositories",
				slog.Int("deleted", len(report.Deleted)),
				slog.Int("missing", len(report.Missing)),
				slog.Int("failed", len(report.Failed)),
			)
			return nil
		},
	}
}

package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/orgmigrate/pkg/cli/config"
	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/infra"
	"github.com/m-mizutani/orgmigrate/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func fetchCommand() *cli.Command {
	var (
		skipIssues bool

		source   config.Source
		storage  config.Storage
		throttle config.Throttle
	)

	return &cli.Command{
		Name:  "fetch",
		Usage: "Fetch repository list and issues of the source organization",
		Flags: slice.Flatten([]cli.Flag{
			&cli.BoolFlag{
				Name:        "skip-issues",
				Usage:       "Fetch repository list only",
				Sources:     cli.EnvVars("ORGMIGRATE_SKIP_ISSUES"),
				Destination: &skipIssues,
			},
		},
			source.Flags(),
			storage.Flags(),
			throttle.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = logging.WithRun(ctx, c.Name)
			logging.From(ctx).Info("starting fetch",
				slog.Any("source", &source),
				slog.Any("storage", &storage),
				slog.Bool("skipIssues", skipIssues),
			)

			client, err := source.New()
			if err != nil {
				return err
			}
			clients, err := newClients(ctx, &storage, infra.WithSource(client))
			if err != nil {
				return err
			}
			uc := newUseCase(clients, &storage, throttle.Options()...)

			input := &model.FetchInput{Org: source.Org()}
			snapshot, err := uc.FetchRepositories(ctx, input)
			if err != nil {
				return err
			}
			logging.From(ctx).Info("fetched repositories",
				slog.Any("org", snapshot.Organization),
				slog.Int("count", len(snapshot.Repositories)),
			)

			if skipIssues {
				return nil
			}
			return uc.FetchIssues(ctx, input)
		},
	}
}

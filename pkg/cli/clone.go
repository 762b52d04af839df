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

func cloneCommand() *cli.Command {
	var (
		source  config.Source
		storage config.Storage
	)

	return &cli.Command{
		Name:  "clone",
		Usage: "Clone every fetched repository into the data directory",
		Flags: slice.Flatten(
			source.Flags(),
			storage.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = logging.WithRun(ctx, c.Name)
			logging.From(ctx).Info("starting clone",
				slog.Any("source", &source),
				slog.Any("storage", &storage),
			)

			client, err := source.New()
			if err != nil {
				return err
			}
			clients, err := newClients(ctx, &storage, infra.WithSource(client))
			if err != nil {
				return err
			}

			uc := newUseCase(clients, &storage)
			return uc.CloneRepositories(ctx, &model.FetchInput{Org: source.Org()})
		},
	}
}

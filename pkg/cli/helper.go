package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgmigrate/pkg/cli/config"
	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/infra"
	"github.com/m-mizutani/orgmigrate/pkg/usecase"
	"github.com/m-mizutani/orgmigrate/pkg/utils/logging"
)

// newClients opens the metadata store and appends it to options
func newClients(ctx context.Context, storage *config.Storage, options ...infra.Option) (*infra.Clients, error) {
	store, err := storage.NewMetadataStore(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open metadata store")
	}
	return infra.New(append(options, infra.WithMetadataStore(store))...), nil
}

func newUseCase(clients *infra.Clients, storage *config.Storage, options ...usecase.Option) *usecase.UseCase {
	return usecase.New(clients, append([]usecase.Option{
		usecase.WithWorkspaceDir(storage.DataDir()),
	}, options...)...)
}

// logSyncReports lists branches that could not be pulled from the source.
// They were pushed in their previous local state.
func logSyncReports(ctx context.Context, reports []*model.SyncReport) {
	for _, report := range reports {
		for _, failure := range report.PullFailures {
			logging.From(ctx).Warn("branch was not updated from source",
				slog.Any("repo", report.Repository),
				slog.Any("branch", failure.Branch),
				slog.String("error", failure.Error),
			)
		}
	}
}

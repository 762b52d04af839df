package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgmigrate/pkg/domain/interfaces"
	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
	"github.com/m-mizutani/orgmigrate/pkg/repository"
	"github.com/m-mizutani/orgmigrate/pkg/utils/logging"
)

// FetchRepositories refreshes the stored repository snapshot of the
// organization. Page 1 is requested conditionally with the validators of the
// stored snapshot and a "not modified" answer keeps the snapshot as is.
func (x *UseCase) FetchRepositories(ctx context.Context, input *model.FetchInput) (*model.RepositorySnapshot, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if x.clients.Source() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "source GitHub client is not configured")
	}

	logger := logging.From(ctx)
	store := x.clients.MetadataStore()

	cached, err := store.GetSnapshot(ctx, input.Org)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(err, "failed to load repository snapshot", goerr.V("org", input.Org))
		}
		cached = &model.RepositorySnapshot{Organization: input.Org}
	}

	validators := model.Validators{
		ETag:         cached.ETag,
		LastModified: cached.LastModified,
	}

	var fetched []*model.Repository
	var first *model.RepositoryPage
	for page := 1; ; page++ {
		req := &interfaces.ListOrgRepositoriesInput{
			Org:     input.Org,
			Page:    page,
			PerPage: repositoriesPerPage,
		}
		if page == 1 {
			req.Validators = validators
		}

		result, err := x.clients.Source().ListOrgRepositories(ctx, req)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list repositories",
				goerr.V("org", input.Org),
				goerr.V("page", page),
			)
		}

		if page == 1 {
			if result.NotModified {
				logger.Info("repository list not modified, keeping snapshot",
					slog.Any("org", input.Org),
					slog.Int("repositories", len(cached.Repositories)),
				)
				return cached, nil
			}
			first = result
		}

		fetched = append(fetched, result.Repositories...)
		logger.Debug("fetched repository page",
			slog.Any("org", input.Org),
			slog.Int("page", page),
			slog.Int("count", len(result.Repositories)),
		)

		if len(result.Repositories) < repositoriesPerPage {
			break
		}
	}

	snapshot := &model.RepositorySnapshot{
		Organization: input.Org,
		ETag:         first.Validators.ETag,
		LastModified: first.Validators.LastModified,
		FetchedAt:    logging.CtxTime(ctx),
		Repositories: model.MergeRepositories(cached.Repositories, fetched),
	}

	if err := store.PutSnapshot(ctx, snapshot); err != nil {
		return nil, goerr.Wrap(err, "failed to save repository snapshot", goerr.V("org", input.Org))
	}

	logger.Info("repository snapshot updated",
		slog.Any("org", input.Org),
		slog.Int("before", len(cached.Repositories)),
		slog.Int("after", len(snapshot.Repositories)),
	)

	return snapshot, nil
}

// loadSnapshot returns the stored snapshot written by FetchRepositories
func (x *UseCase) loadSnapshot(ctx context.Context, org types.OrgName) (*model.RepositorySnapshot, error) {
	snapshot, err := x.clients.MetadataStore().GetSnapshot(ctx, org)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(err, "repository snapshot not found, run fetch first", goerr.V("org", org))
		}
		return nil, goerr.Wrap(err, "failed to load repository snapshot", goerr.V("org", org))
	}
	return snapshot, nil
}

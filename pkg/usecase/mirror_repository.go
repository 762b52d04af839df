package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
)

// MirrorRepository provisions and synchronizes a single source repository.
// Repository attributes are read from the source directly, so it works for
// repositories created after the last fetch.
func (x *UseCase) MirrorRepository(ctx context.Context, input *model.MigrationInput, name types.RepoName) (*model.SyncReport, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "repository name is empty")
	}
	if x.clients.Source() == nil || x.clients.Target() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "both source and target GitHub clients are required")
	}

	repo, err := x.clients.Source().GetRepository(ctx, input.SourceOrg, name)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get source repository",
			goerr.V("org", input.SourceOrg),
			goerr.V("repo", name),
		)
	}

	if _, err := x.provisionRepository(ctx, input, repo); err != nil {
		return nil, err
	}

	return x.SyncRepository(ctx, input, repo)
}

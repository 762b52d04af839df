package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgmigrate/pkg/domain/interfaces"
	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
	"github.com/m-mizutani/orgmigrate/pkg/utils/logging"
)

// CloneRepositories creates a working copy for every snapshot repository that
// does not have one yet.
func (x *UseCase) CloneRepositories(ctx context.Context, input *model.FetchInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	if x.clients.Source() == nil {
		return goerr.Wrap(types.ErrInvalidOption, "source GitHub client is not configured")
	}

	snapshot, err := x.loadSnapshot(ctx, input.Org)
	if err != nil {
		return err
	}

	logger := logging.From(ctx)
	var cloned, existing, failed int
	for i, repo := range snapshot.Repositories {
		_, created, err := x.openOrClone(ctx, input.Org, repo.Name)
		if err != nil {
			failed++
			logger.Warn("failed to clone repository",
				slog.Any("repo", repo.Name),
				slog.Any("error", err),
			)
			continue
		}

		if !created {
			existing++
			logger.Debug("working copy already exists", slog.Any("repo", repo.Name))
			continue
		}

		cloned++
		logger.Info("repository cloned",
			slog.Int("progress", i+1),
			slog.Int("total", len(snapshot.Repositories)),
			slog.Any("repo", repo.Name),
		)
	}

	logger.Info("clone completed",
		slog.Any("org", input.Org),
		slog.Int("cloned", cloned),
		slog.Int("existing", existing),
		slog.Int("failed", failed),
	)

	if failed > 0 {
		return goerr.New("some repositories failed to clone",
			goerr.V("org", input.Org),
			goerr.V("cloned", cloned),
			goerr.V("failed", failed),
		)
	}

	return nil
}

// openOrClone opens the working copy of a source repository, cloning it
// first when missing. created reports whether a clone happened.
func (x *UseCase) openOrClone(ctx context.Context, org types.OrgName, name types.RepoName) (interfaces.WorkingCopy, bool, error) {
	dir := x.workingCopyDir(org, name)

	wc, err := x.clients.Git().Open(ctx, dir)
	if err == nil {
		return wc, false, nil
	}
	if !errors.Is(err, types.ErrNotFound) {
		return nil, false, err
	}

	remote, err := x.clients.Source().Remote(ctx, org, name)
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to resolve source remote", goerr.V("repo", name))
	}

	wc, err = x.clients.Git().Clone(ctx, remote, dir)
	if err != nil {
		return nil, false, err
	}
	return wc, true, nil
}

package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
	"github.com/m-mizutani/orgmigrate/pkg/utils/logging"
)

// ProvisionRepositories creates the target repository of every snapshot
// repository unless a repository of that name already exists.
func (x *UseCase) ProvisionRepositories(ctx context.Context, input *model.MigrationInput) (*model.ProvisionReport, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if x.clients.Target() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "target GitHub client is not configured")
	}

	snapshot, err := x.loadSnapshot(ctx, input.SourceOrg)
	if err != nil {
		return nil, err
	}

	report := &model.ProvisionReport{}

	for _, repo := range snapshot.Repositories {
		name := input.TargetName(repo.Name)
		created, err := x.provisionRepository(ctx, input, repo)
		if created {
			report.Created = append(report.Created, name)
		}
		if err != nil {
			return report, err
		}
		if !created {
			report.Skipped = append(report.Skipped, name)
		}
	}

	logging.From(ctx).Info("provision completed",
		slog.Any("org", input.TargetOrg),
		slog.Int("created", len(report.Created)),
		slog.Int("skipped", len(report.Skipped)),
	)

	return report, nil
}

// provisionRepository creates the target repository of repo if it does not
// exist and reports whether it was created.
func (x *UseCase) provisionRepository(ctx context.Context, input *model.MigrationInput, repo *model.Repository) (bool, error) {
	logger := logging.From(ctx)
	target := x.clients.Target()
	name := input.TargetName(repo.Name)

	_, err := target.GetRepository(ctx, input.TargetOrg, name)
	if err == nil {
		logger.Info("target repository exists, skipping", slog.Any("repo", name))
		return false, nil
	}
	if !errors.Is(err, types.ErrNotFound) {
		return false, goerr.Wrap(err, "failed to look up target repository",
			goerr.V("org", input.TargetOrg),
			goerr.V("repo", name),
		)
	}

	created, err := target.CreateRepository(ctx, input.TargetOrg, &model.Repository{
		Name:         name,
		Private:      repo.Private,
		Description:  repo.Description,
		Homepage:     repo.Homepage,
		HasIssues:    repo.HasIssues,
		HasProjects:  repo.HasProjects,
		HasWiki:      repo.HasWiki,
		HasDownloads: repo.HasDownloads,
	})
	if err != nil {
		return false, goerr.Wrap(err, "failed to create target repository",
			goerr.V("org", input.TargetOrg),
			goerr.V("repo", name),
		)
	}

	logger.Info("target repository created",
		slog.Any("repo", name),
		slog.Int64("id", created.ID),
		slog.Bool("private", repo.Private),
	)

	if err := x.clients.Sleep(ctx, x.throttle.AfterCreate); err != nil {
		return true, err
	}
	return true, nil
}

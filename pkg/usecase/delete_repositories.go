package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
	"github.com/m-mizutani/orgmigrate/pkg/utils/logging"
)

// DeleteRepositories removes the target counterpart of every snapshot
// repository after one confirmation. Names are taken from the stored snapshot
// only, never from a live listing of the target.
func (x *UseCase) DeleteRepositories(ctx context.Context, input *model.MigrationInput) (*model.DeleteReport, error) {
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

	logger := logging.From(ctx)
	report := &model.DeleteReport{}
	if len(snapshot.Repositories) == 0 {
		logger.Info("no repositories to delete", slog.Any("org", input.TargetOrg))
		return report, nil
	}

	names := make([]types.RepoName, 0, len(snapshot.Repositories))
	for _, repo := range snapshot.Repositories {
		names = append(names, input.TargetName(repo.Name))
	}

	ok, err := x.clients.Prompter().Confirm(ctx, deleteMessage(input.TargetOrg, names))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to confirm deletion")
	}
	if !ok {
		return nil, goerr.Wrap(types.ErrDeletionDeclined, "deletion declined", goerr.V("org", input.TargetOrg))
	}

	for _, name := range names {
		err := x.clients.Target().DeleteRepository(ctx, input.TargetOrg, name)
		switch {
		case err == nil:
			report.Deleted = append(report.Deleted, name)
			logger.Info("repository deleted", slog.Any("repo", name))
		case errors.Is(err, types.ErrNotFound):
			report.Missing = append(report.Missing, name)
			logger.Info("repository already absent", slog.Any("repo", name))
		default:
			report.Failed = append(report.Failed, name)
			logger.Warn("failed to delete repository",
				slog.Any("repo", name),
				slog.Any("error", err),
			)
		}
	}

	logger.Info("delete completed",
		slog.Any("org", input.TargetOrg),
		slog.Int("deleted", len(report.Deleted)),
		slog.Int("missing", len(report.Missing)),
		slog.Int("failed", len(report.Failed)),
	)

	return report, nil
}

func deleteMessage(org types.OrgName, names []types.RepoName) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The following %d repositories in %s will be deleted:\n", len(names), org)
	for _, name := range names {
		fmt.Fprintf(&b, "  - %s\n", name)
	}
	b.WriteString("Proceed?")
	return b.String()
}

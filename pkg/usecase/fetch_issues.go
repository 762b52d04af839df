package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
	"github.com/m-mizutani/orgmigrate/pkg/utils/logging"
)

// FetchIssues stores the issues of every snapshot repository. A repository
// that fails is logged and skipped.
func (x *UseCase) FetchIssues(ctx context.Context, input *model.FetchInput) error {
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
	var stored, skipped, failed int
	for i, repo := range snapshot.Repositories {
		if !repo.HasIssues {
			logger.Debug("issues disabled, skipping", slog.Any("repo", repo.Name))
			skipped++
			continue
		}

		if err := x.waitRateLimit(ctx, x.clients.Source()); err != nil {
			return err
		}

		issues, err := x.clients.Source().ListIssues(ctx, input.Org, repo.Name, model.IssueStateAll)
		if err != nil {
			failed++
			logger.Warn("failed to fetch issues",
				slog.Any("org", input.Org),
				slog.Any("repo", repo.Name),
				slog.Any("error", err),
			)
			continue
		}

		if err := x.clients.MetadataStore().PutIssues(ctx, input.Org, repo.Name, issues); err != nil {
			failed++
			logger.Warn("failed to save issues",
				slog.Any("org", input.Org),
				slog.Any("repo", repo.Name),
				slog.Any("error", err),
			)
			continue
		}

		stored++
		logger.Info("issues fetched",
			slog.Int("progress", i+1),
			slog.Int("total", len(snapshot.Repositories)),
			slog.Any("repo", repo.Name),
			slog.Int("issues", len(issues)),
		)
	}

	logger.Info("issue fetch completed",
		slog.Any("org", input.Org),
		slog.Int("stored", stored),
		slog.Int("skipped", skipped),
		slog.Int("failed", failed),
	)

	return nil
}

package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
	"github.com/m-mizutani/orgmigrate/pkg/repository"
	"github.com/m-mizutani/orgmigrate/pkg/utils/logging"
)

// ReplicateIssues creates the open issues of every source repository in the
// target repository, skipping those already present there.
func (x *UseCase) ReplicateIssues(ctx context.Context, input *model.MigrationInput) ([]*model.IssueReport, error) {
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
	dedup := newIssueCache(x.clients.Target(), input.TargetOrg, x.cacheOptions...)

	var reports []*model.IssueReport
	for _, repo := range snapshot.Repositories {
		issues, err := x.clients.MetadataStore().GetIssues(ctx, input.SourceOrg, repo.Name)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				logger.Debug("no stored issues, skipping", slog.Any("repo", repo.Name))
				continue
			}
			return reports, goerr.Wrap(err, "failed to load stored issues", goerr.V("repo", repo.Name))
		}

		report, err := x.replicateRepositoryIssues(ctx, input, repo, issues, dedup)
		if report != nil {
			reports = append(reports, report)
		}
		if err != nil {
			return reports, err
		}

		logger.Info("issues replicated",
			slog.Any("repo", repo.Name),
			slog.Int("created", report.Created),
			slog.Int("duplicated", report.Duplicated),
			slog.Int("skipped", report.Skipped),
		)
	}

	return reports, nil
}

func (x *UseCase) replicateRepositoryIssues(ctx context.Context, input *model.MigrationInput, repo *model.Repository, issues []*model.Issue, dedup *issueCache) (*model.IssueReport, error) {
	logger := logging.From(ctx)
	target := x.clients.Target()
	targetName := input.TargetName(repo.Name)
	report := &model.IssueReport{Repository: repo.Name}

	// oldest first so numbering on the target follows the source
	sorted := make([]*model.Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Number < sorted[j].Number })

	for _, issue := range sorted {
		if !issue.Open() {
			report.Skipped++
			continue
		}

		candidate := &model.Issue{
			Title: issue.Title,
			Body:  x.issueBody(issue),
		}

		migrated, err := dedup.AlreadyMigrated(ctx, targetName, candidate)
		if err != nil {
			return report, goerr.Wrap(err, "failed to list target issues", goerr.V("repo", targetName))
		}
		if migrated {
			report.Duplicated++
			logger.Debug("issue already exists in target",
				slog.Any("repo", targetName),
				slog.Int("number", issue.Number),
				slog.String("title", issue.Title),
			)
			continue
		}

		if err := x.waitRateLimit(ctx, target); err != nil {
			return report, err
		}

		created, err := target.CreateIssue(ctx, input.TargetOrg, targetName, candidate)
		if err != nil {
			return report, goerr.Wrap(err, "failed to create issue",
				goerr.V("repo", targetName),
				goerr.V("number", issue.Number),
				goerr.V("title", issue.Title),
			)
		}
		if created == nil {
			created = candidate
		}
		dedup.Add(targetName, created)
		report.Created++

		logger.Info("issue created",
			slog.Any("repo", targetName),
			slog.Int("source_number", issue.Number),
			slog.Int("target_number", created.Number),
		)

		if err := x.clients.Sleep(ctx, x.throttle.AfterIssue); err != nil {
			return report, err
		}
	}

	return report, nil
}

func (x *UseCase) issueBody(issue *model.Issue) string {
	if !x.footer {
		return issue.Body
	}
	return model.ProvenanceBody(issue.Body, issue.HTMLURL, x.attribution)
}

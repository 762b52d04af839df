package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgmigrate/pkg/domain/interfaces"
	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
	"github.com/m-mizutani/orgmigrate/pkg/utils/logging"
)

// SyncRepositories replicates branches and tags of every snapshot repository
// in snapshot order. It stops at the first repository that fails.
func (x *UseCase) SyncRepositories(ctx context.Context, input *model.MigrationInput) ([]*model.SyncReport, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if x.clients.Source() == nil || x.clients.Target() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "both source and target GitHub clients are required")
	}

	snapshot, err := x.loadSnapshot(ctx, input.SourceOrg)
	if err != nil {
		return nil, err
	}

	logger := logging.From(ctx)
	var reports []*model.SyncReport
	var updated int
	for i, repo := range snapshot.Repositories {
		report, err := x.SyncRepository(ctx, input, repo)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
		if !report.UpToDate() {
			updated++
		}

		logger.Info("repository synchronized",
			slog.Int("progress", i+1),
			slog.Int("total", len(snapshot.Repositories)),
			slog.Any("repo", repo.Name),
			slog.Bool("up_to_date", report.UpToDate()),
			slog.Int("branches", len(report.Branches)),
			slog.Int("pull_failures", len(report.PullFailures)),
		)
	}

	logger.Info("push completed",
		slog.Any("org", input.TargetOrg),
		slog.Int("repositories", len(reports)),
		slog.Int("updated", updated),
	)

	return reports, nil
}

// SyncRepository reconciles the working copy of repo with the source and
// pushes every local branch and all tags to the target.
func (x *UseCase) SyncRepository(ctx context.Context, input *model.MigrationInput, repo *model.Repository) (*model.SyncReport, error) {
	targetName := input.TargetName(repo.Name)
	ctx = logging.With(ctx, logging.From(ctx).With(slog.Any("repo", repo.Name)))

	wc, _, err := x.openOrClone(ctx, input.SourceOrg, repo.Name)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to prepare working copy", goerr.V("repo", repo.Name))
	}

	sourceRemote, err := x.clients.Source().Remote(ctx, input.SourceOrg, repo.Name)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve source remote", goerr.V("repo", repo.Name))
	}
	targetRemote, err := x.clients.Target().Remote(ctx, input.TargetOrg, targetName)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve target remote", goerr.V("repo", targetName))
	}

	report := &model.SyncReport{Repository: repo.Name}

	if err := wc.WithRemote(ctx, sourceRemote, func(ctx context.Context) error {
		return reconcileBranches(ctx, wc, report)
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to reconcile with source", goerr.V("repo", repo.Name))
	}

	if err := wc.WithRemote(ctx, targetRemote, func(ctx context.Context) error {
		return x.pushAll(ctx, wc, report)
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to push to target",
			goerr.V("repo", repo.Name),
			goerr.V("target", targetName),
		)
	}

	if !report.UpToDate() {
		if err := x.clients.Sleep(ctx, x.throttle.AfterPush); err != nil {
			return report, err
		}
	}

	return report, nil
}

// reconcileBranches gives every source branch a local tracking branch and
// fast-forwards all local branches. Pull failures are recorded, not returned.
func reconcileBranches(ctx context.Context, wc interfaces.WorkingCopy, report *model.SyncReport) error {
	logger := logging.From(ctx)

	if err := wc.Fetch(ctx); err != nil {
		return err
	}

	remotes, err := wc.RemoteBranches(ctx)
	if err != nil {
		return err
	}
	for _, name := range remotes {
		if name == "HEAD" {
			continue
		}
		if err := wc.TrackBranch(ctx, name); err != nil {
			return err
		}
	}

	locals, err := wc.LocalBranches(ctx)
	if err != nil {
		return err
	}
	for _, branch := range locals {
		err := wc.Checkout(ctx, branch.Name)
		if err == nil {
			err = wc.Pull(ctx, branch.Name)
		}
		if err != nil {
			logger.Warn("failed to update branch from source",
				slog.Any("branch", branch.Name),
				slog.Any("error", err),
			)
			report.PullFailures = append(report.PullFailures, model.PullFailure{
				Branch: branch.Name,
				Error:  err.Error(),
			})
		}
	}

	return nil
}

func (x *UseCase) pushAll(ctx context.Context, wc interfaces.WorkingCopy, report *model.SyncReport) error {
	logger := logging.From(ctx)

	locals, err := wc.LocalBranches(ctx)
	if err != nil {
		return err
	}

	for _, branch := range locals {
		if err := wc.Checkout(ctx, branch.Name); err != nil {
			return err
		}

		result, err := x.pushWithRetry(ctx, func(ctx context.Context) (types.PushResult, error) {
			return wc.Push(ctx, branch.Name)
		})
		if err != nil {
			return goerr.Wrap(err, "branch push aborted", goerr.V("branch", branch.Name))
		}

		report.Branches = append(report.Branches, model.BranchPush{Branch: branch.Name, Result: result})
		logger.Info("branch pushed",
			slog.Any("branch", branch.Name),
			slog.String("result", result.String()),
		)
	}

	result, err := x.pushWithRetry(ctx, wc.PushTags)
	if err != nil {
		return goerr.Wrap(err, "tag push aborted")
	}
	report.Tags = result
	logger.Info("tags pushed", slog.String("result", result.String()))

	return nil
}

func (x *UseCase) pushWithRetry(ctx context.Context, push func(ctx context.Context) (types.PushResult, error)) (types.PushResult, error) {
	for attempt := 1; ; attempt++ {
		result, err := push(ctx)
		if err == nil {
			return result, nil
		}

		logging.From(ctx).Warn("push failed",
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)

		decision, perr := x.retry.Attempt(ctx, attempt, err)
		if perr != nil {
			return result, perr
		}
		if decision == types.Abort {
			return result, goerr.Wrap(types.ErrPushAborted, "push failed",
				goerr.V("attempt", attempt),
				goerr.V("cause", err.Error()),
			)
		}
	}
}

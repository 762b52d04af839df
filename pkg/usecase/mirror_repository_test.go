package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/orgmigrate/pkg/domain/interfaces"
	"github.com/m-mizutani/orgmigrate/pkg/domain/mock"
	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
	"github.com/m-mizutani/orgmigrate/pkg/infra"
	"github.com/m-mizutani/orgmigrate/pkg/repository/memory"
	"github.com/m-mizutani/orgmigrate/pkg/usecase"
)

func TestMirrorRepository(t *testing.T) {
	wc := newFakeCopy(t, []types.BranchName{"main"}, nil)
	wc.pushResult["main"] = types.PushUpdated

	source := &mock.GitHubMock{
		RemoteFunc: sourceRemote,
		GetRepositoryFunc: func(ctx context.Context, org types.OrgName, name types.RepoName) (*model.Repository, error) {
			gt.V(t, org).Equal(types.OrgName("src-org"))
			return &model.Repository{ID: 1, Name: name, Private: true}, nil
		},
	}
	target := &mock.GitHubMock{
		RemoteFunc: targetRemote,
		GetRepositoryFunc: func(ctx context.Context, org types.OrgName, name types.RepoName) (*model.Repository, error) {
			return nil, types.ErrNotFound
		},
		CreateRepositoryFunc: func(ctx context.Context, org types.OrgName, repo *model.Repository) (*model.Repository, error) {
			return repo, nil
		},
	}
	sleeper := &sleepRecorder{}

	// no snapshot is stored
	uc := usecase.New(infra.New(
		infra.WithSource(source),
		infra.WithTarget(target),
		infra.WithGit(&mock.GitMock{
			OpenFunc: func(ctx context.Context, dir string) (interfaces.WorkingCopy, error) {
				return wc.mock, nil
			},
		}),
		infra.WithMetadataStore(memory.New()),
		infra.WithSleeper(sleeper.Sleep),
	), usecase.WithThrottle(testThrottle))

	report, err := uc.MirrorRepository(context.Background(), migrationInput(), "alpha")
	gt.NoError(t, err)
	gt.V(t, report.Repository).Equal(types.RepoName("alpha"))
	gt.V(t, wc.pushed).Equal([]types.BranchName{"main"})

	creates := target.CreateRepositoryCalls()
	gt.A(t, creates).Length(1)
	gt.V(t, creates[0].Repo.Name).Equal(types.RepoName("alpha"))
	gt.True(t, creates[0].Repo.Private)
	gt.V(t, sleeper.total()).Equal(testThrottle.AfterCreate + testThrottle.AfterPush)
}

func TestMirrorRepository_SourceMissing(t *testing.T) {
	source := &mock.GitHubMock{
		GetRepositoryFunc: func(ctx context.Context, org types.OrgName, name types.RepoName) (*model.Repository, error) {
			return nil, types.ErrNotFound
		},
	}
	target := &mock.GitHubMock{}
	uc := usecase.New(infra.New(infra.WithSource(source), infra.WithTarget(target)))

	_, err := uc.MirrorRepository(context.Background(), migrationInput(), "gone")
	gt.True(t, errors.Is(err, types.ErrNotFound))
	gt.A(t, target.GetRepositoryCalls()).Length(0)
}

func TestMirrorRepository_EmptyName(t *testing.T) {
	uc := usecase.New(infra.New())
	_, err := uc.MirrorRepository(context.Background(), migrationInput(), "")
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}

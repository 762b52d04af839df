package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/orgmigrate/pkg/domain/mock"
	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
	"github.com/m-mizutani/orgmigrate/pkg/infra"
	"github.com/m-mizutani/orgmigrate/pkg/usecase"
)

func TestProvisionRepositories(t *testing.T) {
	ctx := context.Background()
	store := newStoreWithSnapshot(t,
		&model.Repository{ID: 1, Name: "present"},
		&model.Repository{
			ID:           2,
			Name:         "missing",
			Private:      true,
			Description:  "a repository",
			Homepage:     "https://example.com",
			HasIssues:    true,
			HasWiki:      true,
			HasProjects:  false,
			HasDownloads: true,
		},
	)

	target := &mock.GitHubMock{
		GetRepositoryFunc: func(ctx context.Context, org types.OrgName, name types.RepoName) (*model.Repository, error) {
			gt.V(t, org).Equal(types.OrgName("dst-org"))
			if name == "present" {
				return &model.Repository{ID: 100, Name: name}, nil
			}
			return nil, types.ErrNotFound
		},
		CreateRepositoryFunc: func(ctx context.Context, org types.OrgName, repo *model.Repository) (*model.Repository, error) {
			created := *repo
			created.ID = 200
			return &created, nil
		},
	}
	sleeper := &sleepRecorder{}
	uc := usecase.New(
		infra.New(infra.WithTarget(target), infra.WithMetadataStore(store), infra.WithSleeper(sleeper.Sleep)),
		usecase.WithThrottle(testThrottle),
	)

	report, err := uc.ProvisionRepositories(ctx, migrationInput())
	gt.NoError(t, err)
	gt.V(t, report.Created).Equal([]types.RepoName{"missing"})
	gt.V(t, report.Skipped).Equal([]types.RepoName{"present"})

	calls := target.CreateRepositoryCalls()
	gt.A(t, calls).Length(1)
	gt.V(t, calls[0].Org).Equal(types.OrgName("dst-org"))
	gt.V(t, *calls[0].Repo).Equal(model.Repository{
		Name:         "missing",
		Private:      true,
		Description:  "a repository",
		Homepage:     "https://example.com",
		HasIssues:    true,
		HasWiki:      true,
		HasDownloads: true,
	})
	gt.V(t, sleeper.slept).Equal([]time.Duration{testThrottle.AfterCreate})

	t.Run("second run creates nothing", func(t *testing.T) {
		target.GetRepositoryFunc = func(ctx context.Context, org types.OrgName, name types.RepoName) (*model.Repository, error) {
			return &model.Repository{Name: name}, nil
		}
		report, err := uc.ProvisionRepositories(ctx, migrationInput())
		gt.NoError(t, err)
		gt.A(t, report.Created).Length(0)
		gt.A(t, report.Skipped).Length(2)
		gt.A(t, target.CreateRepositoryCalls()).Length(1)
	})
}

func TestProvisionRepositories_SanitizeNames(t *testing.T) {
	store := newStoreWithSnapshot(t, &model.Repository{ID: 1, Name: "my repo.v2"})
	target := &mock.GitHubMock{
		GetRepositoryFunc: func(ctx context.Context, org types.OrgName, name types.RepoName) (*model.Repository, error) {
			gt.V(t, name).Equal(types.RepoName("my-repo-v2"))
			return nil, types.ErrNotFound
		},
		CreateRepositoryFunc: func(ctx context.Context, org types.OrgName, repo *model.Repository) (*model.Repository, error) {
			return repo, nil
		},
	}
	sleeper := &sleepRecorder{}
	uc := usecase.New(infra.New(infra.WithTarget(target), infra.WithMetadataStore(store), infra.WithSleeper(sleeper.Sleep)))

	input := migrationInput()
	input.SanitizeNames = true
	report, err := uc.ProvisionRepositories(context.Background(), input)
	gt.NoError(t, err)
	gt.V(t, report.Created).Equal([]types.RepoName{"my-repo-v2"})
	gt.V(t, target.CreateRepositoryCalls()[0].Repo.Name).Equal(types.RepoName("my-repo-v2"))
}

func TestProvisionRepositories_LookupFailure(t *testing.T) {
	store := newStoreWithSnapshot(t,
		&model.Repository{ID: 1, Name: "alpha"},
		&model.Repository{ID: 2, Name: "beta"},
	)
	target := &mock.GitHubMock{
		GetRepositoryFunc: func(ctx context.Context, org types.OrgName, name types.RepoName) (*model.Repository, error) {
			return nil, errors.New("bad credentials")
		},
	}
	uc := usecase.New(infra.New(infra.WithTarget(target), infra.WithMetadataStore(store)))

	_, err := uc.ProvisionRepositories(context.Background(), migrationInput())
	gt.Error(t, err)
	gt.A(t, target.GetRepositoryCalls()).Length(1)
	gt.A(t, target.CreateRepositoryCalls()).Length(0)
}

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/orgmigrate/pkg/domain/mock"
	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
	"github.com/m-mizutani/orgmigrate/pkg/infra"
	"github.com/m-mizutani/orgmigrate/pkg/usecase"
)

func TestDeleteRepositories(t *testing.T) {
	store := newStoreWithSnapshot(t,
		&model.Repository{ID: 1, Name: "alpha"},
		&model.Repository{ID: 2, Name: "gone"},
		&model.Repository{ID: 3, Name: "locked"},
		&model.Repository{ID: 4, Name: "zeta"},
	)
	target := &mock.GitHubMock{
		DeleteRepositoryFunc: func(ctx context.Context, org types.OrgName, name types.RepoName) error {
			gt.V(t, org).Equal(types.OrgName("dst-org"))
			switch name {
			case "gone":
				return types.ErrNotFound
			case "locked":
				return errors.New("forbidden")
			}
			return nil
		},
	}
	prompter := &mock.PrompterMock{
		ConfirmFunc: func(ctx context.Context, message string) (bool, error) {
			gt.S(t, message).Contains("alpha")
			gt.S(t, message).Contains("zeta")
			return true, nil
		},
	}
	uc := usecase.New(infra.New(
		infra.WithTarget(target),
		infra.WithMetadataStore(store),
		infra.WithPrompter(prompter),
	))

	report, err := uc.DeleteRepositories(context.Background(), migrationInput())
	gt.NoError(t, err)
	gt.A(t, prompter.ConfirmCalls()).Length(1)
	gt.A(t, target.DeleteRepositoryCalls()).Length(4)
	gt.V(t, report.Deleted).Equal([]types.RepoName{"alpha", "zeta"})
	gt.V(t, report.Missing).Equal([]types.RepoName{"gone"})
	gt.V(t, report.Failed).Equal([]types.RepoName{"locked"})
}

func TestDeleteRepositories_Declined(t *testing.T) {
	store := newStoreWithSnapshot(t, &model.Repository{ID: 1, Name: "alpha"})
	target := &mock.GitHubMock{}
	prompter := &mock.PrompterMock{
		ConfirmFunc: func(ctx context.Context, message string) (bool, error) {
			return false, nil
		},
	}
	uc := usecase.New(infra.New(
		infra.WithTarget(target),
		infra.WithMetadataStore(store),
		infra.WithPrompter(prompter),
	))

	report, err := uc.DeleteRepositories(context.Background(), migrationInput())
	gt.True(t, errors.Is(err, types.ErrDeletionDeclined))
	gt.V(t, report).Equal(nil)
	gt.A(t, target.DeleteRepositoryCalls()).Length(0)
}

func TestDeleteRepositories_EmptySnapshot(t *testing.T) {
	store := newStoreWithSnapshot(t)
	prompter := &mock.PrompterMock{}
	uc := usecase.New(infra.New(
		infra.WithTarget(&mock.GitHubMock{}),
		infra.WithMetadataStore(store),
		infra.WithPrompter(prompter),
	))

	report, err := uc.DeleteRepositories(context.Background(), migrationInput())
	gt.NoError(t, err)
	gt.A(t, report.Deleted).Length(0)
	gt.A(t, prompter.ConfirmCalls()).Length(0)
}

func TestDeleteMessage(t *testing.T) {
	msg := usecase.DeleteMessageForTest("dst-org", []types.RepoName{"alpha", "beta"})
	gt.S(t, msg).Contains("2 repositories in dst-org")
	gt.S(t, msg).Contains("  - alpha\n")
	gt.S(t, msg).Contains("  - beta\n")
}

package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/orgmigrate/pkg/domain/interfaces"
	"github.com/m-mizutani/orgmigrate/pkg/domain/mock"
	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
	"github.com/m-mizutani/orgmigrate/pkg/infra"
	"github.com/m-mizutani/orgmigrate/pkg/usecase"
)

func sourceRemote(ctx context.Context, org types.OrgName, name types.RepoName) (model.RemoteBinding, error) {
	return model.Origin("https://github.com/"+string(org)+"/"+string(name)+".git", "src-token"), nil
}

func targetRemote(ctx context.Context, org types.OrgName, name types.RepoName) (model.RemoteBinding, error) {
	return model.Origin("https://github.com/"+string(org)+"/"+string(name)+".git", "dst-token"), nil
}

func TestCloneRepositories(t *testing.T) {
	ctx := context.Background()
	workspace := t.TempDir()
	store := newStoreWithSnapshot(t,
		&model.Repository{ID: 1, Name: "existing"},
		&model.Repository{ID: 2, Name: "fresh"},
		&model.Repository{ID: 3, Name: "unreachable"},
	)

	git := &mock.GitMock{
		OpenFunc: func(ctx context.Context, dir string) (interfaces.WorkingCopy, error) {
			if filepath.Base(dir) == "existing" {
				return &mock.WorkingCopyMock{}, nil
			}
			return nil, types.ErrNotFound
		},
		CloneFunc: func(ctx context.Context, remote model.RemoteBinding, dir string) (interfaces.WorkingCopy, error) {
			if filepath.Base(dir) == "unreachable" {
				return nil, errors.New("connection refused")
			}
			return &mock.WorkingCopyMock{}, nil
		},
	}
	source := &mock.GitHubMock{RemoteFunc: sourceRemote}

	uc := usecase.New(
		infra.New(infra.WithSource(source), infra.WithGit(git), infra.WithMetadataStore(store)),
		usecase.WithWorkspaceDir(workspace),
	)

	err := uc.CloneRepositories(ctx, &model.FetchInput{Org: "src-org"})
	gt.Error(t, err)

	// every missing repository is attempted despite the failure
	clones := git.CloneCalls()
	gt.A(t, clones).Length(2)
	gt.V(t, clones[0].Dir).Equal(filepath.Join(workspace, "src-org", "repos", "fresh"))
	gt.V(t, clones[0].Remote.URL).Equal("https://github.com/src-org/fresh.git")
	gt.V(t, clones[0].Remote.Token).Equal(types.GitHubToken("src-token"))
	gt.V(t, clones[1].Dir).Equal(filepath.Join(workspace, "src-org", "repos", "unreachable"))
}

func TestCloneRepositories_AllPresent(t *testing.T) {
	store := newStoreWithSnapshot(t, &model.Repository{ID: 1, Name: "existing"})
	git := &mock.GitMock{
		OpenFunc: func(ctx context.Context, dir string) (interfaces.WorkingCopy, error) {
			return &mock.WorkingCopyMock{}, nil
		},
	}
	uc := usecase.New(infra.New(
		infra.WithSource(&mock.GitHubMock{}),
		infra.WithGit(git),
		infra.WithMetadataStore(store),
	))

	gt.NoError(t, uc.CloneRepositories(context.Background(), &model.FetchInput{Org: "src-org"}))
	gt.A(t, git.CloneCalls()).Length(0)
}

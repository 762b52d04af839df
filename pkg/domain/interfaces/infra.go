package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub Git WorkingCopy Prompter

import (
	"context"

	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
)

// GitHub is the hosting provider API of one side of a migration. Methods
// return an error wrapping types.ErrNotFound when the resource does not exist.
type GitHub interface {
	ListOrgRepositories(ctx context.Context, input *ListOrgRepositoriesInput) (*model.RepositoryPage, error)
	GetRepository(ctx context.Context, org types.OrgName, name types.RepoName) (*model.Repository, error)
	CreateRepository(ctx context.Context, org types.OrgName, repo *model.Repository) (*model.Repository, error)
	DeleteRepository(ctx context.Context, org types.OrgName, name types.RepoName) error

	ListIssues(ctx context.Context, org types.OrgName, name types.RepoName, state string) ([]*model.Issue, error)
	CreateIssue(ctx context.Context, org types.OrgName, name types.RepoName, issue *model.Issue) (*model.Issue, error)

	RateLimit(ctx context.Context) (*model.RateLimit, error)

	// Remote returns the binding of a working copy remote to the repository
	// including credentials for pushing and fetching.
	Remote(ctx context.Context, org types.OrgName, name types.RepoName) (model.RemoteBinding, error)
}

type ListOrgRepositoriesInput struct {
	Org        types.OrgName
	Page       int
	PerPage    int
	Validators model.Validators
}

// Git opens and clones working copies
type Git interface {
	Clone(ctx context.Context, remote model.RemoteBinding, dir string) (WorkingCopy, error)
	Open(ctx context.Context, dir string) (WorkingCopy, error)
}

// WorkingCopy is a local checkout of one repository. It must not be used by
// more than one task at a time because the remote binding is shared state.
type WorkingCopy interface {
	// WithRemote binds the default remote to remote for the duration of fn.
	WithRemote(ctx context.Context, remote model.RemoteBinding, fn func(ctx context.Context) error) error

	Fetch(ctx context.Context) error
	RemoteBranches(ctx context.Context) ([]types.BranchName, error)
	LocalBranches(ctx context.Context) ([]*model.Branch, error)
	TrackBranch(ctx context.Context, name types.BranchName) error
	Checkout(ctx context.Context, name types.BranchName) error
	Pull(ctx context.Context, name types.BranchName) error
	Push(ctx context.Context, name types.BranchName) (types.PushResult, error)
	PushTags(ctx context.Context) (types.PushResult, error)
}

// Prompter asks the operator yes/no questions
type Prompter interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

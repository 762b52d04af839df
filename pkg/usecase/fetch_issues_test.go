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
	"github.com/m-mizutani/orgmigrate/pkg/repository"
	"github.com/m-mizutani/orgmigrate/pkg/repository/memory"
	"github.com/m-mizutani/orgmigrate/pkg/usecase"
)

func plentyOfQuota(ctx context.Context) (*model.RateLimit, error) {
	return &model.RateLimit{Limit: 5000, Remaining: 5000, Reset: time.Now().Add(time.Hour)}, nil
}

func TestFetchIssues(t *testing.T) {
	ctx := context.Background()
	store := newStoreWithSnapshot(t,
		&model.Repository{ID: 1, Name: "alpha", HasIssues: true},
		&model.Repository{ID: 2, Name: "broken", HasIssues: true},
		&model.Repository{ID: 3, Name: "no-issues", HasIssues: false},
		&model.Repository{ID: 4, Name: "zeta", HasIssues: true},
	)

	source := &mock.GitHubMock{
		RateLimitFunc: plentyOfQuota,
		ListIssuesFunc: func(ctx context.Context, org types.OrgName, name types.RepoName, state string) ([]*model.Issue, error) {
			gt.V(t, org).Equal(types.OrgName("src-org"))
			gt.V(t, state).Equal(model.IssueStateAll)
			switch name {
			case "alpha":
				return []*model.Issue{
					{Number: 1, Title: "open one", State: "open"},
					{Number: 2, Title: "closed one", State: "closed"},
				}, nil
			case "broken":
				return nil, errors.New("server error")
			case "zeta":
				return []*model.Issue{}, nil
			}
			t.Fatalf("unexpected repository %s", name)
			return nil, nil
		},
	}
	uc := usecase.New(infra.New(infra.WithSource(source), infra.WithMetadataStore(store)))

	// a failing repository does not stop the others
	gt.NoError(t, uc.FetchIssues(ctx, &model.FetchInput{Org: "src-org"}))
	gt.A(t, source.ListIssuesCalls()).Length(3)

	alpha, err := store.GetIssues(ctx, "src-org", "alpha")
	gt.NoError(t, err)
	gt.A(t, alpha).Length(2)

	zeta, err := store.GetIssues(ctx, "src-org", "zeta")
	gt.NoError(t, err)
	gt.A(t, zeta).Length(0)

	_, err = store.GetIssues(ctx, "src-org", "broken")
	gt.True(t, errors.Is(err, repository.ErrNotFound))
	_, err = store.GetIssues(ctx, "src-org", "no-issues")
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestFetchIssues_NoSnapshot(t *testing.T) {
	uc := usecase.New(infra.New(
		infra.WithSource(&mock.GitHubMock{}),
		infra.WithMetadataStore(memory.New()),
	))

	err := uc.FetchIssues(context.Background(), &model.FetchInput{Org: "src-org"})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

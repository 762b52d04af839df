package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/orgmigrate/pkg/domain/interfaces"
	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
	"github.com/m-mizutani/orgmigrate/pkg/repository"
)

// TestAll runs all test cases for MetadataStore
func TestAll(t *testing.T, store interfaces.MetadataStore) {
	t.Run("SnapshotCRUD", func(t *testing.T) {
		TestSnapshotCRUD(t, store)
	})
	t.Run("SnapshotIsolation", func(t *testing.T) {
		TestSnapshotIsolation(t, store)
	})
	t.Run("IssuesCRUD", func(t *testing.T) {
		TestIssuesCRUD(t, store)
	})
	t.Run("EmptyIssues", func(t *testing.T) {
		TestEmptyIssues(t, store)
	})
}

func newOrg() types.OrgName {
	return types.OrgName(fmt.Sprintf("org-%s", uuid.New().String()[:8]))
}

// TestSnapshotCRUD tests storing and replacing a repository snapshot
func TestSnapshotCRUD(t *testing.T, store interfaces.MetadataStore) {
	ctx := context.Background()
	org := newOrg()

	_, err := store.GetSnapshot(ctx, org)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	fetchedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	snapshot := &model.RepositorySnapshot{
		Organization: org,
		ETag:         `"etag-1"`,
		LastModified: "Wed, 01 May 2024 12:00:00 GMT",
		FetchedAt:    fetchedAt,
		Repositories: []*model.Repository{
			{ID: 1, Name: "alpha", Private: true, Description: "first", HasIssues: true},
			{ID: 2, Name: "beta", Homepage: "https://example.com"},
		},
	}
	gt.NoError(t, store.PutSnapshot(ctx, snapshot))

	got, err := store.GetSnapshot(ctx, org)
	gt.NoError(t, err)
	gt.V(t, got.Organization).Equal(org)
	gt.V(t, got.ETag).Equal(`"etag-1"`)
	gt.V(t, got.LastModified).Equal("Wed, 01 May 2024 12:00:00 GMT")
	gt.True(t, got.FetchedAt.Equal(fetchedAt))
	gt.A(t, got.Repositories).Length(2)
	gt.V(t, got.Repositories[0].Name).Equal(types.RepoName("alpha"))
	gt.True(t, got.Repositories[0].Private)
	gt.True(t, got.Repositories[0].HasIssues)
	gt.V(t, got.Repositories[0].Description).Equal("first")
	gt.V(t, got.Repositories[1].Homepage).Equal("https://example.com")

	// returned snapshot is detached from the stored one
	got.Repositories[0].Name = "modified"
	again, err := store.GetSnapshot(ctx, org)
	gt.NoError(t, err)
	gt.V(t, again.Repositories[0].Name).Equal(types.RepoName("alpha"))

	replaced := &model.RepositorySnapshot{
		Organization: org,
		ETag:         `"etag-2"`,
		FetchedAt:    fetchedAt.Add(time.Hour),
		Repositories: []*model.Repository{
			{ID: 2, Name: "beta"},
		},
	}
	gt.NoError(t, store.PutSnapshot(ctx, replaced))

	got, err = store.GetSnapshot(ctx, org)
	gt.NoError(t, err)
	gt.V(t, got.ETag).Equal(`"etag-2"`)
	gt.V(t, got.LastModified).Equal("")
	gt.A(t, got.Repositories).Length(1)
	gt.V(t, got.Repositories[0].ID).Equal(int64(2))
}

// TestSnapshotIsolation tests that snapshots of different organizations do not interfere
func TestSnapshotIsolation(t *testing.T, store interfaces.MetadataStore) {
	ctx := context.Background()
	org1, org2 := newOrg(), newOrg()

	gt.NoError(t, store.PutSnapshot(ctx, &model.RepositorySnapshot{
		Organization: org1,
		Repositories: []*model.Repository{{ID: 1, Name: "one"}},
	}))
	gt.NoError(t, store.PutSnapshot(ctx, &model.RepositorySnapshot{
		Organization: org2,
		Repositories: []*model.Repository{{ID: 2, Name: "two"}, {ID: 3, Name: "three"}},
	}))

	got1, err := store.GetSnapshot(ctx, org1)
	gt.NoError(t, err)
	gt.A(t, got1.Repositories).Length(1)

	got2, err := store.GetSnapshot(ctx, org2)
	gt.NoError(t, err)
	gt.A(t, got2.Repositories).Length(2)
}

// TestIssuesCRUD tests storing issues per repository
func TestIssuesCRUD(t *testing.T, store interfaces.MetadataStore) {
	ctx := context.Background()
	org := newOrg()

	_, err := store.GetIssues(ctx, org, "alpha")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	issues := []*model.Issue{
		{Number: 1, Title: "Bug: crash on startup", Body: "steps", State: model.IssueStateOpen, HTMLURL: "https://github.com/src/alpha/issues/1"},
		{Number: 2, Title: "Old", State: model.IssueStateClosed},
	}
	gt.NoError(t, store.PutIssues(ctx, org, "alpha", issues))

	got, err := store.GetIssues(ctx, org, "alpha")
	gt.NoError(t, err)
	gt.A(t, got).Length(2)
	gt.V(t, got[0].Number).Equal(1)
	gt.V(t, got[0].Title).Equal("Bug: crash on startup")
	gt.V(t, got[0].Body).Equal("steps")
	gt.V(t, got[0].HTMLURL).Equal("https://github.com/src/alpha/issues/1")
	gt.V(t, got[1].State).Equal(model.IssueStateClosed)

	// other repositories of the organization are unaffected
	_, err = store.GetIssues(ctx, org, "beta")
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	gt.NoError(t, store.PutIssues(ctx, org, "alpha", issues[:1]))
	got, err = store.GetIssues(ctx, org, "alpha")
	gt.NoError(t, err)
	gt.A(t, got).Length(1)
}

// TestEmptyIssues tests that a repository without issues is distinguishable from a missing one
func TestEmptyIssues(t *testing.T, store interfaces.MetadataStore) {
	ctx := context.Background()
	org := newOrg()

	gt.NoError(t, store.PutIssues(ctx, org, "quiet", nil))

	got, err := store.GetIssues(ctx, org, "quiet")
	gt.NoError(t, err)
	gt.A(t, got).Length(0)
}

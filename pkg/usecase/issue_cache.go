package usecase

import (
	"context"
	"slices"

	"github.com/m-mizutani/orgmigrate/pkg/domain/interfaces"
	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
	"github.com/m-mizutani/orgmigrate/pkg/utils/cache"
)

// issueCache holds the open issues of target repositories for deduplication
type issueCache struct {
	cache *cache.Cache[types.RepoName, []*model.Issue]
}

func newIssueCache(client interfaces.GitHub, org types.OrgName, options ...cache.Option) *issueCache {
	loader := func(ctx context.Context, name types.RepoName) ([]*model.Issue, error) {
		return client.ListIssues(ctx, org, name, model.IssueStateOpen)
	}
	return &issueCache{
		cache: cache.New(loader, options...),
	}
}

// AlreadyMigrated reports whether the target repository has an open issue
// with the fingerprint of candidate.
func (x *issueCache) AlreadyMigrated(ctx context.Context, name types.RepoName, candidate *model.Issue) (bool, error) {
	existing, err := x.cache.Get(ctx, name)
	if err != nil {
		return false, err
	}
	return model.ContainsIssue(existing, candidate), nil
}

// Add extends the cached issues of the repository with a created issue. An
// entry that is no longer cached is left to the next load.
func (x *issueCache) Add(name types.RepoName, issue *model.Issue) {
	existing, ok := x.cache.Peek(name)
	if !ok {
		return
	}
	x.cache.Set(name, append(slices.Clip(existing), issue))
}

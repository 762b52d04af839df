package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgmigrate/pkg/domain/interfaces"
	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
	"github.com/m-mizutani/orgmigrate/pkg/repository"
)

type issueKey struct {
	org  types.OrgName
	repo types.RepoName
}

type metadataStore struct {
	mu        sync.RWMutex
	snapshots map[types.OrgName]*model.RepositorySnapshot
	issues    map[issueKey][]*model.Issue
}

// New creates a new in-memory metadata store
func New() interfaces.MetadataStore {
	return &metadataStore{
		snapshots: make(map[types.OrgName]*model.RepositorySnapshot),
		issues:    make(map[issueKey][]*model.Issue),
	}
}

func (r *metadataStore) GetSnapshot(ctx context.Context, org types.OrgName) (*model.RepositorySnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot, ok := r.snapshots[org]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "snapshot not found", goerr.V("org", org))
	}
	return copySnapshot(snapshot), nil
}

func (r *metadataStore) PutSnapshot(ctx context.Context, snapshot *model.RepositorySnapshot) error {
	if snapshot.Organization == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "organization is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots[snapshot.Organization] = copySnapshot(snapshot)
	return nil
}

func (r *metadataStore) GetIssues(ctx context.Context, org types.OrgName, repo types.RepoName) ([]*model.Issue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	issues, ok := r.issues[issueKey{org: org, repo: repo}]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "issues not found",
			goerr.V("org", org),
			goerr.V("repo", repo),
		)
	}
	return copyIssues(issues), nil
}

func (r *metadataStore) PutIssues(ctx context.Context, org types.OrgName, repo types.RepoName, issues []*model.Issue) error {
	if org == "" || repo == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "org or repo is empty",
			goerr.V("org", org),
			goerr.V("repo", repo),
		)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.issues[issueKey{org: org, repo: repo}] = copyIssues(issues)
	return nil
}

func copySnapshot(src *model.RepositorySnapshot) *model.RepositorySnapshot {
	dst := *src
	dst.Repositories = make([]*model.Repository, 0, len(src.Repositories))
	for _, repo := range src.Repositories {
		r := *repo
		dst.Repositories = append(dst.Repositories, &r)
	}
	return &dst
}

func copyIssues(src []*model.Issue) []*model.Issue {
	dst := make([]*model.Issue, 0, len(src))
	for _, issue := range src {
		i := *issue
		dst = append(dst, &i)
	}
	return dst
}

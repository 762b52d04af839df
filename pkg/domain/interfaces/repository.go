package interfaces

import (
	"context"

	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
)

//go:generate moq -out ../mock/metadata_store_mock.go -pkg mock . MetadataStore

// MetadataStore persists snapshots fetched from the source organization
type MetadataStore interface {
	// GetSnapshot returns an error wrapping repository.ErrNotFound if the
	// organization was never fetched.
	GetSnapshot(ctx context.Context, org types.OrgName) (*model.RepositorySnapshot, error)
	PutSnapshot(ctx context.Context, snapshot *model.RepositorySnapshot) error

	GetIssues(ctx context.Context, org types.OrgName, repo types.RepoName) ([]*model.Issue, error)
	PutIssues(ctx context.Context, org types.OrgName, repo types.RepoName, issues []*model.Issue) error
}

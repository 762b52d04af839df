package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
)

type UseCase interface {
	FetchRepositories(ctx context.Context, input *model.FetchInput) (*model.RepositorySnapshot, error)
	FetchIssues(ctx context.Context, input *model.FetchInput) error
	CloneRepositories(ctx context.Context, input *model.FetchInput) error
	ProvisionRepositories(ctx context.Context, input *model.MigrationInput) (*model.ProvisionReport, error)
	SyncRepositories(ctx context.Context, input *model.MigrationInput) ([]*model.SyncReport, error)
	MirrorRepository(ctx context.Context, input *model.MigrationInput, name types.RepoName) (*model.SyncReport, error)
	ReplicateIssues(ctx context.Context, input *model.MigrationInput) ([]*model.IssueReport, error)
	DeleteRepositories(ctx context.Context, input *model.MigrationInput) (*model.DeleteReport, error)
}

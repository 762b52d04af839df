package firestore

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgmigrate/pkg/domain/interfaces"
	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
	"github.com/m-mizutani/orgmigrate/pkg/repository"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionOrg    = "org"
	collectionIssues = "issues"
)

type metadataStore struct {
	client *firestore.Client
}

// issueSet is the document stored per repository. Issues are embedded so one
// read returns the whole set.
type issueSet struct {
	Organization types.OrgName
	Repository   types.RepoName
	Issues       []*model.Issue
	UpdatedAt    time.Time
}

// New creates a new Firestore-based metadata store
func New(ctx context.Context, projectID, databaseID string) (interfaces.MetadataStore, error) {
	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}

	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	return &metadataStore{
		client: client,
	}, nil
}

// ToDocID validates a name used as a Firestore document ID
func ToDocID(name string) (string, error) {
	if name == "" || name == "." || name == ".." {
		return "", goerr.Wrap(repository.ErrInvalidInput, "document ID is empty or reserved",
			goerr.V("name", name),
		)
	}
	if strings.Contains(name, "/") {
		return "", goerr.Wrap(repository.ErrInvalidInput, "document ID contains invalid character '/'",
			goerr.V("name", name),
		)
	}
	if strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__") {
		return "", goerr.Wrap(repository.ErrInvalidInput, "document ID is reserved",
			goerr.V("name", name),
		)
	}
	return name, nil
}

func (r *metadataStore) orgDoc(org types.OrgName) (*firestore.DocumentRef, error) {
	id, err := ToDocID(string(org))
	if err != nil {
		return nil, err
	}
	return r.client.Collection(collectionOrg).Doc(id), nil
}

func (r *metadataStore) GetSnapshot(ctx context.Context, org types.OrgName) (*model.RepositorySnapshot, error) {
	docRef, err := r.orgDoc(org)
	if err != nil {
		return nil, err
	}

	snap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "snapshot not found",
				goerr.V("org", org),
			)
		}
		return nil, goerr.Wrap(err, "failed to get snapshot",
			goerr.V("org", org),
		)
	}

	var snapshot model.RepositorySnapshot
	if err := snap.DataTo(&snapshot); err != nil {
		return nil, goerr.Wrap(err, "failed to decode snapshot",
			goerr.V("org", org),
		)
	}

	return &snapshot, nil
}

func (r *metadataStore) PutSnapshot(ctx context.Context, snapshot *model.RepositorySnapshot) error {
	docRef, err := r.orgDoc(snapshot.Organization)
	if err != nil {
		return err
	}

	if _, err := docRef.Set(ctx, snapshot); err != nil {
		return goerr.Wrap(err, "failed to put snapshot",
			goerr.V("org", snapshot.Organization),
		)
	}

	return nil
}

func (r *metadataStore) issuesDoc(org types.OrgName, repo types.RepoName) (*firestore.DocumentRef, error) {
	orgRef, err := r.orgDoc(org)
	if err != nil {
		return nil, err
	}
	id, err := ToDocID(string(repo))
	if err != nil {
		return nil, err
	}
	return orgRef.Collection(collectionIssues).Doc(id), nil
}

func (r *metadataStore) GetIssues(ctx context.Context, org types.OrgName, repo types.RepoName) ([]*model.Issue, error) {
	docRef, err := r.issuesDoc(org, repo)
	if err != nil {
		return nil, err
	}

	snap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "issues not found",
				goerr.V("org", org),
				goerr.V("repo", repo),
			)
		}
		return nil, goerr.Wrap(err, "failed to get issues",
			goerr.V("org", org),
			goerr.V("repo", repo),
		)
	}

	var set issueSet
	if err := snap.DataTo(&set); err != nil {
		return nil, goerr.Wrap(err, "failed to decode issues",
			goerr.V("org", org),
			goerr.V("repo", repo),
		)
	}
	if set.Issues == nil {
		set.Issues = []*model.Issue{}
	}

	return set.Issues, nil
}

func (r *metadataStore) PutIssues(ctx context.Context, org types.OrgName, repo types.RepoName, issues []*model.Issue) error {
	docRef, err := r.issuesDoc(org, repo)
	if err != nil {
		return err
	}

	set := &issueSet{
		Organization: org,
		Repository:   repo,
		Issues:       issues,
		UpdatedAt:    time.Now(),
	}
	if _, err := docRef.Set(ctx, set); err != nil {
		return goerr.Wrap(err, "failed to put issues",
			goerr.V("org", org),
			goerr.V("repo", repo),
		)
	}

	return nil
}

package file

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgmigrate/pkg/domain/interfaces"
	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
	"github.com/m-mizutani/orgmigrate/pkg/repository"
	"github.com/m-mizutani/orgmigrate/pkg/utils/safe"
)

const (
	snapshotFile = "orgrepos.json"
	issuesSuffix = ".issues.json"
)

// metadataStore keeps metadata as JSON files under the data directory:
//
//	<dir>/<org>/orgrepos.json
//	<dir>/<org>/<repo>.issues.json
type metadataStore struct {
	dir string
}

// New creates a metadata store rooted at dir
func New(dir string) interfaces.MetadataStore {
	return &metadataStore{dir: dir}
}

// validName rejects names that would escape the data directory
func validName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid path component", goerr.V("name", name))
	}
	return nil
}

func (x *metadataStore) snapshotPath(org types.OrgName) (string, error) {
	if err := validName(string(org)); err != nil {
		return "", err
	}
	return filepath.Join(x.dir, string(org), snapshotFile), nil
}

func (x *metadataStore) issuesPath(org types.OrgName, repo types.RepoName) (string, error) {
	if err := validName(string(org)); err != nil {
		return "", err
	}
	if err := validName(string(repo)); err != nil {
		return "", err
	}
	return filepath.Join(x.dir, string(org), string(repo)+issuesSuffix), nil
}

func (x *metadataStore) GetSnapshot(ctx context.Context, org types.OrgName) (*model.RepositorySnapshot, error) {
	path, err := x.snapshotPath(org)
	if err != nil {
		return nil, err
	}

	var snapshot model.RepositorySnapshot
	if err := readJSON(path, &snapshot); err != nil {
		return nil, goerr.Wrap(err, "failed to read snapshot", goerr.V("org", org))
	}
	if snapshot.Organization == "" {
		snapshot.Organization = org
	}
	return &snapshot, nil
}

func (x *metadataStore) PutSnapshot(ctx context.Context, snapshot *model.RepositorySnapshot) error {
	path, err := x.snapshotPath(snapshot.Organization)
	if err != nil {
		return err
	}

	if err := writeJSON(path, snapshot); err != nil {
		return goerr.Wrap(err, "failed to write snapshot", goerr.V("org", snapshot.Organization))
	}
	return nil
}

func (x *metadataStore) GetIssues(ctx context.Context, org types.OrgName, repo types.RepoName) ([]*model.Issue, error) {
	path, err := x.issuesPath(org, repo)
	if err != nil {
		return nil, err
	}

	var issues []*model.Issue
	if err := readJSON(path, &issues); err != nil {
		return nil, goerr.Wrap(err, "failed to read issues",
			goerr.V("org", org),
			goerr.V("repo", repo),
		)
	}
	if issues == nil {
		issues = []*model.Issue{}
	}
	return issues, nil
}

func (x *metadataStore) PutIssues(ctx context.Context, org types.OrgName, repo types.RepoName, issues []*model.Issue) error {
	path, err := x.issuesPath(org, repo)
	if err != nil {
		return err
	}
	if issues == nil {
		issues = []*model.Issue{}
	}

	if err := writeJSON(path, issues); err != nil {
		return goerr.Wrap(err, "failed to write issues",
			goerr.V("org", org),
			goerr.V("repo", repo),
		)
	}
	return nil
}

func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return goerr.Wrap(repository.ErrNotFound, "file not found", goerr.V("path", path))
		}
		return goerr.Wrap(err, "failed to read file", goerr.V("path", path))
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return goerr.Wrap(err, "failed to decode JSON", goerr.V("path", path))
	}
	return nil
}

// writeJSON replaces path atomically so an interrupted run never leaves a
// truncated file behind.
func writeJSON(path string, v any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return goerr.Wrap(err, "failed to create directory", goerr.V("dir", dir))
	}

	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode JSON", goerr.V("path", path))
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return goerr.Wrap(err, "failed to create temp file", goerr.V("dir", dir))
	}
	defer safe.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		safe.Close(tmp)
		return goerr.Wrap(err, "failed to write temp file", goerr.V("path", tmp.Name()))
	}
	if err := tmp.Close(); err != nil {
		return goerr.Wrap(err, "failed to close temp file", goerr.V("path", tmp.Name()))
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return goerr.Wrap(err, "failed to rename temp file", goerr.V("path", path))
	}
	return nil
}

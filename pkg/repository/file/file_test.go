package file_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/repository"
	"github.com/m-mizutani/orgmigrate/pkg/repository/file"
	"github.com/m-mizutani/orgmigrate/pkg/repository/testhelper"
)

func TestFileMetadataStore(t *testing.T) {
	store := file.New(t.TempDir())
	testhelper.TestAll(t, store)
}

func TestLayout(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := file.New(dir)

	gt.NoError(t, store.PutSnapshot(ctx, &model.RepositorySnapshot{
		Organization: "src-org",
		ETag:         `"abc"`,
		Repositories: []*model.Repository{{ID: 1, Name: "alpha"}},
	}))
	gt.NoError(t, store.PutIssues(ctx, "src-org", "alpha", []*model.Issue{{Number: 1, Title: "t"}}))

	raw := gt.R1(os.ReadFile(filepath.Join(dir, "src-org", "orgrepos.json"))).NoError(t)
	gt.S(t, string(raw)).Contains(`"etag": "\"abc\""`)

	_, err := os.Stat(filepath.Join(dir, "src-org", "alpha.issues.json"))
	gt.NoError(t, err)

	entries := gt.R1(os.ReadDir(filepath.Join(dir, "src-org"))).NoError(t)
	for _, entry := range entries {
		gt.False(t, filepath.Ext(entry.Name()) == ".tmp")
	}
}

func TestReadExistingDataDir(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	gt.NoError(t, os.MkdirAll(filepath.Join(dir, "src-org"), 0755))

	// issues as returned by the GitHub API, stored next to orgrepos.json
	raw := `[{"number": 7, "title": "crash", "body": "steps", "state": "open", "html_url": "https://github.com/src-org/alpha/issues/7", "user": {"login": "octocat"}}]`
	gt.NoError(t, os.WriteFile(filepath.Join(dir, "src-org", "alpha.issues.json"), []byte(raw), 0644))

	issues := gt.R1(file.New(dir).GetIssues(ctx, "src-org", "alpha")).NoError(t)
	gt.A(t, issues).Length(1)
	gt.V(t, issues[0].Number).Equal(7)
	gt.V(t, issues[0].HTMLURL).Equal("https://github.com/src-org/alpha/issues/7")
}

func TestInvalidNames(t *testing.T) {
	ctx := context.Background()
	store := file.New(t.TempDir())

	err := store.PutSnapshot(ctx, &model.RepositorySnapshot{Organization: "../escape"})
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))

	err = store.PutIssues(ctx, "src-org", "..", nil)
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))

	_, err = store.GetSnapshot(ctx, "")
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))
}

func TestCorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	gt.NoError(t, os.MkdirAll(filepath.Join(dir, "src-org"), 0755))
	gt.NoError(t, os.WriteFile(filepath.Join(dir, "src-org", "orgrepos.json"), []byte("{broken"), 0600))

	_, err := file.New(dir).GetSnapshot(ctx, "src-org")
	gt.Error(t, err)
	gt.False(t, errors.Is(err, repository.ErrNotFound))
}

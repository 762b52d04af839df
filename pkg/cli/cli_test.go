package cli_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/orgmigrate/pkg/cli"
	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
	"github.com/m-mizutani/orgmigrate/pkg/repository/file"
)

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	gt.NoError(t, json.NewEncoder(w).Encode(v))
}

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"ORGMIGRATE_SOURCE_TOKEN", "GITHUB_ACCESS_TOKEN",
		"ORGMIGRATE_SOURCE_ORG", "ORGANIZATION",
		"ORGMIGRATE_TARGET_TOKEN", "TARGET_ACCESS_TOKEN",
		"ORGMIGRATE_TARGET_ORG", "TARGET_ORGANIZATION",
		"ORGMIGRATE_FIRESTORE_PROJECT_ID",
	} {
		prev, ok := os.LookupEnv(key)
		gt.NoError(t, os.Unsetenv(key))
		t.Cleanup(func() {
			if ok {
				_ = os.Setenv(key, prev)
			} else {
				_ = os.Unsetenv(key)
			}
		})
	}
}

func TestFetch(t *testing.T) {
	clearEnv(t)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /orgs/src-org/repos", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ETag", `"v1"`)
		writeJSON(t, w, []map[string]any{
			{"id": 1, "name": "alpha", "has_issues": true},
			{"id": 2, "name": "beta", "has_issues": false},
		})
	})
	mux.HandleFunc("GET /rate_limit", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"resources": map[string]any{
				"core": map[string]any{
					"limit":     5000,
					"remaining": 4999,
					"reset":     time.Now().Add(time.Hour).Unix(),
				},
			},
		})
	})
	mux.HandleFunc("GET /repos/src-org/alpha/issues", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []map[string]any{
			{"number": 1, "title": "first", "body": "hello", "state": "open"},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	dir := t.TempDir()
	gt.NoError(t, cli.New().Run([]string{
		"orgmigrate", "fetch",
		"--source-org", "src-org",
		"--source-token", "xxx",
		"--source-base-url", srv.URL + "/",
		"--data-dir", dir,
	}))

	ctx := context.Background()
	store := file.New(dir)
	snapshot := gt.R1(store.GetSnapshot(ctx, "src-org")).NoError(t)
	gt.V(t, snapshot.ETag).Equal(`"v1"`)
	gt.A(t, snapshot.Repositories).Length(2)

	issues := gt.R1(store.GetIssues(ctx, "src-org", "alpha")).NoError(t)
	gt.A(t, issues).Length(1)
	gt.V(t, issues[0].Title).Equal("first")

	_, err := os.Stat(filepath.Join(dir, "src-org", "beta.issues.json"))
	gt.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFetchRequiresOrg(t *testing.T) {
	clearEnv(t)

	err := cli.New().Run([]string{
		"orgmigrate", "fetch",
		"--source-token", "xxx",
		"--data-dir", t.TempDir(),
	})
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}

func TestDeleteWithoutConfirmation(t *testing.T) {
	clearEnv(t)

	var deleted atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /repos/dst-org/alpha", func(w http.ResponseWriter, r *http.Request) {
		deleted.Add(1)
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("DELETE /repos/dst-org/beta", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		writeJSON(t, w, map[string]string{"message": "Not Found"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	dir := t.TempDir()
	gt.NoError(t, file.New(dir).PutSnapshot(context.Background(), &model.RepositorySnapshot{
		Organization: "src-org",
		Repositories: []*model.Repository{{Name: "alpha"}, {Name: "beta"}},
	}))

	gt.NoError(t, cli.New().Run([]string{
		"orgmigrate", "delete",
		"--yes",
		"--source-org", "src-org",
		"--target-org", "dst-org",
		"--target-token", "xxx",
		"--target-base-url", srv.URL + "/",
		"--data-dir", dir,
	}))
	gt.V(t, deleted.Load()).Equal(1)
}

func TestLoadDotEnv(t *testing.T) {
	const key = "ORGMIGRATE_DOTENV_TEST"
	t.Chdir(t.TempDir())
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	// missing .env is not an error
	gt.NoError(t, cli.LoadDotEnv())

	gt.NoError(t, os.WriteFile(".env", []byte(key+"=loaded\n"), 0600))
	gt.NoError(t, cli.LoadDotEnv())
	gt.V(t, os.Getenv(key)).Equal("loaded")
}

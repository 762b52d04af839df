package server_test

import (
	"testing"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/orgmigrate/pkg/controller/server"
)

func TestEventRepository(t *testing.T) {
	owner := &github.User{Login: github.Ptr("src-org")}

	testCases := map[string]struct {
		event any
		owner string
		name  string
	}{
		"push": {
			event: &github.PushEvent{Repo: &github.PushEventRepository{Name: github.Ptr("alpha"), Owner: owner}},
			owner: "src-org",
			name:  "alpha",
		},
		"create tag": {
			event: &github.CreateEvent{RefType: github.Ptr("tag"), Repo: &github.Repository{Name: github.Ptr("beta"), Owner: owner}},
			owner: "src-org",
			name:  "beta",
		},
		"repository created": {
			event: &github.RepositoryEvent{Action: github.Ptr("created"), Repo: &github.Repository{Name: github.Ptr("gamma"), Owner: owner}},
			owner: "src-org",
			name:  "gamma",
		},
		"repository archived": {
			event: &github.RepositoryEvent{Action: github.Ptr("archived"), Repo: &github.Repository{Name: github.Ptr("gamma"), Owner: owner}},
		},
		"ping": {
			event: &github.PingEvent{},
		},
		"unsupported": {
			event: &github.IssuesEvent{},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			owner, repo := server.EventRepositoryForTest(tc.event)
			gt.V(t, owner).Equal(tc.owner)
			gt.V(t, repo).Equal(tc.name)
		})
	}
}

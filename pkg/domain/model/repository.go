package model

import (
	"sort"
	"time"

	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
)

// Repository represents a repository of an organization on the hosting provider
type Repository struct {
	ID            int64          `json:"id"`
	Name          types.RepoName `json:"name"`
	FullName      string         `json:"full_name,omitempty"`
	Private       bool           `json:"private"`
	Description   string         `json:"description,omitempty"`
	Homepage      string         `json:"homepage,omitempty"`
	HasIssues     bool           `json:"has_issues"`
	HasProjects   bool           `json:"has_projects"`
	HasWiki       bool           `json:"has_wiki"`
	HasDownloads  bool           `json:"has_downloads"`
	DefaultBranch string         `json:"default_branch,omitempty"`
	Archived      bool           `json:"archived"`
	CloneURL      string         `json:"clone_url,omitempty"`
	HTMLURL       string         `json:"html_url,omitempty"`
}

// RepositorySnapshot is the cached repository list of an organization with
// the validators needed for a conditional refresh.
type RepositorySnapshot struct {
	Organization types.OrgName `json:"organization"`
	LastModified string        `json:"lastModified,omitempty"`
	ETag         string        `json:"etag,omitempty"`
	FetchedAt    time.Time     `json:"fetchedAt"`
	Repositories []*Repository `json:"repositories"`
}

// Names returns repository names in snapshot order
func (x *RepositorySnapshot) Names() []types.RepoName {
	if x == nil {
		return nil
	}
	names := make([]types.RepoName, 0, len(x.Repositories))
	for _, repo := range x.Repositories {
		names = append(names, repo.Name)
	}
	return names
}

// Validators of a conditional request
type Validators struct {
	ETag         string
	LastModified string
}

func (x Validators) Empty() bool {
	return x.ETag == "" && x.LastModified == ""
}

// RepositoryPage is one page of an organization repository listing
type RepositoryPage struct {
	Repositories []*Repository
	NotModified  bool
	Validators   Validators
}

// MergeRepositories reconciles a cached repository list with a freshly fetched
// one. Fetched entries are inserted or override cached entries with the same
// ID, later fetched entries win over earlier ones, and cached entries missing
// from the fetch are dropped. The result is sorted by name.
func MergeRepositories(cached, fetched []*Repository) []*Repository {
	merged := make(map[int64]*Repository, len(cached))
	for _, repo := range cached {
		merged[repo.ID] = repo
	}

	seen := make(map[int64]struct{}, len(fetched))
	for _, repo := range fetched {
		merged[repo.ID] = repo
		seen[repo.ID] = struct{}{}
	}

	for id := range merged {
		if _, ok := seen[id]; !ok {
			delete(merged, id)
		}
	}

	result := make([]*Repository, 0, len(merged))
	for _, repo := range merged {
		result = append(result, repo)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name == result[j].Name {
			return result[i].ID < result[j].ID
		}
		return result[i].Name < result[j].Name
	})

	return result
}

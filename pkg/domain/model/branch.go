package model

import "github.com/m-mizutani/orgmigrate/pkg/domain/types"

// Branch represents a local branch of a working copy
type Branch struct {
	Name types.BranchName
	// Remote and Merge describe the tracking relationship. Both are empty for
	// an untracked branch.
	Remote string
	Merge  string
}

func (x Branch) Tracked() bool {
	return x.Remote != "" && x.Merge != ""
}

// RemoteBinding is the address the working copy's remote is bound to during
// one phase of a synchronization.
type RemoteBinding struct {
	Name string
	URL  string
	// Token is used for HTTP basic auth against URL. Empty for local paths.
	Token types.GitHubToken
}

const DefaultRemoteName = "origin"

// Origin returns a binding of the default remote to url
func Origin(url string, token types.GitHubToken) RemoteBinding {
	return RemoteBinding{
		Name:  DefaultRemoteName,
		URL:   url,
		Token: token,
	}
}

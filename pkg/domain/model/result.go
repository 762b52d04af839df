package model

import "github.com/m-mizutani/orgmigrate/pkg/domain/types"

// BranchPush is the push outcome of one branch
type BranchPush struct {
	Branch types.BranchName
	Result types.PushResult
}

// PullFailure records a branch whose fast-forward pull from the source failed
type PullFailure struct {
	Branch types.BranchName
	Error  string
}

// SyncReport is the outcome of a branch and tag replication of one repository
type SyncReport struct {
	Repository   types.RepoName
	Branches     []BranchPush
	Tags         types.PushResult
	PullFailures []PullFailure
}

// UpToDate is true only if every branch push and the tag push were no-ops
func (x *SyncReport) UpToDate() bool {
	for _, b := range x.Branches {
		if b.Result != types.PushUpToDate {
			return false
		}
	}
	return x.Tags == types.PushUpToDate
}

// ProvisionReport counts target repository creations
type ProvisionReport struct {
	Created []types.RepoName
	Skipped []types.RepoName
}

// IssueReport counts replicated issues of one repository
type IssueReport struct {
	Repository types.RepoName
	Created    int
	Duplicated int
	Skipped    int
}

// DeleteReport counts target repository deletions
type DeleteReport struct {
	Deleted []types.RepoName
	Missing []types.RepoName
	Failed  []types.RepoName
}

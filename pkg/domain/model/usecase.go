package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
)

// FetchInput selects the organization to read from the source provider
type FetchInput struct {
	Org types.OrgName
}

func (x *FetchInput) Validate() error {
	if x.Org == "" {
		return goerr.Wrap(types.ErrInvalidOption, "organization is empty")
	}
	return nil
}

// MigrationInput describes a source to target migration
type MigrationInput struct {
	SourceOrg types.OrgName
	TargetOrg types.OrgName

	// SanitizeNames converts repository names to slugs on the target side.
	// Enabled when the target is another provider instance.
	SanitizeNames bool
}

func (x *MigrationInput) Validate() error {
	if x.SourceOrg == "" {
		return goerr.Wrap(types.ErrInvalidOption, "source organization is empty")
	}
	if x.TargetOrg == "" {
		return goerr.Wrap(types.ErrInvalidOption, "target organization is empty")
	}
	return nil
}

// TargetName returns the name a source repository has on the target side
func (x *MigrationInput) TargetName(name types.RepoName) types.RepoName {
	if x.SanitizeNames {
		return name.Slug()
	}
	return name
}

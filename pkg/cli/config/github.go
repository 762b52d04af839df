package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
	"github.com/m-mizutani/orgmigrate/pkg/infra/githubapi"
	"github.com/urfave/cli/v3"
)

// Source is the organization repositories are read from
type Source struct {
	token   types.GitHubToken
	org     types.OrgName
	baseURL string
}

func (x *Source) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "source-token",
			Usage:       "Access token of the source organization. GITHUB_ACCESS_TOKEN is read only if ORGMIGRATE_SOURCE_TOKEN is unset",
			Category:    "Source",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("ORGMIGRATE_SOURCE_TOKEN", "GITHUB_ACCESS_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "source-org",
			Usage:       "Source organization name. ORGANIZATION is read only if ORGMIGRATE_SOURCE_ORG is unset",
			Category:    "Source",
			Destination: (*string)(&x.org),
			Sources:     cli.EnvVars("ORGMIGRATE_SOURCE_ORG", "ORGANIZATION"),
		},
		&cli.StringFlag{
			Name:        "source-base-url",
			Usage:       "API base URL of the source (GitHub Enterprise)",
			Category:    "Source",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("ORGMIGRATE_SOURCE_BASE_URL"),
		},
	}
}

func (x *Source) Org() types.OrgName {
	return x.org
}

func (x *Source) Validate() error {
	if x.org == "" {
		return goerr.Wrap(types.ErrInvalidOption, "--source-org is required")
	}
	if x.token == "" {
		return goerr.Wrap(types.ErrInvalidOption, "--source-token is required")
	}
	return nil
}

func (x *Source) New() (*githubapi.Client, error) {
	if err := x.Validate(); err != nil {
		return nil, err
	}

	var options []githubapi.Option
	if x.baseURL != "" {
		options = append(options, githubapi.WithBaseURL(x.baseURL))
	}
	return githubapi.New(x.token, options...)
}

func (x *Source) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("org", x.org),
		slog.String("baseURL", x.baseURL),
		slog.Int("token.len", len(x.token)),
	)
}

// Target is the organization repositories are migrated to. It authenticates
// with a token or as a GitHub App installation.
type Target struct {
	token      types.GitHubToken
	org        types.OrgName
	baseURL    string
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey
}

func (x *Target) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "target-token",
			Usage:       "Access token of the target organization. TARGET_ACCESS_TOKEN is read only if ORGMIGRATE_TARGET_TOKEN is unset",
			Category:    "Target",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("ORGMIGRATE_TARGET_TOKEN", "TARGET_ACCESS_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "target-org",
			Usage:       "Target organization name. TARGET_ORGANIZATION is read only if ORGMIGRATE_TARGET_ORG is unset",
			Category:    "Target",
			Destination: (*string)(&x.org),
			Sources:     cli.EnvVars("ORGMIGRATE_TARGET_ORG", "TARGET_ORGANIZATION"),
		},
		&cli.StringFlag{
			Name:        "target-base-url",
			Usage:       "API base URL of the target. Repository names are converted to slugs if it differs from the source",
			Category:    "Target",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("ORGMIGRATE_TARGET_BASE_URL"),
		},
		&cli.Int64Flag{
			Name:        "target-app-id",
			Usage:       "GitHub App ID used instead of --target-token",
			Category:    "Target",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("ORGMIGRATE_TARGET_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "target-app-installation-id",
			Usage:       "GitHub App installation ID in the target organization",
			Category:    "Target",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("ORGMIGRATE_TARGET_APP_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "target-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Category:    "Target",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("ORGMIGRATE_TARGET_APP_PRIVATE_KEY"),
		},
	}
}

func (x *Target) Org() types.OrgName {
	return x.org
}

func (x *Target) useApp() bool {
	return x.appID != 0
}

func (x *Target) Validate() error {
	if x.org == "" {
		return goerr.Wrap(types.ErrInvalidOption, "--target-org is required")
	}
	if x.useApp() {
		if x.installID == 0 || x.privateKey == "" {
			return goerr.Wrap(types.ErrInvalidOption, "--target-app-installation-id and --target-app-private-key are required with --target-app-id")
		}
		return nil
	}
	if x.token == "" {
		return goerr.Wrap(types.ErrInvalidOption, "--target-token or --target-app-id is required")
	}
	return nil
}

func (x *Target) New() (*githubapi.Client, error) {
	if err := x.Validate(); err != nil {
		return nil, err
	}

	var options []githubapi.Option
	if x.baseURL != "" {
		options = append(options, githubapi.WithBaseURL(x.baseURL))
	}
	if x.useApp() {
		return githubapi.NewWithApp(x.appID, x.installID, x.privateKey, options...)
	}
	return githubapi.New(x.token, options...)
}

func (x *Target) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("org", x.org),
		slog.String("baseURL", x.baseURL),
		slog.Int("token.len", len(x.token)),
		slog.Int64("appID", int64(x.appID)),
		slog.Int64("installationID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
	)
}

// MigrationInput pairs source and target. Names are sanitized when the
// target lives on another host.
func MigrationInput(src *Source, dst *Target) *model.MigrationInput {
	return &model.MigrationInput{
		SourceOrg:     src.org,
		TargetOrg:     dst.org,
		SanitizeNames: dst.baseURL != "" && dst.baseURL != src.baseURL,
	}
}

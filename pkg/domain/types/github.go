package types

import (
	"log/slog"
	"strings"
)

type (
	GitHubToken         string
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	WebhookSecret       string
	OrgName             string
	RepoName            string
	BranchName          string
)

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func (x WebhookSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x WebhookSecret) String() string {
	return "***********"
}

func (x OrgName) String() string {
	return string(x)
}

func (x RepoName) String() string {
	return string(x)
}

// Slug converts a repository name into an identifier accepted by another
// hosting instance. Every rune other than ASCII letters, digits, '-' and '_'
// is replaced with '-'.
func (x RepoName) Slug() RepoName {
	var b strings.Builder
	for _, r := range string(x) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return RepoName(b.String())
}

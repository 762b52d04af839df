package githubapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgmigrate/pkg/domain/interfaces"
	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
	"github.com/m-mizutani/orgmigrate/pkg/utils/logging"
	"golang.org/x/oauth2"
)

const defaultPerPage = 100

type tokenFunc func(ctx context.Context) (types.GitHubToken, error)

// Client is a GitHub REST API client for one side of a migration
type Client struct {
	client  *github.Client
	webURL  *url.URL
	tokenFn tokenFunc
}

var _ interfaces.GitHub = (*Client)(nil)

type config struct {
	baseURL   string
	transport http.RoundTripper
}

type Option func(*config)

// WithBaseURL sets the REST API endpoint, e.g. https://ghe.example.com/api/v3/
// for GitHub Enterprise Server.
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// WithTransport sets the base transport wrapped by the authentication layer
func WithTransport(tr http.RoundTripper) Option {
	return func(c *config) {
		c.transport = tr
	}
}

// New creates a client authenticated with a personal access token
func New(token types.GitHubToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "token is empty")
	}

	cfg := newConfig(options)
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Transport: cfg.transport})
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
	httpClient := oauth2.NewClient(ctx, ts)

	return newClient(httpClient, cfg, func(context.Context) (types.GitHubToken, error) {
		return token, nil
	})
}

// NewWithApp creates a client authenticated as a GitHub App installation
func NewWithApp(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "installation ID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	cfg := newConfig(options)
	itr, err := ghinstallation.New(cfg.transport, int64(appID), int64(installID), []byte(pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create github app transport")
	}
	if cfg.baseURL != "" {
		itr.BaseURL = strings.TrimSuffix(cfg.baseURL, "/")
	}

	return newClient(&http.Client{Transport: itr}, cfg, func(ctx context.Context) (types.GitHubToken, error) {
		token, err := itr.Token(ctx)
		if err != nil {
			return "", goerr.Wrap(err, "failed to get installation token")
		}
		return types.GitHubToken(token), nil
	})
}

func newConfig(options []Option) *config {
	cfg := &config{
		transport: http.DefaultTransport,
	}
	for _, opt := range options {
		opt(cfg)
	}
	return cfg
}

func newClient(httpClient *http.Client, cfg *config, tokenFn tokenFunc) (*Client, error) {
	client := github.NewClient(httpClient)

	if cfg.baseURL != "" {
		baseURL, err := url.Parse(cfg.baseURL)
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid base URL", goerr.V("url", cfg.baseURL))
		}
		if !strings.HasSuffix(baseURL.Path, "/") {
			baseURL.Path += "/"
		}
		client.BaseURL = baseURL
		client.UploadURL = baseURL
	}

	return &Client{
		client:  client,
		webURL:  webURL(client.BaseURL),
		tokenFn: tokenFn,
	}, nil
}

// webURL derives the git endpoint from the API endpoint: api.github.com
// becomes github.com and a trailing api/v3/ path of GitHub Enterprise is
// removed.
func webURL(apiURL *url.URL) *url.URL {
	u := *apiURL
	u.Host = strings.TrimPrefix(u.Host, "api.")
	u.Path = strings.TrimSuffix(u.Path, "api/v3/")
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return &u
}

func isNotFound(resp *github.Response) bool {
	return resp != nil && resp.StatusCode == http.StatusNotFound
}

func (x *Client) ListOrgRepositories(ctx context.Context, input *interfaces.ListOrgRepositoriesInput) (*model.RepositoryPage, error) {
	perPage := input.PerPage
	if perPage == 0 {
		perPage = defaultPerPage
	}
	page := max(input.Page, 1)

	query := url.Values{}
	query.Set("type", "all")
	query.Set("page", fmt.Sprint(page))
	query.Set("per_page", fmt.Sprint(perPage))
	u := fmt.Sprintf("orgs/%s/repos?%s", url.PathEscape(string(input.Org)), query.Encode())

	req, err := x.client.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build repository list request", goerr.V("org", input.Org))
	}
	if input.Validators.ETag != "" {
		req.Header.Set("If-None-Match", input.Validators.ETag)
	}
	if input.Validators.LastModified != "" {
		req.Header.Set("If-Modified-Since", input.Validators.LastModified)
	}

	var repos []*github.Repository
	resp, err := x.client.Do(ctx, req, &repos)
	if resp != nil && resp.StatusCode == http.StatusNotModified {
		logging.From(ctx).Debug("repository list not modified",
			slog.Any("org", input.Org),
			slog.Int("page", page),
		)
		return &model.RepositoryPage{
			NotModified: true,
			Validators:  input.Validators,
		}, nil
	}
	if err != nil {
		if isNotFound(resp) {
			return nil, goerr.Wrap(types.ErrNotFound, "organization not found", goerr.V("org", input.Org))
		}
		return nil, goerr.Wrap(err, "failed to list organization repositories",
			goerr.V("org", input.Org),
			goerr.V("page", page),
		)
	}

	result := &model.RepositoryPage{
		Repositories: make([]*model.Repository, 0, len(repos)),
		Validators: model.Validators{
			ETag:         resp.Header.Get("ETag"),
			LastModified: resp.Header.Get("Last-Modified"),
		},
	}
	for _, repo := range repos {
		result.Repositories = append(result.Repositories, toRepository(repo))
	}

	return result, nil
}

func toRepository(repo *github.Repository) *model.Repository {
	return &model.Repository{
		ID:            repo.GetID(),
		Name:          types.RepoName(repo.GetName()),
		FullName:      repo.GetFullName(),
		Private:       repo.GetPrivate(),
		Description:   repo.GetDescription(),
		Homepage:      repo.GetHomepage(),
		HasIssues:     repo.GetHasIssues(),
		HasProjects:   repo.GetHasProjects(),
		HasWiki:       repo.GetHasWiki(),
		HasDownloads:  repo.GetHasDownloads(),
		DefaultBranch: repo.GetDefaultBranch(),
		Archived:      repo.GetArchived(),
		CloneURL:      repo.GetCloneURL(),
		HTMLURL:       repo.GetHTMLURL(),
	}
}

func (x *Client) GetRepository(ctx context.Context, org types.OrgName, name types.RepoName) (*model.Repository, error) {
	repo, resp, err := x.client.Repositories.Get(ctx, string(org), string(name))
	if err != nil {
		if isNotFound(resp) {
			return nil, goerr.Wrap(types.ErrNotFound, "repository not found",
				goerr.V("org", org),
				goerr.V("repo", name),
			)
		}
		return nil, goerr.Wrap(err, "failed to get repository",
			goerr.V("org", org),
			goerr.V("repo", name),
		)
	}

	return toRepository(repo), nil
}

func (x *Client) CreateRepository(ctx context.Context, org types.OrgName, repo *model.Repository) (*model.Repository, error) {
	req := &github.Repository{
		Name:         github.Ptr(string(repo.Name)),
		Private:      github.Ptr(repo.Private),
		Description:  github.Ptr(repo.Description),
		Homepage:     github.Ptr(repo.Homepage),
		HasIssues:    github.Ptr(repo.HasIssues),
		HasProjects:  github.Ptr(repo.HasProjects),
		HasWiki:      github.Ptr(repo.HasWiki),
		HasDownloads: github.Ptr(repo.HasDownloads),
	}

	created, _, err := x.client.Repositories.Create(ctx, string(org), req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create repository",
			goerr.V("org", org),
			goerr.V("repo", repo.Name),
		)
	}

	logging.From(ctx).Debug("repository created",
		slog.Any("org", org),
		slog.Any("repo", repo.Name),
		slog.Int64("id", created.GetID()),
	)

	return toRepository(created), nil
}

func (x *Client) DeleteRepository(ctx context.Context, org types.OrgName, name types.RepoName) error {
	resp, err := x.client.Repositories.Delete(ctx, string(org), string(name))
	if err != nil {
		if isNotFound(resp) {
			return goerr.Wrap(types.ErrNotFound, "repository not found",
				goerr.V("org", org),
				goerr.V("repo", name),
			)
		}
		return goerr.Wrap(err, "failed to delete repository",
			goerr.V("org", org),
			goerr.V("repo", name),
		)
	}
	return nil
}

// ListIssues returns all issues of the repository in the given state. Pull
// requests are excluded.
func (x *Client) ListIssues(ctx context.Context, org types.OrgName, name types.RepoName, state string) ([]*model.Issue, error) {
	opts := &github.IssueListByRepoOptions{
		State:       state,
		ListOptions: github.ListOptions{PerPage: defaultPerPage},
	}

	var issues []*model.Issue
	for {
		result, resp, err := x.client.Issues.ListByRepo(ctx, string(org), string(name), opts)
		if err != nil {
			if isNotFound(resp) {
				return nil, goerr.Wrap(types.ErrNotFound, "repository not found",
					goerr.V("org", org),
					goerr.V("repo", name),
				)
			}
			return nil, goerr.Wrap(err, "failed to list issues",
				goerr.V("org", org),
				goerr.V("repo", name),
				goerr.V("page", opts.ListOptions.Page),
			)
		}

		for _, issue := range result {
			if issue.IsPullRequest() {
				continue
			}
			issues = append(issues, toIssue(issue))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.ListOptions.Page = resp.NextPage
	}

	return issues, nil
}

func toIssue(issue *github.Issue) *model.Issue {
	return &model.Issue{
		Number:  issue.GetNumber(),
		Title:   issue.GetTitle(),
		Body:    issue.GetBody(),
		State:   issue.GetState(),
		HTMLURL: issue.GetHTMLURL(),
	}
}

func (x *Client) CreateIssue(ctx context.Context, org types.OrgName, name types.RepoName, issue *model.Issue) (*model.Issue, error) {
	req := &github.IssueRequest{
		Title: github.Ptr(issue.Title),
		Body:  github.Ptr(issue.Body),
	}

	created, _, err := x.client.Issues.Create(ctx, string(org), string(name), req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create issue",
			goerr.V("org", org),
			goerr.V("repo", name),
			goerr.V("title", issue.Title),
		)
	}

	return toIssue(created), nil
}

func (x *Client) RateLimit(ctx context.Context) (*model.RateLimit, error) {
	limits, _, err := x.client.RateLimit.Get(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get rate limit")
	}

	core := limits.GetCore()
	if core == nil {
		return nil, goerr.Wrap(types.ErrInvalidGitHubData, "no core rate limit in response")
	}

	return &model.RateLimit{
		Limit:     core.Limit,
		Remaining: core.Remaining,
		Reset:     core.Reset.Time,
	}, nil
}

// Remote returns the HTTPS git endpoint of the repository with a token for
// basic auth.
func (x *Client) Remote(ctx context.Context, org types.OrgName, name types.RepoName) (model.RemoteBinding, error) {
	token, err := x.tokenFn(ctx)
	if err != nil {
		return model.RemoteBinding{}, err
	}

	u := x.webURL.JoinPath(string(org), string(name)+".git")
	return model.Origin(u.String(), token), nil
}

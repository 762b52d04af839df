package usecase

import (
	"path/filepath"
	"time"

	"github.com/m-mizutani/orgmigrate/pkg/domain/interfaces"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
	"github.com/m-mizutani/orgmigrate/pkg/infra"
	"github.com/m-mizutani/orgmigrate/pkg/utils/cache"
)

const (
	DefaultWorkspaceDir = "./data"
	DefaultAttribution  = "orgmigrate"

	repositoriesPerPage = 100
)

// Throttle holds pauses inserted after mutating calls to stay below the
// provider's secondary rate limits.
type Throttle struct {
	AfterCreate time.Duration
	AfterPush   time.Duration
	AfterIssue  time.Duration
}

var DefaultThrottle = Throttle{
	AfterCreate: 30 * time.Second,
	AfterPush:   30 * time.Second,
	AfterIssue:  10 * time.Second,
}

// RateLimitPolicy controls waiting for the core quota to reset
type RateLimitPolicy struct {
	LowWater int
	Margin   time.Duration
}

var DefaultRateLimitPolicy = RateLimitPolicy{
	LowWater: 10,
	Margin:   5 * time.Second,
}

type UseCase struct {
	clients *infra.Clients

	workspaceDir string
	attribution  string
	footer       bool
	throttle     Throttle
	rateLimit    RateLimitPolicy
	retry        RetryPolicy
	cacheOptions []cache.Option
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithWorkspaceDir sets the directory holding working copies
func WithWorkspaceDir(dir string) Option {
	return func(x *UseCase) {
		x.workspaceDir = dir
	}
}

func WithAttribution(attribution string) Option {
	return func(x *UseCase) {
		x.attribution = attribution
	}
}

// WithFooter toggles the provenance footer appended to replicated issues
func WithFooter(enabled bool) Option {
	return func(x *UseCase) {
		x.footer = enabled
	}
}

func WithThrottle(throttle Throttle) Option {
	return func(x *UseCase) {
		x.throttle = throttle
	}
}

func WithRateLimitPolicy(policy RateLimitPolicy) Option {
	return func(x *UseCase) {
		x.rateLimit = policy
	}
}

func WithRetryPolicy(policy RetryPolicy) Option {
	return func(x *UseCase) {
		x.retry = policy
	}
}

// WithIssueCache configures the cache of target issues used for deduplication
func WithIssueCache(size int, ttl time.Duration) Option {
	return func(x *UseCase) {
		x.cacheOptions = []cache.Option{cache.WithSize(size), cache.WithTTL(ttl)}
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:      clients,
		workspaceDir: DefaultWorkspaceDir,
		attribution:  DefaultAttribution,
		footer:       true,
		throttle:     DefaultThrottle,
		rateLimit:    DefaultRateLimitPolicy,
		retry:        AbortImmediately(),
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}

func (x *UseCase) workingCopyDir(org types.OrgName, name types.RepoName) string {
	return filepath.Join(x.workspaceDir, string(org), "repos", string(name))
}

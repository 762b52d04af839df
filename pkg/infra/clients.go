package infra

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgmigrate/pkg/domain/interfaces"
	"github.com/m-mizutani/orgmigrate/pkg/infra/gitrepo"
	"github.com/m-mizutani/orgmigrate/pkg/infra/prompt"
)

// Sleeper blocks for d or until ctx is done
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep is the Sleeper backed by a timer
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "sleep interrupted", goerr.V("duration", d))
	case <-timer.C:
		return nil
	}
}

type Clients struct {
	source   interfaces.GitHub
	target   interfaces.GitHub
	git      interfaces.Git
	store    interfaces.MetadataStore
	prompter interfaces.Prompter
	sleeper  Sleeper
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		git:      gitrepo.New(),
		prompter: prompt.NewSurvey(),
		sleeper:  Sleep,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) Source() interfaces.GitHub {
	return x.source
}
func (x *Clients) Target() interfaces.GitHub {
	return x.target
}
func (x *Clients) Git() interfaces.Git {
	return x.git
}
func (x *Clients) MetadataStore() interfaces.MetadataStore {
	return x.store
}
func (x *Clients) Prompter() interfaces.Prompter {
	return x.prompter
}
func (x *Clients) Sleep(ctx context.Context, d time.Duration) error {
	return x.sleeper(ctx, d)
}

func WithSource(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.source = client
	}
}

func WithTarget(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.target = client
	}
}

func WithGit(client interfaces.Git) Option {
	return func(x *Clients) {
		x.git = client
	}
}

func WithMetadataStore(store interfaces.MetadataStore) Option {
	return func(x *Clients) {
		x.store = store
	}
}

func WithPrompter(prompter interfaces.Prompter) Option {
	return func(x *Clients) {
		x.prompter = prompter
	}
}

func WithSleeper(sleeper Sleeper) Option {
	return func(x *Clients) {
		x.sleeper = sleeper
	}
}

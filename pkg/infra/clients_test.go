package infra_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/orgmigrate/pkg/domain/mock"
	"github.com/m-mizutani/orgmigrate/pkg/infra"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		gt.V(t, clients.Git()).NotEqual(nil)
		gt.V(t, clients.Prompter()).NotEqual(nil)
		// GitHub clients and store must be configured explicitly
		gt.V(t, clients.Source()).Equal(nil)
		gt.V(t, clients.Target()).Equal(nil)
		gt.V(t, clients.MetadataStore()).Equal(nil)
	})

	t.Run("WithSource and WithTarget set distinct clients", func(t *testing.T) {
		source := &mock.GitHubMock{}
		target := &mock.GitHubMock{}
		clients := infra.New(infra.WithSource(source), infra.WithTarget(target))
		gt.V(t, clients.Source()).Equal(source)
		gt.V(t, clients.Target()).Equal(target)
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		git := &mock.GitMock{}
		store := &mock.MetadataStoreMock{}
		prompter := &mock.PrompterMock{}

		clients := infra.New(
			infra.WithGit(git),
			infra.WithMetadataStore(store),
			infra.WithPrompter(prompter),
		)

		gt.V(t, clients.Git()).Equal(git)
		gt.V(t, clients.MetadataStore()).Equal(store)
		gt.V(t, clients.Prompter()).Equal(prompter)
	})

	t.Run("WithSleeper replaces sleep", func(t *testing.T) {
		var slept []time.Duration
		clients := infra.New(infra.WithSleeper(func(ctx context.Context, d time.Duration) error {
			slept = append(slept, d)
			return nil
		}))

		gt.NoError(t, clients.Sleep(context.Background(), time.Hour))
		gt.V(t, slept).Equal([]time.Duration{time.Hour})
	})
}

func TestSleep(t *testing.T) {
	t.Run("returns after duration", func(t *testing.T) {
		gt.NoError(t, infra.Sleep(context.Background(), time.Millisecond))
	})

	t.Run("non-positive duration returns immediately", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		gt.NoError(t, infra.Sleep(ctx, 0))
	})

	t.Run("cancelled context interrupts", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := infra.Sleep(ctx, time.Hour)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, context.Canceled))
	})
}

package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/orgmigrate/pkg/domain/interfaces"
	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/infra"
	"github.com/m-mizutani/orgmigrate/pkg/repository/memory"
	"github.com/m-mizutani/orgmigrate/pkg/usecase"
)

func TestNew(t *testing.T) {
	t.Run("create new usecase with all clients", func(t *testing.T) {
		uc := usecase.New(infra.New())
		var _ interfaces.UseCase = uc
	})
}

// sleepRecorder replaces real sleeping in tests
type sleepRecorder struct {
	slept []time.Duration
}

func (x *sleepRecorder) Sleep(ctx context.Context, d time.Duration) error {
	x.slept = append(x.slept, d)
	return ctx.Err()
}

func (x *sleepRecorder) total() time.Duration {
	var sum time.Duration
	for _, d := range x.slept {
		sum += d
	}
	return sum
}

var testThrottle = usecase.Throttle{
	AfterCreate: 30 * time.Second,
	AfterPush:   20 * time.Second,
	AfterIssue:  10 * time.Second,
}

// newStoreWithSnapshot returns a memory store holding a snapshot of src-org
func newStoreWithSnapshot(t *testing.T, repos ...*model.Repository) interfaces.MetadataStore {
	t.Helper()
	store := memory.New()
	gt.NoError(t, store.PutSnapshot(context.Background(), &model.RepositorySnapshot{
		Organization: "src-org",
		Repositories: repos,
	}))
	return store
}

func migrationInput() *model.MigrationInput {
	return &model.MigrationInput{
		SourceOrg: "src-org",
		TargetOrg: "dst-org",
	}
}

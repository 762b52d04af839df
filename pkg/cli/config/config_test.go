package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/orgmigrate/pkg/cli/config"
	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func parse(t *testing.T, flags []cli.Flag, args ...string) {
	t.Helper()
	cmd := &cli.Command{
		Name:  "test",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
}

// clearEnv unsets keys for the test. An empty value would still shadow the
// fallback variables of a flag.
func clearEnv(t *testing.T, keys ...string) {
	for _, key := range keys {
		prev, ok := os.LookupEnv(key)
		gt.NoError(t, os.Unsetenv(key))
		t.Cleanup(func() {
			if ok {
				_ = os.Setenv(key, prev)
			} else {
				_ = os.Unsetenv(key)
			}
		})
	}
}

func TestSource(t *testing.T) {
	clearEnv(t, "ORGMIGRATE_SOURCE_TOKEN", "GITHUB_ACCESS_TOKEN", "ORGMIGRATE_SOURCE_ORG", "ORGANIZATION")

	t.Run("org is required", func(t *testing.T) {
		var src config.Source
		parse(t, src.Flags(), "--source-token", "xxx")
		err := src.Validate()
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("token is required", func(t *testing.T) {
		var src config.Source
		parse(t, src.Flags(), "--source-org", "src-org")
		_, err := src.New()
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("create client", func(t *testing.T) {
		var src config.Source
		parse(t, src.Flags(),
			"--source-org", "src-org",
			"--source-token", "xxx",
			"--source-base-url", "https://ghe.example.com/api/v3",
		)
		gt.V(t, src.Org()).Equal("src-org")
		client := gt.R1(src.New()).NoError(t)
		gt.V(t, client).NotEqual(nil)
	})

	t.Run("read from legacy env vars", func(t *testing.T) {
		t.Setenv("ORGANIZATION", "legacy-org")
		t.Setenv("GITHUB_ACCESS_TOKEN", "xxx")
		var src config.Source
		parse(t, src.Flags())
		gt.V(t, src.Org()).Equal("legacy-org")
		gt.NoError(t, src.Validate())
	})
}

func TestTarget(t *testing.T) {
	clearEnv(t, "ORGMIGRATE_TARGET_TOKEN", "TARGET_ACCESS_TOKEN", "ORGMIGRATE_TARGET_ORG", "TARGET_ORGANIZATION")

	t.Run("read from legacy env vars", func(t *testing.T) {
		t.Setenv("TARGET_ORGANIZATION", "legacy-dst")
		t.Setenv("TARGET_ACCESS_TOKEN", "xxx")
		var dst config.Target
		parse(t, dst.Flags())
		gt.V(t, dst.Org()).Equal(types.OrgName("legacy-dst"))
		gt.NoError(t, dst.Validate())
	})

	t.Run("token or app is required", func(t *testing.T) {
		var dst config.Target
		parse(t, dst.Flags(), "--target-org", "dst-org")
		gt.True(t, errors.Is(dst.Validate(), types.ErrInvalidOption))
	})

	t.Run("app requires installation and key", func(t *testing.T) {
		var dst config.Target
		parse(t, dst.Flags(), "--target-org", "dst-org", "--target-app-id", "1234")
		gt.True(t, errors.Is(dst.Validate(), types.ErrInvalidOption))
	})

	t.Run("token auth", func(t *testing.T) {
		var dst config.Target
		parse(t, dst.Flags(), "--target-org", "dst-org", "--target-token", "xxx")
		gt.V(t, dst.Org()).Equal("dst-org")
		gt.R1(dst.New()).NoError(t)
	})
}

func TestMigrationInput(t *testing.T) {
	testCases := map[string]struct {
		srcArgs  []string
		dstArgs  []string
		sanitize bool
	}{
		"same host": {
			srcArgs:  []string{"--source-org", "a"},
			dstArgs:  []string{"--target-org", "b"},
			sanitize: false,
		},
		"same enterprise host": {
			srcArgs:  []string{"--source-org", "a", "--source-base-url", "https://ghe.example.com/api/v3"},
			dstArgs:  []string{"--target-org", "b", "--target-base-url", "https://ghe.example.com/api/v3"},
			sanitize: false,
		},
		"another host": {
			srcArgs:  []string{"--source-org", "a"},
			dstArgs:  []string{"--target-org", "b", "--target-base-url", "https://ghe.example.com/api/v3"},
			sanitize: true,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			var src config.Source
			var dst config.Target
			parse(t, src.Flags(), tc.srcArgs...)
			parse(t, dst.Flags(), tc.dstArgs...)

			input := config.MigrationInput(&src, &dst)
			gt.V(t, input.SourceOrg).Equal("a")
			gt.V(t, input.TargetOrg).Equal("b")
			gt.V(t, input.SanitizeNames).Equal(tc.sanitize)
		})
	}
}

func TestStorageFileStore(t *testing.T) {
	clearEnv(t, "ORGMIGRATE_FIRESTORE_PROJECT_ID")
	ctx := context.Background()
	dir := t.TempDir()

	var storage config.Storage
	parse(t, storage.Flags(), "--data-dir", dir)
	gt.V(t, storage.DataDir()).Equal(dir)

	store := gt.R1(storage.NewMetadataStore(ctx)).NoError(t)
	gt.NoError(t, store.PutSnapshot(ctx, &model.RepositorySnapshot{
		Organization: "src-org",
		Repositories: []*model.Repository{{Name: "alpha"}},
	}))

	_, err := os.Stat(filepath.Join(dir, "src-org", "orgrepos.json"))
	gt.NoError(t, err)
}

func TestThrottle(t *testing.T) {
	var throttle config.Throttle
	parse(t, throttle.Flags(), "--create-delay", "1s", "--rate-limit-low-water", "50")

	attrs := map[string]string{}
	for _, attr := range throttle.LogValue().Group() {
		attrs[attr.Key] = attr.Value.String()
	}
	gt.V(t, attrs["createDelay"]).Equal("1s")
	gt.V(t, attrs["pushDelay"]).Equal("30s")
	gt.V(t, attrs["issueDelay"]).Equal("10s")
	gt.V(t, attrs["lowWater"]).Equal("50")
	gt.A(t, throttle.Options()).Length(2)
}

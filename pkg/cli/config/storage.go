package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/orgmigrate/pkg/domain/interfaces"
	"github.com/m-mizutani/orgmigrate/pkg/repository/file"
	"github.com/m-mizutani/orgmigrate/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Storage selects where snapshots and working copies are kept
type Storage struct {
	dataDir   string
	firestore Firestore
}

func (x *Storage) Flags() []cli.Flag {
	return slice.Flatten([]cli.Flag{
		&cli.StringFlag{
			Name:        "data-dir",
			Aliases:     []string{"d"},
			Usage:       "Directory of snapshots and working copies",
			Category:    "Storage",
			Value:       usecase.DefaultWorkspaceDir,
			Sources:     cli.EnvVars("ORGMIGRATE_DATA_DIR"),
			Destination: &x.dataDir,
		},
	}, x.firestore.Flags())
}

func (x *Storage) DataDir() string {
	return x.dataDir
}

// NewMetadataStore returns the Firestore store if configured, otherwise the
// file store under the data directory.
func (x *Storage) NewMetadataStore(ctx context.Context) (interfaces.MetadataStore, error) {
	if x.firestore.Enabled() {
		return x.firestore.NewMetadataStore(ctx)
	}
	return file.New(x.dataDir), nil
}

func (x *Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("dataDir", x.dataDir),
		slog.Any("firestore", &x.firestore),
	)
}

package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/orgmigrate/pkg/domain/interfaces"
	"github.com/m-mizutani/orgmigrate/pkg/repository/firestore"
	"github.com/urfave/cli/v3"
)

type Firestore struct {
	projectID  string
	databaseID string
}

func (x *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID. Snapshots are kept in Firestore instead of --data-dir if set",
			Category:    "Storage",
			Sources:     cli.EnvVars("ORGMIGRATE_FIRESTORE_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Storage",
			Sources:     cli.EnvVars("ORGMIGRATE_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &x.databaseID,
		},
	}
}

func (x *Firestore) Enabled() bool {
	return x.projectID != ""
}

func (x *Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("databaseID", x.databaseID),
	)
}

func (x *Firestore) NewMetadataStore(ctx context.Context) (interfaces.MetadataStore, error) {
	return firestore.New(ctx, x.projectID, x.databaseID)
}

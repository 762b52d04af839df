package firestore_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/orgmigrate/pkg/repository/firestore"
	"github.com/m-mizutani/orgmigrate/pkg/repository/testhelper"
	"github.com/m-mizutani/orgmigrate/pkg/utils/testutil"
)

func TestFirestoreMetadataStore(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_FIRESTORE_PROJECT_ID")
	databaseID := testutil.GetEnvOrSkip(t, "TEST_FIRESTORE_DATABASE_ID")

	ctx := context.Background()
	store, err := firestore.New(ctx, projectID, databaseID)
	gt.NoError(t, err)

	testhelper.TestAll(t, store)
}

func TestToDocID(t *testing.T) {
	id, err := firestore.ToDocID("my-org")
	gt.NoError(t, err)
	gt.V(t, id).Equal("my-org")

	id, err = firestore.ToDocID("repo.v2")
	gt.NoError(t, err)
	gt.V(t, id).Equal("repo.v2")

	for _, name := range []string{"", ".", "..", "a/b", "__reserved__"} {
		_, err = firestore.ToDocID(name)
		gt.Error(t, err)
	}
}

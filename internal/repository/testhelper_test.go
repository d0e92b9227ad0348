package repository

import (
	"context"
	"testing"

	"braik-api/internal/database"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// TestDB is a throwaway MongoDB container with every index in place.
type TestDB struct {
	Container *mongodb.MongoDBContainer
	Client    *mongo.Client
	Database  *mongo.Database
}

// SetupTestDB starts mongo:7.0 and returns a database named after the test.
// Repository constructors tolerate index failures, so indexes are created
// here explicitly and any failure stops the test.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7.0")
	require.NoError(t, err, "start mongo container")

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := mongo.Connect(ctx, database.ClientOptions(uri))
	require.NoError(t, err, "connect to mongo")
	require.NoError(t, client.Ping(ctx, nil))

	db := client.Database("braik_test_" + primitive.NewObjectID().Hex())
	require.NoError(t, EnsureIndexes(ctx, db), "create indexes")

	return &TestDB{
		Container: container,
		Client:    client,
		Database:  db,
	}
}

// Cleanup drops the database and stops the container.
func (tdb *TestDB) Cleanup(t *testing.T) {
	t.Helper()

	ctx := context.Background()
	if tdb.Database != nil {
		_ = tdb.Database.Drop(ctx)
	}
	if tdb.Client != nil {
		_ = tdb.Client.Disconnect(ctx)
	}
	if tdb.Container != nil {
		_ = tdb.Container.Terminate(ctx)
	}
}

// ClearCollection empties name but keeps its indexes.
func (tdb *TestDB) ClearCollection(t *testing.T, name string) {
	t.Helper()

	_, err := tdb.Database.Collection(name).DeleteMany(context.Background(), bson.M{})
	require.NoError(t, err, "clear %s", name)
}

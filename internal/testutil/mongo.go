package testutil

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	mongoMigration "tramondo/internal/migrations/mongo"
	"tramondo/pkg/client"
	"tramondo/pkg/config"
	"tramondo/pkg/logger"
)

const (
	EnvTestMongoURI   = "TEST_MONGO_URI"
	ConnectionTimeout = 10 * time.Second
	StoreTimeout      = 5 * time.Second
	DatabasePrefix    = "tramondo_test_"
)

// MongoURI is TEST_MONGO_URI, falling back to MONGO_URI.
func MongoURI() string {
	if uri := os.Getenv(EnvTestMongoURI); uri != "" {
		return uri
	}
	return os.Getenv(config.EnvMongoURI)
}

// NewMongoConfig connects to a live MongoDB and returns a config pointing at a
// freshly migrated database of its own. The database is dropped when the test
// ends. Tests are skipped when no URI is configured.
func NewMongoConfig(t *testing.T) *config.Config {
	t.Helper()

	uri := MongoURI()
	if uri == "" {
		t.Skipf("%s and %s are unset, skipping MongoDB test", EnvTestMongoURI, config.EnvMongoURI)
	}

	ctx, cancel := context.WithTimeout(context.Background(), ConnectionTimeout)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err, "failed to connect to MongoDB")
	require.NoError(t, mongoClient.Ping(ctx, nil), "failed to ping MongoDB")

	log := logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard})
	dbName := DatabasePrefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
	db := mongoClient.Database(dbName)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), ConnectionTimeout)
		defer cancel()

		if err := db.Drop(ctx); err != nil {
			t.Logf("warning: failed to drop %s: %v", dbName, err)
		}
		if err := mongoClient.Disconnect(ctx); err != nil {
			t.Logf("warning: failed to disconnect from MongoDB: %v", err)
		}
	})

	require.NoError(t, mongoMigration.RunMigration(ctx, db, log), "failed to migrate %s", dbName)

	return &config.Config{
		MongoURI:          uri,
		MongoDatabaseName: dbName,
		MongoConnTimeout:  ConnectionTimeout,
		ReadTimeout:       StoreTimeout,
		WriteTimeout:      StoreTimeout,
		Log:               log,
		Client:            &client.Client{Mongo: mongoClient},
	}
}

// CountDocuments returns the number of documents in a collection of cfg's database.
func CountDocuments(t *testing.T, cfg *config.Config, collection string) int64 {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), StoreTimeout)
	defer cancel()

	count, err := cfg.Client.Mongo.Database(cfg.MongoDatabaseName).
		Collection(collection).
		CountDocuments(ctx, map[string]any{})
	require.NoError(t, err)
	return count
}

package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tramondo/internal/migrations/mongo/validators"
	"tramondo/pkg/logger"
)

type Collection struct {
	Name      string
	Validator bson.M
	Indexes   []mongo.IndexModel
}

func unique(name string, keys bson.D) mongo.IndexModel {
	return mongo.IndexModel{Keys: keys, Options: options.Index().SetName(name).SetUnique(true)}
}

func index(name string, keys bson.D) mongo.IndexModel {
	return mongo.IndexModel{Keys: keys, Options: options.Index().SetName(name)}
}

// Collections lists every collection the API reads or writes, in creation order.
var Collections = []Collection{
	{
		Name:      "users",
		Validator: validators.UserValidator,
		Indexes: []mongo.IndexModel{
			unique("users_username_unique", bson.D{{Key: "username", Value: 1}}),
		},
	},
	{
		Name:      "destinations",
		Validator: validators.DestinationValidator,
		Indexes: []mongo.IndexModel{
			unique("destinations_slug_unique", bson.D{{Key: "slug", Value: 1}}),
		},
	},
	{
		Name:      "tours",
		Validator: validators.TourValidator,
		Indexes: []mongo.IndexModel{
			unique("tours_slug_unique", bson.D{{Key: "slug", Value: 1}}),
			index("tours_destination", bson.D{{Key: "destination_id", Value: 1}}),
			index("tours_activity_type", bson.D{{Key: "activity_type", Value: 1}}),
			index("tours_listing_order", bson.D{
				{Key: "featured", Value: -1},
				{Key: "rating", Value: -1},
			}),
		},
	},
	{
		Name:      "reviews",
		Validator: validators.ReviewValidator,
		Indexes: []mongo.IndexModel{
			index("reviews_tour_newest", bson.D{
				{Key: "tour_id", Value: 1},
				{Key: "created_at", Value: -1},
			}),
			index("reviews_newest", bson.D{{Key: "created_at", Value: -1}}),
		},
	},
	{
		Name:      "bookings",
		Validator: validators.BookingValidator,
		Indexes: []mongo.IndexModel{
			index("bookings_user_newest", bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: -1},
			}),
			index("bookings_tour", bson.D{{Key: "tour_id", Value: 1}}),
		},
	},
	{
		Name:      "email_subscriptions",
		Validator: validators.SubscriptionValidator,
		Indexes: []mongo.IndexModel{
			unique("email_subscriptions_email_unique", bson.D{{Key: "email", Value: 1}}),
		},
	},
	{
		Name:      "instagram_posts",
		Validator: validators.InstagramPostValidator,
		Indexes: []mongo.IndexModel{
			index("instagram_posts_active_order", bson.D{
				{Key: "active", Value: 1},
				{Key: "order", Value: 1},
			}),
		},
	},
}

// RunMigration creates missing collections, refreshes validators on existing
// ones and ensures indexes. It is safe to run repeatedly.
func RunMigration(ctx context.Context, db *mongo.Database, log *logger.Logger) error {
	log.Info("Running Mongo migrations", "database", db.Name())

	for _, c := range Collections {
		if err := ensureCollection(ctx, db, c.Name, c.Validator, log); err != nil {
			return fmt.Errorf("failed to ensure collection %s: %w", c.Name, err)
		}
		if err := ensureIndexes(ctx, db, c.Name, c.Indexes, log); err != nil {
			return fmt.Errorf("failed to ensure indexes for %s: %w", c.Name, err)
		}
	}

	log.Info("All migrations applied successfully", "collections", len(Collections))
	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string, validator bson.M, log *logger.Logger) error {
	existing, err := db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return err
	}

	if len(existing) == 0 {
		log.Info("Creating collection", "collection", name)
		opts := options.CreateCollection().SetValidator(validator)
		if err := db.CreateCollection(ctx, name, opts); err != nil {
			return fmt.Errorf("failed creating %s: %w", name, err)
		}
		return nil
	}

	log.Info("Collection already exists, updating validator", "collection", name)
	command := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
	}
	if err := db.RunCommand(ctx, command).Err(); err != nil {
		log.Warn("Failed updating validator", "collection", name, "error", err)
	}
	return nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database, name string, models []mongo.IndexModel, log *logger.Logger) error {
	if len(models) == 0 {
		return nil
	}
	names, err := db.Collection(name).Indexes().CreateMany(ctx, models)
	if err != nil {
		return err
	}
	log.Info("Ensured indexes", "collection", name, "indexes", names)
	return nil
}

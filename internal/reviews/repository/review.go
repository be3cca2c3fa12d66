package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tramondo/pkg/config"
	mongodb "tramondo/pkg/db/mongo"
	"tramondo/pkg/model"
)

const (
	CollectionName = "reviews"
)

var newestFirst = bson.D{
	{Key: "created_at", Value: -1},
	{Key: "_id", Value: -1},
}

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	FindByTourID(ctx context.Context, tourID string) ([]*model.Review, error)
	FindLatest(ctx context.Context, limit int64) ([]*model.Review, error)
	RatingStats(ctx context.Context, tourID string) (model.RatingStats, error)
}

type mongoReviewRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoReviewRepository(cfg *config.Config) ReviewRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoReviewRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoReviewRepository) Create(ctx context.Context, review *model.Review) error {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	review.ID = mongodb.NewID()
	review.CreatedAt = mongodb.Now()

	if _, err := r.collection.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (r *mongoReviewRepository) FindByTourID(ctx context.Context, tourID string) ([]*model.Review, error) {
	return r.find(ctx, bson.M{"tour_id": tourID}, options.Find().SetSort(newestFirst))
}

func (r *mongoReviewRepository) FindLatest(ctx context.Context, limit int64) ([]*model.Review, error) {
	return r.find(ctx, bson.M{}, options.Find().SetSort(newestFirst).SetLimit(limit))
}

func (r *mongoReviewRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*model.Review, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []*model.Review{}
	if err = cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

// RatingStats counts and sums the ratings currently stored for a tour. A tour
// without reviews yields zero stats.
func (r *mongoReviewRepository) RatingStats(ctx context.Context, tourID string) (model.RatingStats, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"tour_id": tourID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"count": bson.M{"$sum": 1},
			"sum":   bson.M{"$sum": "$rating"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return model.RatingStats{}, fmt.Errorf("failed to aggregate ratings: %w", err)
	}
	defer cursor.Close(ctx)

	var stats model.RatingStats
	if cursor.Next(ctx) {
		if err := cursor.Decode(&stats); err != nil {
			return model.RatingStats{}, fmt.Errorf("failed to decode rating stats: %w", err)
		}
	}
	if err := cursor.Err(); err != nil {
		return model.RatingStats{}, fmt.Errorf("failed to read rating stats: %w", err)
	}

	return stats, nil
}

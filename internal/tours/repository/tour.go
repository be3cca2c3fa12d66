package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	tourserrors "tramondo/internal/tours/errors"
	"tramondo/pkg/config"
	mongodb "tramondo/pkg/db/mongo"
	"tramondo/pkg/model"
)

const (
	CollectionName = "tours"
)

type TourRepository interface {
	Create(ctx context.Context, tour *model.Tour) error
	FindAll(ctx context.Context, query model.TourQuery) ([]*model.Tour, error)
	FindBySlug(ctx context.Context, slug string) (*model.Tour, error)
	FindByID(ctx context.Context, id string) (*model.Tour, error)
	FindByDestination(ctx context.Context, destinationID string) ([]*model.Tour, error)
	UpdateRating(ctx context.Context, id string, rating model.Rating, reviewCount int64) error
}

type mongoTourRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoTourRepository(cfg *config.Config) TourRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoTourRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

// Create always starts a tour with no rating and no reviews.
func (r *mongoTourRepository) Create(ctx context.Context, tour *model.Tour) error {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	tour.ID = mongodb.NewID()
	tour.Rating = 0
	tour.ReviewCount = 0
	tour.CreatedAt = mongodb.Now()

	if _, err := r.collection.InsertOne(ctx, tour); err != nil {
		if mongodb.IsDuplicateKey(err) {
			return fmt.Errorf("%w: %s", tourserrors.ErrDuplicate, tour.Slug)
		}
		return fmt.Errorf("failed to create tour: %w", err)
	}

	return nil
}

func (r *mongoTourRepository) FindAll(ctx context.Context, query model.TourQuery) ([]*model.Tour, error) {
	return r.find(ctx, BuildFilter(query))
}

func (r *mongoTourRepository) FindByDestination(ctx context.Context, destinationID string) ([]*model.Tour, error) {
	return r.find(ctx, bson.M{"destination_id": destinationID})
}

func (r *mongoTourRepository) find(ctx context.Context, filter bson.M) ([]*model.Tour, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(tourSort))
	if err != nil {
		return nil, fmt.Errorf("failed to query tours: %w", err)
	}
	defer cursor.Close(ctx)

	tours := []*model.Tour{}
	if err = cursor.All(ctx, &tours); err != nil {
		return nil, fmt.Errorf("failed to decode tours: %w", err)
	}

	return tours, nil
}

func (r *mongoTourRepository) FindBySlug(ctx context.Context, slug string) (*model.Tour, error) {
	return r.findOne(ctx, bson.M{"slug": slug}, slug)
}

func (r *mongoTourRepository) FindByID(ctx context.Context, id string) (*model.Tour, error) {
	return r.findOne(ctx, bson.M{"_id": id}, id)
}

func (r *mongoTourRepository) findOne(ctx context.Context, filter bson.M, key string) (*model.Tour, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var tour model.Tour
	if err := r.collection.FindOne(ctx, filter).Decode(&tour); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", tourserrors.ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to find tour: %w", err)
	}
	return &tour, nil
}

func (r *mongoTourRepository) UpdateRating(ctx context.Context, id string, rating model.Rating, reviewCount int64) error {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"rating":       rating,
			"review_count": reviewCount,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update tour rating: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", tourserrors.ErrNotFound, id)
	}

	return nil
}

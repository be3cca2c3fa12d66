package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	destinationserrors "tramondo/internal/destinations/errors"
	"tramondo/pkg/config"
	mongodb "tramondo/pkg/db/mongo"
	"tramondo/pkg/model"
)

const (
	CollectionName = "destinations"
)

type DestinationRepository interface {
	Create(ctx context.Context, destination *model.Destination) error
	FindAll(ctx context.Context) ([]*model.Destination, error)
	FindBySlug(ctx context.Context, slug string) (*model.Destination, error)
	FindByID(ctx context.Context, id string) (*model.Destination, error)
}

type mongoDestinationRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoDestinationRepository(cfg *config.Config) DestinationRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoDestinationRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoDestinationRepository) Create(ctx context.Context, destination *model.Destination) error {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	destination.ID = mongodb.NewID()

	if _, err := r.collection.InsertOne(ctx, destination); err != nil {
		if mongodb.IsDuplicateKey(err) {
			return fmt.Errorf("%w: %s", destinationserrors.ErrDuplicate, destination.Slug)
		}
		return fmt.Errorf("failed to create destination: %w", err)
	}

	return nil
}

func (r *mongoDestinationRepository) FindAll(ctx context.Context) ([]*model.Destination, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query destinations: %w", err)
	}
	defer cursor.Close(ctx)

	destinations := []*model.Destination{}
	if err = cursor.All(ctx, &destinations); err != nil {
		return nil, fmt.Errorf("failed to decode destinations: %w", err)
	}

	return destinations, nil
}

func (r *mongoDestinationRepository) FindBySlug(ctx context.Context, slug string) (*model.Destination, error) {
	return r.findOne(ctx, bson.M{"slug": slug}, slug)
}

func (r *mongoDestinationRepository) FindByID(ctx context.Context, id string) (*model.Destination, error) {
	return r.findOne(ctx, bson.M{"_id": id}, id)
}

func (r *mongoDestinationRepository) findOne(ctx context.Context, filter bson.M, key string) (*model.Destination, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var destination model.Destination
	if err := r.collection.FindOne(ctx, filter).Decode(&destination); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", destinationserrors.ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to find destination: %w", err)
	}
	return &destination, nil
}

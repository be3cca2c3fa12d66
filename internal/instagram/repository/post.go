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
	CollectionName = "instagram_posts"
)

type PostRepository interface {
	Create(ctx context.Context, post *model.InstagramPost) error
	FindActive(ctx context.Context) ([]*model.InstagramPost, error)
}

type mongoPostRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoPostRepository(cfg *config.Config) PostRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoPostRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoPostRepository) Create(ctx context.Context, post *model.InstagramPost) error {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	post.ID = mongodb.NewID()
	if _, err := r.collection.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("failed to create instagram post: %w", err)
	}
	return nil
}

func (r *mongoPostRepository) FindActive(ctx context.Context) ([]*model.InstagramPost, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "order", Value: 1},
		{Key: "_id", Value: 1},
	})

	cursor, err := r.collection.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query instagram posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []*model.InstagramPost{}
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode instagram posts: %w", err)
	}
	return posts, nil
}

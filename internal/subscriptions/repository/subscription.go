package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	subscriptionserrors "tramondo/internal/subscriptions/errors"
	"tramondo/pkg/config"
	mongodb "tramondo/pkg/db/mongo"
	"tramondo/pkg/model"
)

const (
	CollectionName = "email_subscriptions"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *model.EmailSubscription) error
	FindByEmail(ctx context.Context, email string) (*model.EmailSubscription, error)
}

type mongoSubscriptionRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoSubscriptionRepository(cfg *config.Config) SubscriptionRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoSubscriptionRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoSubscriptionRepository) Create(ctx context.Context, subscription *model.EmailSubscription) error {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	subscription.ID = mongodb.NewID()
	subscription.Subscribed = true
	subscription.CreatedAt = mongodb.Now()

	if _, err := r.collection.InsertOne(ctx, subscription); err != nil {
		if mongodb.IsDuplicateKey(err) {
			return fmt.Errorf("%w: %s", subscriptionserrors.ErrDuplicate, subscription.Email)
		}
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

func (r *mongoSubscriptionRepository) FindByEmail(ctx context.Context, email string) (*model.EmailSubscription, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var subscription model.EmailSubscription
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&subscription); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", subscriptionserrors.ErrNotFound, email)
		}
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}
	return &subscription, nil
}

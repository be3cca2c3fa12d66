package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	subscriptionserrors "tramondo/internal/subscriptions/errors"
	"tramondo/internal/testutil"
	"tramondo/pkg/model"
)

func TestMongoSubscriptionRepository_Create(t *testing.T) {
	cfg := testutil.NewMongoConfig(t)
	repo := NewMongoSubscriptionRepository(cfg)
	ctx := context.Background()

	sub := &model.EmailSubscription{Email: "traveller@example.com"}
	require.NoError(t, repo.Create(ctx, sub))
	assert.NotEmpty(t, sub.ID)
	assert.True(t, sub.Subscribed)

	found, err := repo.FindByEmail(ctx, "traveller@example.com")
	require.NoError(t, err)
	assert.Equal(t, sub.ID, found.ID)
	assert.True(t, found.Subscribed)
	assert.WithinDuration(t, sub.CreatedAt, found.CreatedAt, 0)
}

func TestMongoSubscriptionRepository_UniqueEmail(t *testing.T) {
	cfg := testutil.NewMongoConfig(t)
	repo := NewMongoSubscriptionRepository(cfg)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.EmailSubscription{Email: "traveller@example.com"}))
	err := repo.Create(ctx, &model.EmailSubscription{Email: "traveller@example.com"})

	assert.ErrorIs(t, err, subscriptionserrors.ErrDuplicate)
	assert.Equal(t, int64(1), testutil.CountDocuments(t, cfg, CollectionName))
}

func TestMongoSubscriptionRepository_FindByEmailMissing(t *testing.T) {
	cfg := testutil.NewMongoConfig(t)
	repo := NewMongoSubscriptionRepository(cfg)

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, subscriptionserrors.ErrNotFound)
}

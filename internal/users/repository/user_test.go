package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tramondo/internal/testutil"
	userserrors "tramondo/internal/users/errors"
	"tramondo/pkg/model"
)

func TestMongoUserRepository_CreateAndFind(t *testing.T) {
	cfg := testutil.NewMongoConfig(t)
	repo := NewMongoUserRepository(cfg)
	ctx := context.Background()

	user := &model.User{Username: "demo", Password: "demo"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEmpty(t, user.ID)

	byName, err := repo.FindByUsername(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)
	assert.Equal(t, "demo", byName.Password)
	assert.Nil(t, byName.Email)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "demo", byID.Username)
}

func TestMongoUserRepository_DuplicateUsername(t *testing.T) {
	cfg := testutil.NewMongoConfig(t)
	repo := NewMongoUserRepository(cfg)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.User{Username: "demo", Password: "one"}))
	err := repo.Create(ctx, &model.User{Username: "demo", Password: "two"})

	assert.ErrorIs(t, err, userserrors.ErrDuplicate)
	assert.Equal(t, int64(1), testutil.CountDocuments(t, cfg, CollectionName))
}

func TestMongoUserRepository_Missing(t *testing.T) {
	cfg := testutil.NewMongoConfig(t)
	repo := NewMongoUserRepository(cfg)
	ctx := context.Background()

	_, err := repo.FindByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, userserrors.ErrNotFound)

	_, err = repo.FindByID(ctx, "no-such-id")
	assert.ErrorIs(t, err, userserrors.ErrNotFound)
}

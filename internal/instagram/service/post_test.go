package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tramondo/pkg/config"
	apperrors "tramondo/pkg/errors"
	"tramondo/pkg/logger"
	"tramondo/pkg/model"
	"tramondo/pkg/validator"
)

type mockPostRepository struct {
	posts   []*model.InstagramPost
	findErr error
}

func (m *mockPostRepository) Create(_ context.Context, post *model.InstagramPost) error {
	post.ID = fmt.Sprintf("post-%d", len(m.posts)+1)
	m.posts = append(m.posts, post)
	return nil
}

func (m *mockPostRepository) FindActive(_ context.Context) ([]*model.InstagramPost, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	active := []*model.InstagramPost{}
	for _, p := range m.posts {
		if p.Active {
			active = append(active, p)
		}
	}
	sort.SliceStable(active, func(i, j int) bool { return active[i].Order < active[j].Order })
	return active, nil
}

func newTestService(repo *mockPostRepository) PostService {
	return NewPostService(repo, validator.New(), &config.Config{Log: logger.Discard()})
}

func TestCreate_DefaultsToActive(t *testing.T) {
	svc := newTestService(&mockPostRepository{})

	post, err := svc.Create(context.Background(), &model.InstagramPostInput{ImageURL: " /images/ig-1.jpg ", Order: 1})
	require.NoError(t, err)

	assert.True(t, post.Active)
	assert.Equal(t, "/images/ig-1.jpg", post.ImageURL)
	assert.Nil(t, post.Caption)
}

func TestCreate_RequiresImage(t *testing.T) {
	svc := newTestService(&mockPostRepository{})

	_, err := svc.Create(context.Background(), &model.InstagramPostInput{Order: 1})
	require.Error(t, err)
	assert.Contains(t, apperrors.AsAppError(err).Details, "imageUrl")
}

func TestGetActive_FiltersAndOrders(t *testing.T) {
	repo := &mockPostRepository{}
	svc := newTestService(repo)

	inactive := false
	inputs := []*model.InstagramPostInput{
		{ImageURL: "/c.jpg", Order: 3},
		{ImageURL: "/hidden.jpg", Order: 0, Active: &inactive},
		{ImageURL: "/a.jpg", Order: 1},
		{ImageURL: "/b.jpg", Order: 2},
	}
	for _, in := range inputs {
		_, err := svc.Create(context.Background(), in)
		require.NoError(t, err)
	}

	posts, err := svc.GetActive(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "/a.jpg", posts[0].ImageURL)
	assert.Equal(t, "/b.jpg", posts[1].ImageURL)
	assert.Equal(t, "/c.jpg", posts[2].ImageURL)

	repo.findErr = errors.New("boom")
	_, err = svc.GetActive(context.Background())
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInternal))
}

package seed

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tramondo/pkg/errors"
	"tramondo/pkg/logger"
	"tramondo/pkg/model"
)

type memoryDestinations struct{ created []*model.Destination }

func (m *memoryDestinations) Create(_ context.Context, in *model.DestinationInput) (*model.Destination, error) {
	d := &model.Destination{ID: fmt.Sprintf("dest-%d", len(m.created)+1), Name: in.Name, Slug: in.Slug}
	m.created = append(m.created, d)
	return d, nil
}

type memoryTours struct{ created []*model.Tour }

func (m *memoryTours) Create(_ context.Context, in *model.TourInput) (*model.Tour, error) {
	t := &model.Tour{ID: fmt.Sprintf("tour-%d", len(m.created)+1), Slug: in.Slug, DestinationID: in.DestinationID}
	m.created = append(m.created, t)
	return t, nil
}

type memoryReviews struct{ created []*model.ReviewInput }

func (m *memoryReviews) Create(_ context.Context, in *model.ReviewInput) (*model.Review, error) {
	m.created = append(m.created, in)
	return &model.Review{ID: fmt.Sprintf("review-%d", len(m.created)), TourID: in.TourID, Rating: in.Rating}, nil
}

type memoryPosts struct{ created []*model.InstagramPostInput }

func (m *memoryPosts) Create(_ context.Context, in *model.InstagramPostInput) (*model.InstagramPost, error) {
	m.created = append(m.created, in)
	return &model.InstagramPost{ID: fmt.Sprintf("post-%d", len(m.created)), Order: in.Order, Active: true}, nil
}

type memoryUsers struct{ users map[string]*model.User }

func (m *memoryUsers) Create(_ context.Context, in *model.UserInput) (*model.User, error) {
	u := &model.User{ID: fmt.Sprintf("user-%d", len(m.users)+1), Username: in.Username}
	m.users[in.Username] = u
	return u, nil
}

func (m *memoryUsers) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if u, ok := m.users[username]; ok {
		return u, nil
	}
	return nil, apperrors.NotFound("User")
}

func TestSeeder_Run(t *testing.T) {
	destinations := &memoryDestinations{}
	tours := &memoryTours{}
	reviews := &memoryReviews{}
	posts := &memoryPosts{}
	users := &memoryUsers{users: map[string]*model.User{}}

	s := &Seeder{
		Destinations: destinations,
		Tours:        tours,
		Reviews:      reviews,
		Posts:        posts,
		Users:        users,
		Log:          logger.Discard(),
	}
	require.NoError(t, s.Run(context.Background()))

	assert.Len(t, destinations.created, 5)
	assert.Len(t, tours.created, 7)
	assert.Len(t, reviews.created, 6)
	assert.Len(t, users.users, 1)

	destinationIDs := map[string]bool{}
	for _, d := range destinations.created {
		destinationIDs[d.ID] = true
	}
	for _, tour := range tours.created {
		require.NotNil(t, tour.DestinationID, tour.Slug)
		assert.True(t, destinationIDs[*tour.DestinationID], tour.Slug)
	}
	for _, r := range reviews.created {
		require.NotNil(t, r.TourID)
	}

	require.Len(t, posts.created, 6)
	for i, p := range posts.created {
		assert.Equal(t, i+1, p.Order)
	}

	require.NoError(t, s.Run(context.Background()))
	assert.Len(t, users.users, 1, "demo user is created once")
}

func TestSeedData_IsValidInput(t *testing.T) {
	slugs := map[string]bool{}
	for _, d := range destinations() {
		slugs[d.Slug] = true
	}
	for _, ts := range tours() {
		assert.True(t, slugs[ts.destination], ts.input.Slug)
		require.NotNil(t, ts.input.Price)
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	destinationserrors "tramondo/internal/destinations/errors"
	"tramondo/pkg/config"
	apperrors "tramondo/pkg/errors"
	"tramondo/pkg/logger"
	"tramondo/pkg/model"
	"tramondo/pkg/validator"
)

type mockDestinationRepository struct {
	destinations []*model.Destination
	findAllErr   error
}

func (m *mockDestinationRepository) Create(_ context.Context, destination *model.Destination) error {
	for _, d := range m.destinations {
		if d.Slug == destination.Slug {
			return fmt.Errorf("%w: %s", destinationserrors.ErrDuplicate, destination.Slug)
		}
	}
	destination.ID = fmt.Sprintf("dest-%d", len(m.destinations)+1)
	m.destinations = append(m.destinations, destination)
	return nil
}

func (m *mockDestinationRepository) FindAll(_ context.Context) ([]*model.Destination, error) {
	if m.findAllErr != nil {
		return nil, m.findAllErr
	}
	return append([]*model.Destination{}, m.destinations...), nil
}

func (m *mockDestinationRepository) FindBySlug(_ context.Context, slug string) (*model.Destination, error) {
	for _, d := range m.destinations {
		if d.Slug == slug {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", destinationserrors.ErrNotFound, slug)
}

func (m *mockDestinationRepository) FindByID(_ context.Context, id string) (*model.Destination, error) {
	for _, d := range m.destinations {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", destinationserrors.ErrNotFound, id)
}

func newTestService(repo *mockDestinationRepository) DestinationService {
	return NewDestinationService(repo, validator.New(), &config.Config{Log: logger.Discard()})
}

func TestCreate_SanitizesInput(t *testing.T) {
	repo := &mockDestinationRepository{}
	svc := newTestService(repo)

	country := "  "
	image := "HTTPS://Example.COM/nz.jpg"
	destination, err := svc.Create(context.Background(), &model.DestinationInput{
		Name:     "  New   Zealand ",
		Slug:     "New Zealand",
		ImageURL: &image,
		Country:  &country,
	})
	require.NoError(t, err)

	assert.Equal(t, "dest-1", destination.ID)
	assert.Equal(t, "New Zealand", destination.Name)
	assert.Equal(t, "new-zealand", destination.Slug)
	assert.Nil(t, destination.Country)
	require.NotNil(t, destination.ImageURL)
	assert.Equal(t, "https://example.com/nz.jpg", *destination.ImageURL)
}

func TestCreate_DuplicateSlug(t *testing.T) {
	repo := &mockDestinationRepository{}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), &model.DestinationInput{Name: "Fiji", Slug: "fiji"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &model.DestinationInput{Name: "Fiji Islands", Slug: "fiji"})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeConflict))
	assert.Equal(t, "Destination slug already exists", apperrors.AsAppError(err).Message)
}

func TestCreate_MissingName(t *testing.T) {
	svc := newTestService(&mockDestinationRepository{})

	_, err := svc.Create(context.Background(), &model.DestinationInput{Slug: "fiji"})
	require.Error(t, err)

	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
	assert.Contains(t, appErr.Details, "name")
}

func TestGetAll(t *testing.T) {
	repo := &mockDestinationRepository{}
	svc := newTestService(repo)

	destinations, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, destinations)
	assert.Empty(t, destinations)

	repo.findAllErr = errors.New("socket closed")
	_, err = svc.GetAll(context.Background())
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInternal))
}

func TestGetBySlug(t *testing.T) {
	repo := &mockDestinationRepository{}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), &model.DestinationInput{Name: "Australia", Slug: "australia"})
	require.NoError(t, err)

	found, err := svc.GetBySlug(context.Background(), "australia")
	require.NoError(t, err)
	assert.Equal(t, "Australia", found.Name)

	_, err = svc.GetBySlug(context.Background(), "atlantis")
	require.Error(t, err)
	assert.Equal(t, "Destination not found", apperrors.AsAppError(err).Message)
}

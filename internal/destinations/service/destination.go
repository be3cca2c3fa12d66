package service

import (
	"context"
	"errors"

	destinationserrors "tramondo/internal/destinations/errors"
	"tramondo/internal/destinations/repository"
	"tramondo/pkg/config"
	apperrors "tramondo/pkg/errors"
	"tramondo/pkg/model"
	"tramondo/pkg/sanitizer"
	"tramondo/pkg/validator"
)

type DestinationService interface {
	Create(ctx context.Context, input *model.DestinationInput) (*model.Destination, error)
	GetAll(ctx context.Context) ([]*model.Destination, error)
	GetBySlug(ctx context.Context, slug string) (*model.Destination, error)
}

type destinationService struct {
	repo      repository.DestinationRepository
	validator *validator.Validator
	cfg       *config.Config
}

func NewDestinationService(
	repo repository.DestinationRepository,
	validator *validator.Validator,
	cfg *config.Config,
) DestinationService {
	return &destinationService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *destinationService) Create(ctx context.Context, input *model.DestinationInput) (*model.Destination, error) {
	s.sanitize(input)

	if err := s.validator.Validate(input); err != nil {
		s.cfg.Log.Warn("Destination validation failed", "slug", input.Slug, "error", err)
		return nil, validator.AsAppError("Invalid destination data", err)
	}

	destination := &model.Destination{
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Country:     input.Country,
		Featured:    input.Featured,
	}

	if err := s.repo.Create(ctx, destination); err != nil {
		if errors.Is(err, destinationserrors.ErrDuplicate) {
			s.cfg.Log.Warn("Destination slug already exists", "slug", destination.Slug)
			return nil, apperrors.Conflict("Destination slug already exists")
		}
		s.cfg.Log.Error("Failed to create destination", "slug", destination.Slug, "error", err)
		return nil, apperrors.Internal("Failed to create destination", err)
	}

	s.cfg.Log.Info("Destination created successfully", "id", destination.ID, "slug", destination.Slug)
	return destination, nil
}

func (s *destinationService) GetAll(ctx context.Context) ([]*model.Destination, error) {
	destinations, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to fetch destinations", "error", err)
		return nil, apperrors.Internal("Failed to fetch destinations", err)
	}
	return destinations, nil
}

func (s *destinationService) GetBySlug(ctx context.Context, slug string) (*model.Destination, error) {
	destination, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, destinationserrors.ErrNotFound) {
			return nil, apperrors.NotFound("Destination")
		}
		s.cfg.Log.Error("Failed to fetch destination", "slug", slug, "error", err)
		return nil, apperrors.Internal("Failed to fetch destination", err)
	}
	return destination, nil
}

func (s *destinationService) sanitize(input *model.DestinationInput) {
	input.Name = sanitizer.TrimAndNormalize(input.Name)
	input.Slug = sanitizer.NormalizeSlug(input.Slug)
	input.Description = sanitizer.TrimPtr(input.Description)
	input.ImageURL = sanitizer.NormalizeURLPtr(input.ImageURL)
	input.Country = sanitizer.TrimAndNormalizePtr(input.Country)
}

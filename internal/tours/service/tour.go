package service

import (
	"context"
	"errors"
	"strings"

	destinationserrors "tramondo/internal/destinations/errors"
	tourserrors "tramondo/internal/tours/errors"
	"tramondo/internal/tours/repository"
	"tramondo/pkg/config"
	apperrors "tramondo/pkg/errors"
	"tramondo/pkg/model"
	"tramondo/pkg/sanitizer"
	"tramondo/pkg/validator"
)

type TourService interface {
	Create(ctx context.Context, input *model.TourInput) (*model.Tour, error)
	GetAll(ctx context.Context, filter model.TourFilter) ([]*model.Tour, error)
	GetBySlug(ctx context.Context, slug string) (*model.Tour, error)
	GetByID(ctx context.Context, id string) (*model.Tour, error)
	GetByDestination(ctx context.Context, destinationID string) ([]*model.Tour, error)
}

// DestinationFinder resolves the destination a tour points at.
type DestinationFinder interface {
	FindBySlug(ctx context.Context, slug string) (*model.Destination, error)
	FindByID(ctx context.Context, id string) (*model.Destination, error)
}

type tourService struct {
	repo         repository.TourRepository
	destinations DestinationFinder
	validator    *validator.Validator
	cfg          *config.Config
}

func NewTourService(
	repo repository.TourRepository,
	destinations DestinationFinder,
	validator *validator.Validator,
	cfg *config.Config,
) TourService {
	return &tourService{
		repo:         repo,
		destinations: destinations,
		validator:    validator,
		cfg:          cfg,
	}
}

func (s *tourService) Create(ctx context.Context, input *model.TourInput) (*model.Tour, error) {
	s.sanitize(input)

	if err := s.validator.Validate(input); err != nil {
		s.cfg.Log.Warn("Tour validation failed", "slug", input.Slug, "error", err)
		return nil, validator.AsAppError("Invalid tour data", err)
	}

	if input.DestinationID != nil {
		if _, err := s.destinations.FindByID(ctx, *input.DestinationID); err != nil {
			if errors.Is(err, destinationserrors.ErrNotFound) {
				s.cfg.Log.Warn("Tour references unknown destination", "slug", input.Slug, "destination_id", *input.DestinationID)
				return nil, apperrors.Validation("Invalid tour data", map[string]any{
					"destinationId": "does not reference an existing destination",
				})
			}
			s.cfg.Log.Error("Failed to verify tour destination", "destination_id", *input.DestinationID, "error", err)
			return nil, apperrors.Internal("Failed to create tour", err)
		}
	}

	tour := &model.Tour{
		Title:            input.Title,
		Slug:             input.Slug,
		Description:      input.Description,
		ShortDescription: input.ShortDescription,
		Price:            *input.Price,
		Duration:         input.Duration,
		Location:         input.Location,
		DestinationID:    input.DestinationID,
		ImageURL:         input.ImageURL,
		ActivityType:     input.ActivityType,
		MaxGroupSize:     input.MaxGroupSize,
		Featured:         input.Featured,
		Badge:            input.Badge,
		Itinerary:        input.Itinerary,
		Included:         input.Included,
		Excluded:         input.Excluded,
	}

	if err := s.repo.Create(ctx, tour); err != nil {
		if errors.Is(err, tourserrors.ErrDuplicate) {
			s.cfg.Log.Warn("Tour slug already exists", "slug", tour.Slug)
			return nil, apperrors.Conflict("Tour slug already exists")
		}
		s.cfg.Log.Error("Failed to create tour", "slug", tour.Slug, "error", err)
		return nil, apperrors.Internal("Failed to create tour", err)
	}

	s.cfg.Log.Info("Tour created successfully", "id", tour.ID, "slug", tour.Slug)
	return tour, nil
}

// GetAll applies the catalogue filter. An unknown destination slug is not an
// error; it simply matches no tour.
func (s *tourService) GetAll(ctx context.Context, filter model.TourFilter) ([]*model.Tour, error) {
	query := model.TourQuery{
		ActivityType: normalizeFilterValue(filter.ActivityType),
		Search:       filter.Search,
	}

	if slug := normalizeFilterValue(filter.Destination); slug != "" {
		destination, err := s.destinations.FindBySlug(ctx, slug)
		switch {
		case err == nil:
			query.DestinationID = destination.ID
		case errors.Is(err, destinationserrors.ErrNotFound):
			query.DestinationMissing = true
		default:
			s.cfg.Log.Error("Failed to resolve destination filter", "destination", slug, "error", err)
			return nil, apperrors.Internal("Failed to fetch tours", err)
		}
	}

	tours, err := s.repo.FindAll(ctx, query)
	if err != nil {
		s.cfg.Log.Error("Failed to fetch tours", "activity_type", query.ActivityType, "search", query.Search, "error", err)
		return nil, apperrors.Internal("Failed to fetch tours", err)
	}
	return tours, nil
}

func (s *tourService) GetBySlug(ctx context.Context, slug string) (*model.Tour, error) {
	tour, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, s.lookupError(err, "slug", slug)
	}
	return tour, nil
}

func (s *tourService) GetByID(ctx context.Context, id string) (*model.Tour, error) {
	tour, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.lookupError(err, "id", id)
	}
	return tour, nil
}

func (s *tourService) GetByDestination(ctx context.Context, destinationID string) ([]*model.Tour, error) {
	tours, err := s.repo.FindByDestination(ctx, destinationID)
	if err != nil {
		s.cfg.Log.Error("Failed to fetch destination tours", "destination_id", destinationID, "error", err)
		return nil, apperrors.Internal("Failed to fetch tours", err)
	}
	return tours, nil
}

func (s *tourService) lookupError(err error, key, value string) error {
	if errors.Is(err, tourserrors.ErrNotFound) {
		return apperrors.NotFound("Tour")
	}
	s.cfg.Log.Error("Failed to fetch tour", key, value, "error", err)
	return apperrors.Internal("Failed to fetch tour", err)
}

func (s *tourService) sanitize(input *model.TourInput) {
	input.Title = sanitizer.TrimAndNormalize(input.Title)
	input.Slug = sanitizer.NormalizeSlug(input.Slug)
	input.Description = strings.TrimSpace(input.Description)
	input.ShortDescription = sanitizer.TrimPtr(input.ShortDescription)
	input.Location = sanitizer.TrimAndNormalize(input.Location)
	input.DestinationID = sanitizer.TrimAndNormalizePtr(input.DestinationID)
	input.ImageURL = sanitizer.NormalizeURL(input.ImageURL)
	input.ActivityType = strings.ToLower(strings.TrimSpace(input.ActivityType))
	input.Badge = sanitizer.TrimAndNormalizePtr(input.Badge)
	input.Itinerary = sanitizer.TrimPtr(input.Itinerary)
	input.Included = sanitizer.NormalizeItems(input.Included)
	input.Excluded = sanitizer.NormalizeItems(input.Excluded)
}

// normalizeFilterValue maps "all" and blank to "no restriction".
func normalizeFilterValue(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, config.FilterAll) {
		return ""
	}
	return v
}

package service

import (
	"context"
	"errors"
	"strings"

	"tramondo/internal/reviews/repository"
	tourserrors "tramondo/internal/tours/errors"
	"tramondo/pkg/config"
	mongodb "tramondo/pkg/db/mongo"
	apperrors "tramondo/pkg/errors"
	"tramondo/pkg/events"
	"tramondo/pkg/model"
	"tramondo/pkg/sanitizer"
	"tramondo/pkg/validator"
)

type ReviewService interface {
	Create(ctx context.Context, input *model.ReviewInput) (*model.Review, error)
	GetLatest(ctx context.Context) ([]*model.Review, error)
	GetByTourSlug(ctx context.Context, slug string) ([]*model.Review, error)
}

// TourStore is the part of the tour catalogue a review touches.
type TourStore interface {
	FindByID(ctx context.Context, id string) (*model.Tour, error)
	FindBySlug(ctx context.Context, slug string) (*model.Tour, error)
	UpdateRating(ctx context.Context, id string, rating model.Rating, reviewCount int64) error
}

type reviewService struct {
	repo      repository.ReviewRepository
	tours     TourStore
	tx        mongodb.TransactionManager
	publisher events.Publisher
	validator *validator.Validator
	cfg       *config.Config
}

func NewReviewService(
	repo repository.ReviewRepository,
	tours TourStore,
	tx mongodb.TransactionManager,
	publisher events.Publisher,
	validator *validator.Validator,
	cfg *config.Config,
) ReviewService {
	return &reviewService{
		repo:      repo,
		tours:     tours,
		tx:        tx,
		publisher: publisher,
		validator: validator,
		cfg:       cfg,
	}
}

// Create stores the review and then recomputes the tour's rating and review
// count from every review stored for it, the new one included.
func (s *reviewService) Create(ctx context.Context, input *model.ReviewInput) (*model.Review, error) {
	s.sanitize(input)

	if err := s.validator.Validate(input); err != nil {
		s.cfg.Log.Warn("Review validation failed", "error", err)
		return nil, validator.AsAppError("Invalid review data", err)
	}

	if input.TourID != nil {
		if _, err := s.tours.FindByID(ctx, *input.TourID); err != nil {
			if errors.Is(err, tourserrors.ErrNotFound) {
				s.cfg.Log.Warn("Review references unknown tour", "tour_id", *input.TourID)
				return nil, apperrors.Validation("Invalid review data", map[string]any{
					"tourId": "does not reference an existing tour",
				})
			}
			s.cfg.Log.Error("Failed to verify review tour", "tour_id", *input.TourID, "error", err)
			return nil, apperrors.Internal("Failed to create review", err)
		}
	}

	review := &model.Review{
		TourID:           input.TourID,
		CustomerName:     input.CustomerName,
		CustomerInitials: input.CustomerInitials,
		CustomerLocation: input.CustomerLocation,
		Rating:           input.Rating,
		Comment:          input.Comment,
	}

	err := s.tx.ExecuteTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, review); err != nil {
			return err
		}
		if review.TourID == nil {
			return nil
		}
		return s.refreshTourRating(ctx, *review.TourID)
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create review", "tour_id", input.TourID, "review_id", review.ID, "error", err)
		return nil, apperrors.Internal("Failed to create review", err)
	}

	s.cfg.Log.Info("Review created successfully", "id", review.ID, "tour_id", review.TourID, "rating", review.Rating)

	key := review.ID
	if review.TourID != nil {
		key = *review.TourID
	}
	s.publisher.Publish(ctx, events.Event{Type: events.ReviewCreated, Key: key, Payload: review})

	return review, nil
}

func (s *reviewService) refreshTourRating(ctx context.Context, tourID string) error {
	stats, err := s.repo.RatingStats(ctx, tourID)
	if err != nil {
		return err
	}
	return s.tours.UpdateRating(ctx, tourID, model.AverageRating(stats.Sum, stats.Count), stats.Count)
}

func (s *reviewService) GetLatest(ctx context.Context) ([]*model.Review, error) {
	reviews, err := s.repo.FindLatest(ctx, config.LatestReviewsLimit)
	if err != nil {
		s.cfg.Log.Error("Failed to fetch latest reviews", "error", err)
		return nil, apperrors.Internal("Failed to fetch reviews", err)
	}
	return reviews, nil
}

// GetByTourSlug answers 404 for an unknown tour instead of an empty list.
func (s *reviewService) GetByTourSlug(ctx context.Context, slug string) ([]*model.Review, error) {
	tour, err := s.tours.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, tourserrors.ErrNotFound) {
			return nil, apperrors.NotFound("Tour")
		}
		s.cfg.Log.Error("Failed to fetch tour", "slug", slug, "error", err)
		return nil, apperrors.Internal("Failed to fetch reviews", err)
	}

	reviews, err := s.repo.FindByTourID(ctx, tour.ID)
	if err != nil {
		s.cfg.Log.Error("Failed to fetch tour reviews", "tour_id", tour.ID, "error", err)
		return nil, apperrors.Internal("Failed to fetch reviews", err)
	}
	return reviews, nil
}

func (s *reviewService) sanitize(input *model.ReviewInput) {
	input.TourID = sanitizer.TrimAndNormalizePtr(input.TourID)
	input.CustomerName = sanitizer.TrimAndNormalize(input.CustomerName)
	input.CustomerInitials = sanitizer.NormalizeInitials(input.CustomerInitials)
	input.CustomerLocation = sanitizer.TrimAndNormalize(input.CustomerLocation)
	input.Comment = strings.TrimSpace(input.Comment)
}

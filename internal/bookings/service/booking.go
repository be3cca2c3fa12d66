package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	bookingserrors "tramondo/internal/bookings/errors"
	"tramondo/internal/bookings/repository"
	tourserrors "tramondo/internal/tours/errors"
	userserrors "tramondo/internal/users/errors"
	"tramondo/pkg/config"
	apperrors "tramondo/pkg/errors"
	"tramondo/pkg/events"
	"tramondo/pkg/model"
	"tramondo/pkg/sanitizer"
	"tramondo/pkg/validator"
)

type BookingService interface {
	Create(ctx context.Context, input *model.BookingInput) (*model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetByUserID(ctx context.Context, userID string) ([]*model.Booking, error)
}

type TourFinder interface {
	FindByID(ctx context.Context, id string) (*model.Tour, error)
}

type UserFinder interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	tours     TourFinder
	users     UserFinder
	publisher events.Publisher
	validator *validator.Validator
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	tours TourFinder,
	users UserFinder,
	publisher events.Publisher,
	validator *validator.Validator,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		tours:     tours,
		users:     users,
		publisher: publisher,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, input *model.BookingInput) (*model.Booking, error) {
	s.applyDefaults(input)
	s.sanitize(input)

	if err := s.validator.Validate(input); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "tour_id", input.TourID, "error", err)
		return nil, validator.AsAppError("Invalid booking data", err)
	}

	startDate, endDate, err := parseDates(input)
	if err != nil {
		s.cfg.Log.Warn("Booking dates rejected", "tour_id", input.TourID, "error", err)
		return nil, apperrors.Validation("Invalid booking data", map[string]any{
			"endDate": "must not be before startDate",
		})
	}

	if err := s.verifyReferences(ctx, input); err != nil {
		return nil, err
	}

	booking := &model.Booking{
		TourID:          input.TourID,
		UserID:          input.UserID,
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		NumberOfPeople:  input.NumberOfPeople,
		StartDate:       startDate,
		EndDate:         endDate,
		TotalPrice:      *input.TotalPrice,
		Status:          input.Status,
		SpecialRequests: input.SpecialRequests,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "tour_id", booking.TourID, "error", err)
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"tour_id", booking.TourID,
		"number_of_people", booking.NumberOfPeople,
		"start_date", booking.StartDate,
	)

	s.publisher.Publish(ctx, events.Event{Type: events.BookingCreated, Key: booking.ID, Payload: booking})
	return booking, nil
}

// verifyReferences checks that the tour exists and can take the party, and
// that a given user exists.
func (s *bookingService) verifyReferences(ctx context.Context, input *model.BookingInput) error {
	tour, err := s.tours.FindByID(ctx, input.TourID)
	if err != nil {
		if errors.Is(err, tourserrors.ErrNotFound) {
			s.cfg.Log.Warn("Booking references unknown tour", "tour_id", input.TourID)
			return apperrors.Validation("Invalid booking data", map[string]any{
				"tourId": "does not reference an existing tour",
			})
		}
		s.cfg.Log.Error("Failed to verify booking tour", "tour_id", input.TourID, "error", err)
		return apperrors.Internal("Failed to create booking", err)
	}

	if tour.MaxGroupSize != nil && input.NumberOfPeople > *tour.MaxGroupSize {
		s.cfg.Log.Warn("Booking exceeds group size",
			"tour_id", tour.ID,
			"number_of_people", input.NumberOfPeople,
			"max_group_size", *tour.MaxGroupSize,
		)
		return apperrors.Validation("Invalid booking data", map[string]any{
			"numberOfPeople": fmt.Sprintf("must be at most %d", *tour.MaxGroupSize),
		})
	}

	if input.UserID == nil {
		return nil
	}
	if _, err := s.users.FindByID(ctx, *input.UserID); err != nil {
		if errors.Is(err, userserrors.ErrNotFound) {
			s.cfg.Log.Warn("Booking references unknown user", "user_id", *input.UserID)
			return apperrors.Validation("Invalid booking data", map[string]any{
				"userId": "does not reference an existing user",
			})
		}
		s.cfg.Log.Error("Failed to verify booking user", "user_id", *input.UserID, "error", err)
		return apperrors.Internal("Failed to create booking", err)
	}
	return nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFound("Booking")
		}
		s.cfg.Log.Error("Failed to fetch booking", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to fetch booking", err)
	}
	return booking, nil
}

func (s *bookingService) GetByUserID(ctx context.Context, userID string) ([]*model.Booking, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, userserrors.ErrNotFound) {
			return nil, apperrors.NotFound("User")
		}
		s.cfg.Log.Error("Failed to fetch user", "user_id", userID, "error", err)
		return nil, apperrors.Internal("Failed to fetch bookings", err)
	}

	bookings, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		s.cfg.Log.Error("Failed to fetch user bookings", "user_id", userID, "error", err)
		return nil, apperrors.Internal("Failed to fetch bookings", err)
	}
	return bookings, nil
}

func (s *bookingService) applyDefaults(input *model.BookingInput) {
	if strings.TrimSpace(input.Status) == "" {
		input.Status = config.Pending
	}
}

func (s *bookingService) sanitize(input *model.BookingInput) {
	input.TourID = strings.TrimSpace(input.TourID)
	input.UserID = sanitizer.TrimAndNormalizePtr(input.UserID)
	input.CustomerName = sanitizer.TrimAndNormalize(input.CustomerName)
	input.CustomerEmail = sanitizer.NormalizeEmail(input.CustomerEmail)
	input.CustomerPhone = sanitizer.NormalizePhonePtr(input.CustomerPhone)
	input.StartDate = strings.TrimSpace(input.StartDate)
	input.EndDate = sanitizer.TrimAndNormalizePtr(input.EndDate)
	input.Status = strings.ToLower(strings.TrimSpace(input.Status))
	input.SpecialRequests = sanitizer.TrimPtr(input.SpecialRequests)
}

// parseDates runs after validation, so both dates are known to parse.
func parseDates(input *model.BookingInput) (time.Time, *time.Time, error) {
	start, err := model.ParseTimestamp(input.StartDate)
	if err != nil {
		return time.Time{}, nil, err
	}
	if input.EndDate == nil {
		return start, nil, nil
	}

	end, err := model.ParseTimestamp(*input.EndDate)
	if err != nil {
		return time.Time{}, nil, err
	}
	if end.Before(start) {
		return time.Time{}, nil, fmt.Errorf("%w: %s < %s", bookingserrors.ErrInvalidTimeRange, *input.EndDate, input.StartDate)
	}
	return start, &end, nil
}

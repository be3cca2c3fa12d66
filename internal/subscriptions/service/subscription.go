package service

import (
	"context"
	"errors"

	subscriptionserrors "tramondo/internal/subscriptions/errors"
	"tramondo/internal/subscriptions/repository"
	"tramondo/pkg/config"
	apperrors "tramondo/pkg/errors"
	"tramondo/pkg/events"
	"tramondo/pkg/model"
	"tramondo/pkg/sanitizer"
	"tramondo/pkg/validator"
)

const alreadySubscribed = "Email already subscribed"

type SubscriptionService interface {
	Subscribe(ctx context.Context, input *model.SubscriptionInput) (*model.EmailSubscription, error)
}

type subscriptionService struct {
	repo      repository.SubscriptionRepository
	publisher events.Publisher
	validator *validator.Validator
	cfg       *config.Config
}

func NewSubscriptionService(
	repo repository.SubscriptionRepository,
	publisher events.Publisher,
	validator *validator.Validator,
	cfg *config.Config,
) SubscriptionService {
	return &subscriptionService{
		repo:      repo,
		publisher: publisher,
		validator: validator,
		cfg:       cfg,
	}
}

// Subscribe rejects an address that already has a record before inserting.
// The unique index catches the race between two first-time subscribers.
func (s *subscriptionService) Subscribe(ctx context.Context, input *model.SubscriptionInput) (*model.EmailSubscription, error) {
	input.Email = sanitizer.NormalizeEmail(input.Email)

	if err := s.validator.Validate(input); err != nil {
		s.cfg.Log.Warn("Subscription validation failed", "error", err)
		return nil, validator.AsAppError("Invalid email address", err)
	}

	existing, err := s.repo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil && existing != nil:
		s.cfg.Log.Warn("Email already subscribed", "email", input.Email)
		return nil, apperrors.Conflict(alreadySubscribed)
	case err != nil && !errors.Is(err, subscriptionserrors.ErrNotFound):
		s.cfg.Log.Error("Failed to check subscription", "email", input.Email, "error", err)
		return nil, apperrors.Internal("Failed to subscribe", err)
	}

	subscription := &model.EmailSubscription{Email: input.Email}
	if err := s.repo.Create(ctx, subscription); err != nil {
		if errors.Is(err, subscriptionserrors.ErrDuplicate) {
			s.cfg.Log.Warn("Email already subscribed", "email", input.Email)
			return nil, apperrors.Conflict(alreadySubscribed)
		}
		s.cfg.Log.Error("Failed to create subscription", "email", input.Email, "error", err)
		return nil, apperrors.Internal("Failed to subscribe", err)
	}

	s.cfg.Log.Info("Subscription created successfully", "id", subscription.ID)
	s.publisher.Publish(ctx, events.Event{Type: events.SubscriptionCreated, Key: subscription.ID, Payload: subscription})
	return subscription, nil
}

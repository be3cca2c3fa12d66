package service

import (
	"context"
	"errors"

	userserrors "tramondo/internal/users/errors"
	"tramondo/internal/users/repository"
	"tramondo/pkg/config"
	apperrors "tramondo/pkg/errors"
	"tramondo/pkg/model"
	"tramondo/pkg/sanitizer"
	"tramondo/pkg/validator"
)

type UserService interface {
	Create(ctx context.Context, input *model.UserInput) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

type userService struct {
	repo      repository.UserRepository
	validator *validator.Validator
	cfg       *config.Config
}

func NewUserService(
	repo repository.UserRepository,
	validator *validator.Validator,
	cfg *config.Config,
) UserService {
	return &userService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

// Create stores the password exactly as given.
func (s *userService) Create(ctx context.Context, input *model.UserInput) (*model.User, error) {
	input.Username = sanitizer.TrimAndNormalize(input.Username)
	if input.Email != nil {
		email := sanitizer.NormalizeEmail(*input.Email)
		input.Email = &email
		if email == "" {
			input.Email = nil
		}
	}

	if err := s.validator.Validate(input); err != nil {
		s.cfg.Log.Warn("User validation failed", "username", input.Username, "error", err)
		return nil, validator.AsAppError("Invalid user data", err)
	}

	user := &model.User{
		Username: input.Username,
		Password: input.Password,
		Email:    input.Email,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, userserrors.ErrDuplicate) {
			s.cfg.Log.Warn("Username already taken", "username", user.Username)
			return nil, apperrors.Conflict("Username already exists")
		}
		s.cfg.Log.Error("Failed to create user", "username", user.Username, "error", err)
		return nil, apperrors.Internal("Failed to create user", err)
	}

	s.cfg.Log.Info("User created successfully", "id", user.ID, "username", user.Username)
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, apperrors.NotFound("User")
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.lookupError(err, "id", id)
	}
	return user, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	username = sanitizer.TrimAndNormalize(username)
	if username == "" {
		return nil, apperrors.NotFound("User")
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, s.lookupError(err, "username", username)
	}
	return user, nil
}

func (s *userService) lookupError(err error, key, value string) error {
	if errors.Is(err, userserrors.ErrNotFound) {
		return apperrors.NotFound("User")
	}
	s.cfg.Log.Error("Failed to fetch user", key, value, "error", err)
	return apperrors.Internal("Failed to fetch user", err)
}

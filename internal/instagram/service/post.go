package service

import (
	"context"

	"tramondo/internal/instagram/repository"
	"tramondo/pkg/config"
	apperrors "tramondo/pkg/errors"
	"tramondo/pkg/model"
	"tramondo/pkg/sanitizer"
	"tramondo/pkg/validator"
)

type PostService interface {
	Create(ctx context.Context, input *model.InstagramPostInput) (*model.InstagramPost, error)
	GetActive(ctx context.Context) ([]*model.InstagramPost, error)
}

type postService struct {
	repo      repository.PostRepository
	validator *validator.Validator
	cfg       *config.Config
}

func NewPostService(
	repo repository.PostRepository,
	validator *validator.Validator,
	cfg *config.Config,
) PostService {
	return &postService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *postService) Create(ctx context.Context, input *model.InstagramPostInput) (*model.InstagramPost, error) {
	input.ImageURL = sanitizer.NormalizeURL(input.ImageURL)
	input.PostURL = sanitizer.NormalizeURLPtr(input.PostURL)
	input.Caption = sanitizer.TrimPtr(input.Caption)

	if err := s.validator.Validate(input); err != nil {
		s.cfg.Log.Warn("Instagram post validation failed", "error", err)
		return nil, validator.AsAppError("Invalid instagram post data", err)
	}

	post := &model.InstagramPost{
		ImageURL: input.ImageURL,
		PostURL:  input.PostURL,
		Caption:  input.Caption,
		Order:    input.Order,
		Active:   input.Active == nil || *input.Active,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		s.cfg.Log.Error("Failed to create instagram post", "error", err)
		return nil, apperrors.Internal("Failed to create instagram post", err)
	}

	s.cfg.Log.Info("Instagram post created successfully", "id", post.ID, "order", post.Order, "active", post.Active)
	return post, nil
}

// GetActive lists visible posts in display order.
func (s *postService) GetActive(ctx context.Context) ([]*model.InstagramPost, error) {
	posts, err := s.repo.FindActive(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to fetch instagram posts", "error", err)
		return nil, apperrors.Internal("Failed to fetch instagram posts", err)
	}
	return posts, nil
}

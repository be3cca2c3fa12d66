// Package seed loads the sample catalogue: destinations, tours, reviews,
// instagram posts and a demo user. Reviews go through the review service so
// every tour ends up with a real rating and review count.
package seed

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	destinationsrepo "tramondo/internal/destinations/repository"
	instagramrepo "tramondo/internal/instagram/repository"
	reviewsrepo "tramondo/internal/reviews/repository"
	toursrepo "tramondo/internal/tours/repository"
	apperrors "tramondo/pkg/errors"
	"tramondo/pkg/logger"
	"tramondo/pkg/model"
)

// ClearedCollections are emptied before seeding. Users and bookings are kept.
var ClearedCollections = []string{
	reviewsrepo.CollectionName,
	toursrepo.CollectionName,
	destinationsrepo.CollectionName,
	instagramrepo.CollectionName,
}

type DestinationCreator interface {
	Create(ctx context.Context, input *model.DestinationInput) (*model.Destination, error)
}

type TourCreator interface {
	Create(ctx context.Context, input *model.TourInput) (*model.Tour, error)
}

type ReviewCreator interface {
	Create(ctx context.Context, input *model.ReviewInput) (*model.Review, error)
}

type PostCreator interface {
	Create(ctx context.Context, input *model.InstagramPostInput) (*model.InstagramPost, error)
}

type UserStore interface {
	Create(ctx context.Context, input *model.UserInput) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

type Seeder struct {
	Destinations DestinationCreator
	Tours        TourCreator
	Reviews      ReviewCreator
	Posts        PostCreator
	Users        UserStore
	Log          *logger.Logger
}

func Clear(ctx context.Context, db *mongo.Database, log *logger.Logger) error {
	for _, name := range ClearedCollections {
		result, err := db.Collection(name).DeleteMany(ctx, bson.M{})
		if err != nil {
			return fmt.Errorf("failed to clear %s: %w", name, err)
		}
		log.Info("Cleared collection", "collection", name, "deleted", result.DeletedCount)
	}
	return nil
}

func (s *Seeder) Run(ctx context.Context) error {
	destinationIDs := map[string]string{}
	for _, input := range destinations() {
		d, err := s.Destinations.Create(ctx, input)
		if err != nil {
			return fmt.Errorf("destination %s: %w", input.Slug, err)
		}
		destinationIDs[d.Slug] = d.ID
	}
	s.Log.Info("Seeded destinations", "count", len(destinationIDs))

	tourIDs := map[string]string{}
	for _, ts := range tours() {
		id, ok := destinationIDs[ts.destination]
		if !ok {
			return fmt.Errorf("tour %s: unknown destination %s", ts.input.Slug, ts.destination)
		}
		ts.input.DestinationID = &id

		t, err := s.Tours.Create(ctx, ts.input)
		if err != nil {
			return fmt.Errorf("tour %s: %w", ts.input.Slug, err)
		}
		tourIDs[t.Slug] = t.ID
	}
	s.Log.Info("Seeded tours", "count", len(tourIDs))

	seeded := 0
	for _, rs := range reviews() {
		id, ok := tourIDs[rs.tour]
		if !ok {
			return fmt.Errorf("review by %s: unknown tour %s", rs.input.CustomerName, rs.tour)
		}
		rs.input.TourID = &id

		if _, err := s.Reviews.Create(ctx, rs.input); err != nil {
			return fmt.Errorf("review by %s: %w", rs.input.CustomerName, err)
		}
		seeded++
	}
	s.Log.Info("Seeded reviews", "count", seeded)

	posts := instagramPosts()
	for _, input := range posts {
		if _, err := s.Posts.Create(ctx, input); err != nil {
			return fmt.Errorf("instagram post %d: %w", input.Order, err)
		}
	}
	s.Log.Info("Seeded instagram posts", "count", len(posts))

	return s.ensureDemoUser(ctx)
}

func (s *Seeder) ensureDemoUser(ctx context.Context) error {
	input := demoUser()

	if _, err := s.Users.GetByUsername(ctx, input.Username); err == nil {
		s.Log.Info("Demo user already exists", "username", input.Username)
		return nil
	} else if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		return fmt.Errorf("demo user: %w", err)
	}

	user, err := s.Users.Create(ctx, input)
	if err != nil {
		return fmt.Errorf("demo user: %w", err)
	}
	s.Log.Info("Seeded demo user", "id", user.ID, "username", user.Username)
	return nil
}

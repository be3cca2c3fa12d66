package main

import (
	"context"
	"time"

	destinationsrepo "tramondo/internal/destinations/repository"
	destinationsservice "tramondo/internal/destinations/service"
	instagramrepo "tramondo/internal/instagram/repository"
	instagramservice "tramondo/internal/instagram/service"
	reviewsrepo "tramondo/internal/reviews/repository"
	reviewsservice "tramondo/internal/reviews/service"
	"tramondo/internal/seed"
	toursrepo "tramondo/internal/tours/repository"
	toursservice "tramondo/internal/tours/service"
	usersrepo "tramondo/internal/users/repository"
	usersservice "tramondo/internal/users/service"
	"tramondo/pkg/config"
	mongodb "tramondo/pkg/db/mongo"
	"tramondo/pkg/events"
	"tramondo/pkg/validator"
)

const JobName = "tramondo-seed"

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	cfg := config.Load(JobName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting seed job", "database", cfg.MongoDatabaseName)

	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	if err := seed.Clear(ctx, db, cfg.Log); err != nil {
		cfg.GracefulShutdown()
		cfg.Log.Fatal("Failed to clear collections", "error", err)
	}

	if err := newSeeder(cfg).Run(ctx); err != nil {
		cfg.GracefulShutdown()
		cfg.Log.Fatal("Seed failed", "error", err)
	}
	cfg.Log.Info("Database seeded successfully")
}

func newSeeder(cfg *config.Config) *seed.Seeder {
	v := validator.New()

	destinationRepo := destinationsrepo.NewMongoDestinationRepository(cfg)
	tourRepo := toursrepo.NewMongoTourRepository(cfg)
	tx := mongodb.SelectTransactionManager(cfg.Client.Mongo, cfg.ReviewAggregateInTransaction)

	return &seed.Seeder{
		Destinations: destinationsservice.NewDestinationService(destinationRepo, v, cfg),
		Tours:        toursservice.NewTourService(tourRepo, destinationRepo, v, cfg),
		Reviews:      reviewsservice.NewReviewService(reviewsrepo.NewMongoReviewRepository(cfg), tourRepo, tx, events.Noop{}, v, cfg),
		Posts:        instagramservice.NewPostService(instagramrepo.NewMongoPostRepository(cfg), v, cfg),
		Users:        usersservice.NewUserService(usersrepo.NewMongoUserRepository(cfg), v, cfg),
		Log:          cfg.Log,
	}
}

package main

import (
	bookingshandler "tramondo/internal/bookings/handler"
	bookingsrepo "tramondo/internal/bookings/repository"
	bookingsservice "tramondo/internal/bookings/service"
	destinationshandler "tramondo/internal/destinations/handler"
	destinationsrepo "tramondo/internal/destinations/repository"
	destinationsservice "tramondo/internal/destinations/service"
	instagramhandler "tramondo/internal/instagram/handler"
	instagramrepo "tramondo/internal/instagram/repository"
	instagramservice "tramondo/internal/instagram/service"
	reviewshandler "tramondo/internal/reviews/handler"
	reviewsrepo "tramondo/internal/reviews/repository"
	reviewsservice "tramondo/internal/reviews/service"
	subscriptionshandler "tramondo/internal/subscriptions/handler"
	subscriptionsrepo "tramondo/internal/subscriptions/repository"
	subscriptionsservice "tramondo/internal/subscriptions/service"
	tourshandler "tramondo/internal/tours/handler"
	toursrepo "tramondo/internal/tours/repository"
	toursservice "tramondo/internal/tours/service"
	usersrepo "tramondo/internal/users/repository"
	"tramondo/pkg/app"
	"tramondo/pkg/config"
	"tramondo/pkg/contracts"
	mongodb "tramondo/pkg/db/mongo"
	"tramondo/pkg/events"
	"tramondo/pkg/validator"
)

const ServiceName = "tramondo-api"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	publisher, closePublisher, err := events.FromConfig(cfg.Kafka, ServiceName, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize event publisher", "error", err)
	}

	cfg.Log.Info("Starting Tramondo API")
	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(cfg.Client.Mongo, initHandlers(cfg, publisher)...)
	serverApp.OnShutdown(func() {
		if err := closePublisher(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	})
	serverApp.OnShutdown(cfg.GracefulShutdown)
	serverApp.Run()
}

func initHandlers(cfg *config.Config, publisher events.Publisher) []contracts.Handler {
	v := validator.New()

	userRepo := usersrepo.NewMongoUserRepository(cfg)
	destinationRepo := destinationsrepo.NewMongoDestinationRepository(cfg)
	tourRepo := toursrepo.NewMongoTourRepository(cfg)
	reviewRepo := reviewsrepo.NewMongoReviewRepository(cfg)
	bookingRepo := bookingsrepo.NewMongoBookingRepository(cfg)
	subscriptionRepo := subscriptionsrepo.NewMongoSubscriptionRepository(cfg)
	postRepo := instagramrepo.NewMongoPostRepository(cfg)

	tx := mongodb.SelectTransactionManager(cfg.Client.Mongo, cfg.ReviewAggregateInTransaction)

	destinationService := destinationsservice.NewDestinationService(destinationRepo, v, cfg)
	tourService := toursservice.NewTourService(tourRepo, destinationRepo, v, cfg)
	reviewService := reviewsservice.NewReviewService(reviewRepo, tourRepo, tx, publisher, v, cfg)
	bookingService := bookingsservice.NewBookingService(bookingRepo, tourRepo, userRepo, publisher, v, cfg)
	subscriptionService := subscriptionsservice.NewSubscriptionService(subscriptionRepo, publisher, v, cfg)
	postService := instagramservice.NewPostService(postRepo, v, cfg)

	cfg.Log.Info("Services initialized",
		"database", cfg.MongoDatabaseName,
		"review_aggregate_in_transaction", cfg.ReviewAggregateInTransaction,
	)

	return []contracts.Handler{
		destinationshandler.NewDestinationHandler(destinationService, tourService, cfg.Log),
		tourshandler.NewTourHandler(tourService, cfg.Log),
		reviewshandler.NewReviewHandler(reviewService, cfg.Log),
		bookingshandler.NewBookingHandler(bookingService, cfg.Log),
		subscriptionshandler.NewSubscriptionHandler(subscriptionService, cfg.Log),
		instagramhandler.NewPostHandler(postService, cfg.Log),
	}
}

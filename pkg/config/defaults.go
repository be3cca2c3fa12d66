package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "tramondo"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "5000"
	DefaultLogLevel = "info"

	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultReviewAggregateInTransaction = false

	DefaultEnvFile = ".env"
)

const (
	LatestReviewsLimit = 12
	FilterAll          = "all"
)

type ActivityType = string

const (
	ActivityTours      ActivityType = "tours"
	ActivityCarRentals ActivityType = "car-rentals"
	ActivityCruises    ActivityType = "cruises"
	ActivityHotels     ActivityType = "hotels"
)

var ActivityTypes = []ActivityType{ActivityTours, ActivityCarRentals, ActivityCruises, ActivityHotels}

type BookingStatus = string

const (
	Pending   BookingStatus = "pending"
	Confirmed BookingStatus = "confirmed"
	Cancelled BookingStatus = "cancelled"
)

var BookingStatuses = []BookingStatus{Pending, Confirmed, Cancelled}

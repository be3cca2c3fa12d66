package model

import "time"

type Tour struct {
	ID               string    `json:"id" bson:"_id"`
	Title            string    `json:"title" bson:"title"`
	Slug             string    `json:"slug" bson:"slug"`
	Description      string    `json:"description" bson:"description"`
	ShortDescription *string   `json:"shortDescription" bson:"short_description,omitempty"`
	Price            Money     `json:"price" bson:"price"`
	Duration         int       `json:"duration" bson:"duration"`
	Location         string    `json:"location" bson:"location"`
	DestinationID    *string   `json:"destinationId" bson:"destination_id,omitempty"`
	ImageURL         string    `json:"imageUrl" bson:"image_url"`
	ActivityType     string    `json:"activityType" bson:"activity_type"`
	Rating           Rating    `json:"rating" bson:"rating"`
	ReviewCount      int       `json:"reviewCount" bson:"review_count"`
	MaxGroupSize     *int      `json:"maxGroupSize" bson:"max_group_size,omitempty"`
	Featured         bool      `json:"featured" bson:"featured"`
	Badge            *string   `json:"badge" bson:"badge,omitempty"`
	Itinerary        *string   `json:"itinerary" bson:"itinerary,omitempty"`
	Included         []string  `json:"included" bson:"included,omitempty"`
	Excluded         []string  `json:"excluded" bson:"excluded,omitempty"`
	CreatedAt        time.Time `json:"createdAt" bson:"created_at"`
}

// TourInput is the client-settable part of a tour. Rating and review count
// are derived from reviews and have no field here.
type TourInput struct {
	Title            string   `json:"title" validate:"required,max=200"`
	Slug             string   `json:"slug" validate:"required,slug"`
	Description      string   `json:"description" validate:"required"`
	ShortDescription *string  `json:"shortDescription" validate:"omitempty"`
	Price            *Money   `json:"price" validate:"required,min=0"`
	Duration         int      `json:"duration" validate:"required,min=1"`
	Location         string   `json:"location" validate:"required,max=200"`
	DestinationID    *string  `json:"destinationId" validate:"omitempty"`
	ImageURL         string   `json:"imageUrl" validate:"required"`
	ActivityType     string   `json:"activityType" validate:"required,activity_type"`
	MaxGroupSize     *int     `json:"maxGroupSize" validate:"omitempty,min=1"`
	Featured         bool     `json:"featured"`
	Badge            *string  `json:"badge" validate:"omitempty,max=50"`
	Itinerary        *string  `json:"itinerary" validate:"omitempty"`
	Included         []string `json:"included" validate:"omitempty"`
	Excluded         []string `json:"excluded" validate:"omitempty"`
}

// TourFilter is what a client asks for on GET /api/tours. Destination is a
// slug; "all" or empty disables a field.
type TourFilter struct {
	ActivityType string
	Destination  string
	Search       string
}

// TourQuery is a TourFilter with the destination slug already resolved.
type TourQuery struct {
	ActivityType string
	// DestinationID restricts to one destination when non-empty.
	DestinationID string
	// DestinationMissing is set when a destination was requested but does
	// not exist; such a query matches nothing.
	DestinationMissing bool
	Search             string
}

package model

import "time"

type Review struct {
	ID               string    `json:"id" bson:"_id"`
	TourID           *string   `json:"tourId" bson:"tour_id,omitempty"`
	CustomerName     string    `json:"customerName" bson:"customer_name"`
	CustomerInitials string    `json:"customerInitials" bson:"customer_initials"`
	CustomerLocation string    `json:"customerLocation" bson:"customer_location"`
	Rating           int       `json:"rating" bson:"rating"`
	Comment          string    `json:"comment" bson:"comment"`
	CreatedAt        time.Time `json:"createdAt" bson:"created_at"`
}

type ReviewInput struct {
	TourID           *string `json:"tourId" validate:"required"`
	CustomerName     string  `json:"customerName" validate:"required,max=100"`
	CustomerInitials string  `json:"customerInitials" validate:"required,max=5"`
	CustomerLocation string  `json:"customerLocation" validate:"required,max=100"`
	Rating           int     `json:"rating" validate:"required,min=1,max=5"`
	Comment          string  `json:"comment" validate:"required"`
}

// RatingStats is the authoritative count and sum of a tour's review ratings.
type RatingStats struct {
	Count int64 `bson:"count"`
	Sum   int64 `bson:"sum"`
}

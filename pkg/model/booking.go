package model

import "time"

type Booking struct {
	ID              string     `json:"id" bson:"_id"`
	TourID          string     `json:"tourId" bson:"tour_id"`
	UserID          *string    `json:"userId" bson:"user_id,omitempty"`
	CustomerName    string     `json:"customerName" bson:"customer_name"`
	CustomerEmail   string     `json:"customerEmail" bson:"customer_email"`
	CustomerPhone   *string    `json:"customerPhone" bson:"customer_phone,omitempty"`
	NumberOfPeople  int        `json:"numberOfPeople" bson:"number_of_people"`
	StartDate       time.Time  `json:"startDate" bson:"start_date"`
	EndDate         *time.Time `json:"endDate" bson:"end_date,omitempty"`
	TotalPrice      Money      `json:"totalPrice" bson:"total_price"`
	Status          string     `json:"status" bson:"status"`
	SpecialRequests *string    `json:"specialRequests" bson:"special_requests,omitempty"`
	CreatedAt       time.Time  `json:"createdAt" bson:"created_at"`
}

// BookingInput carries dates as text; they are parsed into timestamps when
// the booking is created.
type BookingInput struct {
	TourID          string  `json:"tourId" validate:"required"`
	UserID          *string `json:"userId" validate:"omitempty"`
	CustomerName    string  `json:"customerName" validate:"required,max=100"`
	CustomerEmail   string  `json:"customerEmail" validate:"required,email"`
	CustomerPhone   *string `json:"customerPhone" validate:"omitempty,max=30"`
	NumberOfPeople  int     `json:"numberOfPeople" validate:"required,min=1"`
	StartDate       string  `json:"startDate" validate:"required,timestamp"`
	EndDate         *string `json:"endDate" validate:"omitempty,timestamp"`
	TotalPrice      *Money  `json:"totalPrice" validate:"required,min=0"`
	Status          string  `json:"status" validate:"omitempty,booking_status"`
	SpecialRequests *string `json:"specialRequests" validate:"omitempty,max=1000"`
}

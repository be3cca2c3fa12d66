package model

import "time"

type EmailSubscription struct {
	ID         string    `json:"id" bson:"_id"`
	Email      string    `json:"email" bson:"email"`
	Subscribed bool      `json:"subscribed" bson:"subscribed"`
	CreatedAt  time.Time `json:"createdAt" bson:"created_at"`
}

type SubscriptionInput struct {
	Email string `json:"email" validate:"required,email"`
}

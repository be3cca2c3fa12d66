package model

import "time"

type User struct {
	ID        string    `json:"id" bson:"_id"`
	Username  string    `json:"username" bson:"username"`
	Password  string    `json:"-" bson:"password"`
	Email     *string   `json:"email" bson:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

type UserInput struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Password string  `json:"password" validate:"required,min=1"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

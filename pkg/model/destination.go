package model

type Destination struct {
	ID          string  `json:"id" bson:"_id"`
	Name        string  `json:"name" bson:"name"`
	Slug        string  `json:"slug" bson:"slug"`
	Description *string `json:"description" bson:"description,omitempty"`
	ImageURL    *string `json:"imageUrl" bson:"image_url,omitempty"`
	Country     *string `json:"country" bson:"country,omitempty"`
	Featured    bool    `json:"featured" bson:"featured"`
}

type DestinationInput struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Slug        string  `json:"slug" validate:"required,slug"`
	Description *string `json:"description" validate:"omitempty"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty"`
	Country     *string `json:"country" validate:"omitempty,max=100"`
	Featured    bool    `json:"featured"`
}

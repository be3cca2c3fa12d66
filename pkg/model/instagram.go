package model

type InstagramPost struct {
	ID       string  `json:"id" bson:"_id"`
	ImageURL string  `json:"imageUrl" bson:"image_url"`
	PostURL  *string `json:"postUrl" bson:"post_url,omitempty"`
	Caption  *string `json:"caption" bson:"caption,omitempty"`
	Order    int     `json:"order" bson:"order"`
	Active   bool    `json:"active" bson:"active"`
}

// InstagramPostInput defaults Active to true when the field is omitted.
type InstagramPostInput struct {
	ImageURL string  `json:"imageUrl" validate:"required"`
	PostURL  *string `json:"postUrl" validate:"omitempty"`
	Caption  *string `json:"caption" validate:"omitempty,max=500"`
	Order    int     `json:"order" validate:"min=0"`
	Active   *bool   `json:"active"`
}

package validators

import (
	"go.mongodb.org/mongo-driver/bson"

	"tramondo/pkg/config"
)

var DestinationValidator = schema(
	[]string{"_id", "name", "slug", "featured"},
	bson.M{
		"_id":         id,
		"name":        text(1, 200),
		"slug":        slug,
		"description": text(0, 0),
		"image_url":   text(1, 0),
		"country":     text(1, 100),
		"featured":    bson.M{"bsonType": "bool"},
	},
)

var TourValidator = schema(
	[]string{
		"_id", "title", "slug", "description", "price", "duration", "location",
		"image_url", "activity_type", "rating", "review_count", "featured", "created_at",
	},
	bson.M{
		"_id":               id,
		"title":             text(1, 200),
		"slug":              slug,
		"description":       text(1, 0),
		"short_description": text(0, 0),
		"price":             decimal,
		"duration":          bson.M{"bsonType": integer, "minimum": 1},
		"location":          text(1, 200),
		"destination_id":    id,
		"image_url":         text(1, 0),
		"activity_type": bson.M{
			"bsonType": "string",
			"enum":     config.ActivityTypes,
		},
		"rating":         decimal,
		"review_count":   bson.M{"bsonType": integer, "minimum": 0},
		"max_group_size": bson.M{"bsonType": integer, "minimum": 1},
		"featured":       bson.M{"bsonType": "bool"},
		"badge":          text(1, 50),
		"itinerary":      text(0, 0),
		"included":       bson.M{"bsonType": "array", "items": bson.M{"bsonType": "string"}},
		"excluded":       bson.M{"bsonType": "array", "items": bson.M{"bsonType": "string"}},
		"created_at":     date,
	},
)

var ReviewValidator = schema(
	[]string{"_id", "customer_name", "customer_initials", "customer_location", "rating", "comment", "created_at"},
	bson.M{
		"_id":               id,
		"tour_id":           id,
		"customer_name":     text(1, 100),
		"customer_initials": text(1, 5),
		"customer_location": text(1, 100),
		"rating":            bson.M{"bsonType": integer, "minimum": 1, "maximum": 5},
		"comment":           text(1, 0),
		"created_at":        date,
	},
)

var InstagramPostValidator = schema(
	[]string{"_id", "image_url", "order", "active"},
	bson.M{
		"_id":       id,
		"image_url": text(1, 0),
		"post_url":  text(1, 0),
		"caption":   text(0, 500),
		"order":     bson.M{"bsonType": integer, "minimum": 0},
		"active":    bson.M{"bsonType": "bool"},
	},
)

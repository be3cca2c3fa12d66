package validators

import (
	"go.mongodb.org/mongo-driver/bson"

	"tramondo/pkg/config"
)

var UserValidator = schema(
	[]string{"_id", "username", "password", "created_at"},
	bson.M{
		"_id":        id,
		"username":   text(3, 50),
		"password":   text(1, 0),
		"email":      text(3, 254),
		"created_at": date,
	},
)

var BookingValidator = schema(
	[]string{
		"_id", "tour_id", "customer_name", "customer_email", "number_of_people",
		"start_date", "total_price", "status", "created_at",
	},
	bson.M{
		"_id":              id,
		"tour_id":          id,
		"user_id":          id,
		"customer_name":    text(1, 100),
		"customer_email":   text(3, 254),
		"customer_phone":   text(1, 30),
		"number_of_people": bson.M{"bsonType": integer, "minimum": 1},
		"start_date":       date,
		"end_date":         date,
		"total_price":      decimal,
		"status": bson.M{
			"bsonType": "string",
			"enum":     config.BookingStatuses,
		},
		"special_requests": text(0, 1000),
		"created_at":       date,
	},
)

var SubscriptionValidator = schema(
	[]string{"_id", "email", "subscribed", "created_at"},
	bson.M{
		"_id":        id,
		"email":      text(3, 254),
		"subscribed": bson.M{"bsonType": "bool"},
		"created_at": date,
	},
)

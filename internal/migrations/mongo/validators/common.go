package validators

import "go.mongodb.org/mongo-driver/bson"

var (
	id = bson.M{"bsonType": "string", "minLength": 1}

	integer = bson.A{"int", "long"}

	decimal = bson.M{"bsonType": "decimal"}

	date = bson.M{"bsonType": "date"}

	slug = bson.M{
		"bsonType": "string",
		"pattern":  `^[a-z0-9]+(?:-[a-z0-9]+)*$`,
	}
)

func text(minLength, maxLength int) bson.M {
	schema := bson.M{"bsonType": "string", "minLength": minLength}
	if maxLength > 0 {
		schema["maxLength"] = maxLength
	}
	return schema
}

func schema(required []string, properties bson.M) bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType":             "object",
			"required":             required,
			"additionalProperties": true,
			"properties":           properties,
		},
	}
}

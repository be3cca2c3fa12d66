package repository

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tramondo/pkg/model"
)

// tourSort puts featured tours first, best rated first within each group.
var tourSort = bson.D{
	{Key: "featured", Value: -1},
	{Key: "rating", Value: -1},
}

// BuildFilter starts from match-all and adds one conjunct per requested
// restriction. A destination that failed to resolve adds a clause no
// document can satisfy.
func BuildFilter(q model.TourQuery) bson.M {
	var clauses []bson.M

	if q.ActivityType != "" {
		clauses = append(clauses, bson.M{"activity_type": q.ActivityType})
	}

	switch {
	case q.DestinationMissing:
		clauses = append(clauses, bson.M{"_id": bson.M{"$in": bson.A{}}})
	case q.DestinationID != "":
		clauses = append(clauses, bson.M{"destination_id": q.DestinationID})
	}

	if q.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		clauses = append(clauses, bson.M{"$or": bson.A{
			bson.M{"title": pattern},
			bson.M{"location": pattern},
			bson.M{"description": pattern},
		}})
	}

	if len(clauses) == 0 {
		return bson.M{}
	}
	return bson.M{"$and": clauses}
}

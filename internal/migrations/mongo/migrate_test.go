package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	bookingsrepo "tramondo/internal/bookings/repository"
	destinationsrepo "tramondo/internal/destinations/repository"
	instagramrepo "tramondo/internal/instagram/repository"
	reviewsrepo "tramondo/internal/reviews/repository"
	subscriptionsrepo "tramondo/internal/subscriptions/repository"
	toursrepo "tramondo/internal/tours/repository"
	usersrepo "tramondo/internal/users/repository"
)

func TestCollections_MatchRepositories(t *testing.T) {
	var names []string
	for _, c := range Collections {
		names = append(names, c.Name)
	}

	assert.ElementsMatch(t, []string{
		usersrepo.CollectionName,
		destinationsrepo.CollectionName,
		toursrepo.CollectionName,
		reviewsrepo.CollectionName,
		bookingsrepo.CollectionName,
		subscriptionsrepo.CollectionName,
		instagramrepo.CollectionName,
	}, names)
}

func TestCollections_UniqueKeys(t *testing.T) {
	uniqueKeys := map[string]string{}
	for _, c := range Collections {
		for _, idx := range c.Indexes {
			if idx.Options == nil || idx.Options.Unique == nil || !*idx.Options.Unique {
				continue
			}
			keys, ok := idx.Keys.(bson.D)
			require.True(t, ok)
			require.Len(t, keys, 1)
			uniqueKeys[c.Name] = keys[0].Key
		}
	}

	assert.Equal(t, map[string]string{
		"users":               "username",
		"destinations":        "slug",
		"tours":               "slug",
		"email_subscriptions": "email",
	}, uniqueKeys)
}

func TestCollections_ValidatorsMarshal(t *testing.T) {
	for _, c := range Collections {
		t.Run(c.Name, func(t *testing.T) {
			require.NotNil(t, c.Validator)
			_, err := bson.Marshal(c.Validator)
			assert.NoError(t, err)
		})
	}
}

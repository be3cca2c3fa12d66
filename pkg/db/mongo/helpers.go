package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithTimeout bounds a store call. Inside a transaction the SessionContext is
// returned unchanged, since wrapping it would detach the call from the session.
func WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}

	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		return context.WithDeadline(ctx, deadline)
	}

	return context.WithTimeout(ctx, timeout)
}

// NewID returns a version 7 UUID. Ids from one process increase strictly, so
// "_id" breaks ties between documents created in the same millisecond in
// insertion order.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// Now is the creation timestamp at the precision the store keeps.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	apperrors "tramondo/pkg/errors"
)

// TransactionFunc runs a unit of work. Inside a real transaction ctx is a
// mongo.SessionContext and must be handed to every repository call.
type TransactionFunc func(ctx context.Context) error

type TransactionManager interface {
	ExecuteTransaction(ctx context.Context, fn TransactionFunc) error
}

type mongoTransactionManager struct {
	client *mongo.Client
}

// NewTransactionManager needs a replica set or sharded cluster; standalone
// servers reject multi-document transactions.
func NewTransactionManager(client *mongo.Client) TransactionManager {
	return &mongoTransactionManager{
		client: client,
	}
}

func (m *mongoTransactionManager) ExecuteTransaction(ctx context.Context, fn TransactionFunc) error {
	session, err := m.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		return nil, fn(sessCtx)
	})

	if err != nil {
		if apperrors.IsAppError(err) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// Sequential runs the unit of work step by step with no transaction around
// it; each statement commits on its own.
type Sequential struct{}

func (Sequential) ExecuteTransaction(ctx context.Context, fn TransactionFunc) error {
	return fn(ctx)
}

// SelectTransactionManager wraps multi-step writes in a real transaction only
// when transactional is set.
func SelectTransactionManager(client *mongo.Client, transactional bool) TransactionManager {
	if transactional {
		return NewTransactionManager(client)
	}
	return Sequential{}
}

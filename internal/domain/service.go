package domain

import "context"

// TransactionManager runs a function within a database transaction.
// Repositories called inside fn pick the transaction up from the context.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

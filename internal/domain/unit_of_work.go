package domain

import "context"

// UnitOfWork runs fn inside one transaction. Repositories called with the
// ctx passed to fn join that transaction.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

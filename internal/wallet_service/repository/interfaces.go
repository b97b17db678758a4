package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/tarapay/wallet-ledger/internal/wallet_service/domain"
)

// Querier is the common surface of *pgxpool.Pool and pgx.Tx, so repository
// methods can run inside or outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// AccountRepository defines persistence for wallet accounts.
type AccountRepository interface {
	// Create inserts a zero-balance account. Returns
	// domain.ErrAccountAlreadyExists on a duplicate user id.
	Create(ctx context.Context, querier Querier, account *domain.Account) (*domain.Account, error)
	// GetByUserID returns the account or domain.ErrAccountNotFound.
	GetByUserID(ctx context.Context, querier Querier, userID string) (*domain.Account, error)
	// GetByUserIDForUpdate is GetByUserID with a row-level lock; it must run
	// inside a transaction so concurrent deposits serialize per account.
	GetByUserIDForUpdate(ctx context.Context, querier Querier, userID string) (*domain.Account, error)
	// UpdateBalance sets the persisted balance. Returns
	// domain.ErrAccountNotFound when no row was updated.
	UpdateBalance(ctx context.Context, querier Querier, userID string, newBalance decimal.Decimal) error
}

// OutboxRepository defines persistence for outbox messages. This component
// only produces rows; draining them belongs to the relay.
type OutboxRepository interface {
	Create(ctx context.Context, querier Querier, msg *domain.OutboxMessage) (*domain.OutboxMessage, error)
}

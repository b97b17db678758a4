package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/tarapay/wallet-ledger/internal/wallet_service/domain"
	"github.com/tarapay/wallet-ledger/internal/wallet_service/repository"
)

type pgAccountRepository struct{}

// NewPgAccountRepository creates a new AccountRepository for PostgreSQL.
func NewPgAccountRepository() repository.AccountRepository {
	return &pgAccountRepository{}
}

func (r *pgAccountRepository) Create(ctx context.Context, querier repository.Querier, account *domain.Account) (*domain.Account, error) {
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now

	query := `
		INSERT INTO wallet_accounts (user_id, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := querier.Exec(ctx, query,
		account.UserID, account.Balance, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAccountAlreadyExists
		}
		return nil, err
	}
	return account, nil
}

func (r *pgAccountRepository) GetByUserID(ctx context.Context, querier repository.Querier, userID string) (*domain.Account, error) {
	query := `
		SELECT user_id, balance, created_at, updated_at
		FROM wallet_accounts WHERE user_id = $1
	`
	return r.scanAccount(querier.QueryRow(ctx, query, userID))
}

func (r *pgAccountRepository) GetByUserIDForUpdate(ctx context.Context, querier repository.Querier, userID string) (*domain.Account, error) {
	query := `
		SELECT user_id, balance, created_at, updated_at
		FROM wallet_accounts WHERE user_id = $1
		FOR UPDATE
	`
	return r.scanAccount(querier.QueryRow(ctx, query, userID))
}

func (r *pgAccountRepository) scanAccount(row pgx.Row) (*domain.Account, error) {
	account := &domain.Account{}
	err := row.Scan(&account.UserID, &account.Balance, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

func (r *pgAccountRepository) UpdateBalance(ctx context.Context, querier repository.Querier, userID string, newBalance decimal.Decimal) error {
	query := `
		UPDATE wallet_accounts
		SET balance = $2, updated_at = $3
		WHERE user_id = $1
	`
	tag, err := querier.Exec(ctx, query, userID, newBalance, time.Now().UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

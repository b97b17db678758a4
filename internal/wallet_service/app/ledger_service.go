package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tarapay/wallet-ledger/internal/wallet_service/domain"
	"github.com/tarapay/wallet-ledger/internal/wallet_service/repository"
)

// DBPool is the slice of *pgxpool.Pool the service needs: single-statement
// reads, and the transactions that make the ledger write and the outbox
// write one atomic unit.
type DBPool interface {
	repository.Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// LedgerService implements the wallet ledger: account creation, deposits and
// balance lookups. Every mutation writes exactly one outbox row inside the
// same transaction as the ledger change.
type LedgerService struct {
	accountRepo repository.AccountRepository
	outboxRepo  repository.OutboxRepository
	db          DBPool
	logger      *slog.Logger
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(
	accountRepo repository.AccountRepository,
	outboxRepo repository.OutboxRepository,
	db DBPool,
	logger *slog.Logger,
) *LedgerService {
	return &LedgerService{
		accountRepo: accountRepo,
		outboxRepo:  outboxRepo,
		db:          db,
		logger:      logger.With("service", "wallet_ledger"),
	}
}

// CreateAccount creates a zero-balance account for userID and records an
// account-created outbox event. Returns domain.ErrAccountAlreadyExists if the
// user already has an account; in that case nothing is persisted.
func (s *LedgerService) CreateAccount(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	start := time.Now()

	var account *domain.Account
	txErr := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		created, err := s.accountRepo.Create(ctx, tx, domain.NewAccount(userID.String()))
		if err != nil {
			return err
		}

		msg, err := domain.NewAccountCreatedMessage(created.UserID, created.Balance)
		if err != nil {
			return err
		}
		if _, err := s.outboxRepo.Create(ctx, tx, msg); err != nil {
			return err
		}

		account = created
		return nil
	})
	if txErr != nil {
		return nil, s.finish(ctx, "create_account", start, txErr)
	}

	s.logger.InfoContext(ctx, "Account created", "user_id", account.UserID)
	s.finishOK("create_account", start)
	return account, nil
}

// Deposit adds amount to the user's balance and records a payment-processed
// outbox event carrying the new balance. Amount must be strictly positive;
// that is checked before any store access.
func (s *LedgerService) Deposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*domain.BalanceSnapshot, error) {
	start := time.Now()

	if amount.Sign() <= 0 {
		return nil, s.finish(ctx, "deposit", start, domain.ErrInvalidAmount)
	}

	var snapshot *domain.BalanceSnapshot
	txErr := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		// Row lock serializes concurrent deposits for the same user.
		account, err := s.accountRepo.GetByUserIDForUpdate(ctx, tx, userID.String())
		if err != nil {
			return err
		}

		newBalance := account.Balance.Add(amount)
		if err := s.accountRepo.UpdateBalance(ctx, tx, account.UserID, newBalance); err != nil {
			return err
		}

		msg, err := domain.NewPaymentProcessedMessage(account.UserID, newBalance)
		if err != nil {
			return err
		}
		if _, err := s.outboxRepo.Create(ctx, tx, msg); err != nil {
			return err
		}

		snapshot = &domain.BalanceSnapshot{UserID: account.UserID, Balance: newBalance}
		return nil
	})
	if txErr != nil {
		return nil, s.finish(ctx, "deposit", start, txErr)
	}

	s.logger.InfoContext(ctx, "Deposit committed",
		"user_id", snapshot.UserID, "amount", amount.String(), "new_balance", snapshot.Balance.String())
	s.finishOK("deposit", start)
	return snapshot, nil
}

// GetBalance returns the current persisted balance for userID. A plain
// read-committed lookup is sufficient: no mutation, no outbox write.
func (s *LedgerService) GetBalance(ctx context.Context, userID uuid.UUID) (*domain.BalanceSnapshot, error) {
	start := time.Now()

	account, err := s.accountRepo.GetByUserID(ctx, s.db, userID.String())
	if err != nil {
		return nil, s.finish(ctx, "get_balance", start, err)
	}

	s.finishOK("get_balance", start)
	return &domain.BalanceSnapshot{UserID: account.UserID, Balance: account.Balance}, nil
}

// finish classifies err, records metrics and maps non-domain failures to
// ErrStoreUnavailable so callers know a full retry is safe.
func (s *LedgerService) finish(ctx context.Context, operation string, start time.Time, err error) error {
	ledgerOperationDurationHist.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	if isDomainErr(err) {
		ledgerOperationsCounter.WithLabelValues(operation, "rejected").Inc()
		return err
	}

	ledgerOperationsCounter.WithLabelValues(operation, "error").Inc()
	s.logger.ErrorContext(ctx, "Ledger operation failed", "operation", operation, "error", err)
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}

func (s *LedgerService) finishOK(operation string, start time.Time) {
	ledgerOperationDurationHist.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	ledgerOperationsCounter.WithLabelValues(operation, "success").Inc()
}

func isDomainErr(err error) bool {
	return errors.Is(err, domain.ErrAccountAlreadyExists) ||
		errors.Is(err, domain.ErrAccountNotFound) ||
		errors.Is(err, domain.ErrInvalidAmount)
}

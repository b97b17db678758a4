package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tarapay/wallet-ledger/internal/wallet_service/domain"
	"github.com/tarapay/wallet-ledger/internal/wallet_service/repository"
)

type pgOutboxRepository struct{}

// NewPgOutboxRepository creates a new OutboxRepository for PostgreSQL.
func NewPgOutboxRepository() repository.OutboxRepository {
	return &pgOutboxRepository{}
}

func (r *pgOutboxRepository) Create(ctx context.Context, querier repository.Querier, msg *domain.OutboxMessage) (*domain.OutboxMessage, error) {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	msg.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO wallet_outbox (id, aggregate_id, event_type, payload, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := querier.Exec(ctx, query,
		msg.ID, msg.AggregateID, msg.EventType, msg.Payload, msg.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return msg, nil
}

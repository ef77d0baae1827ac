package shared

import (
	"context"
	"time"

	"baby-registry/internal/domain/contribution"
	"baby-registry/internal/domain/item"
	sqlc "baby-registry/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Items() ItemRepository
	Contributions() ContributionRepository
	Idempotency() IdempotencyRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ItemByID(ctx context.Context, id uuid.UUID) (*item.Item, error)
	// ItemByIDForUpdate locks the row until the surrounding transaction ends.
	ItemByIDForUpdate(ctx context.Context, id uuid.UUID) (*item.Item, error)
	IdempotencyByKey(ctx context.Context, key uuid.UUID) (*IdempotencyRecord, error)
}

type ItemRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, it *item.Item) error
	Update(ctx context.Context, tx sqlc.DBTX, it *item.Item) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	// SetContributedAmount overwrites the running total unconditionally.
	SetContributedAmount(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, amount decimal.Decimal) error
	// IncrementContributedAmount adds delta in a single statement and returns the new total.
	IncrementContributedAmount(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error)
}

type ContributionRepository interface {
	Insert(ctx context.Context, tx sqlc.DBTX, c *contribution.Contribution) error
}

type IdempotencyRepository interface {
	// TryInsert reports whether the key was claimed by this request.
	TryInsert(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	MarkCompleted(ctx context.Context, tx sqlc.DBTX, key, contributionID uuid.UUID, total decimal.Decimal) error
}

package repository

import (
	"context"

	"baby-registry/internal/domain/item"
	"baby-registry/internal/infra"
	"baby-registry/internal/infra/repository/converter"
	sqlc "baby-registry/internal/infra/sqlc/generated"
	"baby-registry/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type ItemWriteQueries interface {
	CreateItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateItemParams) (sqlc.Items, error)
	UpdateItem(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateItemParams) (int64, error)
	DeleteItem(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	SetItemContributedAmount(ctx context.Context, db sqlc.DBTX, arg sqlc.SetItemContributedAmountParams) (int64, error)
	IncrementItemContributedAmount(ctx context.Context, db sqlc.DBTX, arg sqlc.IncrementItemContributedAmountParams) (pgtype.Numeric, error)
}

type ItemRepository struct {
	queries ItemWriteQueries
	db      sqlc.DBTX
}

func NewItemRepository(queries ItemWriteQueries, db sqlc.DBTX) *ItemRepository {
	return &ItemRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ItemRepository) Create(ctx context.Context, tx sqlc.DBTX, it *item.Item) error {
	if _, err := r.queries.CreateItem(ctx, tx, converter.ItemToCreateParams(it)); err != nil {
		return infra.WrapRepoErr("failed to create item", err)
	}
	return nil
}

func (r *ItemRepository) Update(ctx context.Context, tx sqlc.DBTX, it *item.Item) error {
	n, err := r.queries.UpdateItem(ctx, tx, converter.ItemToUpdateParams(it))
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteItem(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete item", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ItemRepository) SetContributedAmount(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, amount decimal.Decimal) error {
	params := sqlc.SetItemContributedAmountParams{
		ID:                id,
		ContributedAmount: pgconv.DecimalToNumeric(amount),
	}
	n, err := r.queries.SetItemContributedAmount(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to set contributed amount", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ItemRepository) IncrementContributedAmount(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	params := sqlc.IncrementItemContributedAmountParams{
		ID:     id,
		Amount: pgconv.DecimalToNumeric(delta),
	}
	total, err := r.queries.IncrementItemContributedAmount(ctx, tx, params)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("failed to increment contributed amount", err)
	}
	newTotal, err := pgconv.DecimalFromNumeric(total)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("invalid contributed amount", err)
	}
	return newTotal, nil
}

package readstore

import (
	"context"

	"baby-registry/internal/domain/item"
	"baby-registry/internal/infra"
	"baby-registry/internal/infra/repository/converter"
	sqlc "baby-registry/internal/infra/sqlc/generated"
	"baby-registry/internal/pkg/pgconv"
	"baby-registry/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemReadQueries interface {
	GetItem(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Items, error)
	GetItemForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Items, error)
	ListItems(ctx context.Context, db sqlc.DBTX) ([]sqlc.Items, error)
}

type ItemReadStore struct {
	queries ItemReadQueries
	db      sqlc.DBTX
}

func NewItemReadStore(queries ItemReadQueries, db sqlc.DBTX) *ItemReadStore {
	return &ItemReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	it, err := r.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toItemView(it), nil
}

func (r *ItemReadStore) List(ctx context.Context) ([]*queries.ItemView, error) {
	rows, err := r.queries.ListItems(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}

	views := make([]*queries.ItemView, 0, len(rows))
	for _, row := range rows {
		it, err := converter.ItemFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid item row", err)
		}
		views = append(views, toItemView(it))
	}
	return views, nil
}

// Load returns the item aggregate for command-side checks.
func (r *ItemReadStore) Load(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	return r.load(ctx, id, r.queries.GetItem)
}

// LoadForUpdate locks the row; r.db must be a transaction.
func (r *ItemReadStore) LoadForUpdate(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	return r.load(ctx, id, r.queries.GetItemForUpdate)
}

func (r *ItemReadStore) load(
	ctx context.Context,
	id uuid.UUID,
	get func(context.Context, sqlc.DBTX, uuid.UUID) (sqlc.Items, error),
) (*item.Item, error) {
	row, err := get(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get item", err)
	}
	it, err := converter.ItemFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid item row", err)
	}
	return it, nil
}

func toItemView(it *item.Item) *queries.ItemView {
	return &queries.ItemView{
		ID:                it.ID(),
		Name:              it.Name().String(),
		Description:       it.Description(),
		Price:             it.Price().Decimal(),
		ContributedAmount: it.ContributedAmount(),
		Remaining:         it.Remaining(),
		IsCompleted:       it.IsCompleted(),
		IsPriority:        it.IsPriority(),
		Category:          it.Category(),
		ImageURL:          it.ImageURL(),
		OriginalURL:       it.OriginalURL(),
		CreatedAt:         it.CreatedAt(),
	}
}

package queries

import (
	"context"

	"baby-registry/internal/infra"
	"baby-registry/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrItemNotFound = errs.ErrItemNotFound

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	List(ctx context.Context) ([]*ItemView, error)
}

type ContributionReadStore interface {
	ListForItem(ctx context.Context, itemID uuid.UUID) ([]*ContributionView, error)
	ListForItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]*ContributionView, error)
	ListDistinctEmails(ctx context.Context) ([]string, error)
}

type ItemQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	List(ctx context.Context) ([]*ItemView, error)
}

type itemQueriesImpl struct {
	items         ItemReadStore
	contributions ContributionReadStore
}

func NewItemQueries(items ItemReadStore, contributions ContributionReadStore) ItemQueries {
	return &itemQueriesImpl{items: items, contributions: contributions}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ItemView, error) {
	view, err := q.items.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	contributions, err := q.contributions.ListForItem(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Contributions = nonNil(contributions)
	return view, nil
}

// List returns priority items first, then newest; each with its contributions.
func (q *itemQueriesImpl) List(ctx context.Context) ([]*ItemView, error) {
	views, err := q.items.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return []*ItemView{}, nil
	}

	ids := make([]uuid.UUID, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
	}
	byItem, err := q.contributions.ListForItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		v.Contributions = nonNil(byItem[v.ID])
	}
	return views, nil
}

func nonNil(in []*ContributionView) []*ContributionView {
	if in == nil {
		return []*ContributionView{}
	}
	return in
}

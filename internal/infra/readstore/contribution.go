package readstore

import (
	"context"

	"baby-registry/internal/infra"
	sqlc "baby-registry/internal/infra/sqlc/generated"
	"baby-registry/internal/pkg/pgconv"
	"baby-registry/internal/usecase/queries"

	"github.com/google/uuid"
)

type ContributionReadQueries interface {
	ListContributionsByItem(ctx context.Context, db sqlc.DBTX, itemID uuid.UUID) ([]sqlc.Contributions, error)
	ListContributionsByItemIDs(ctx context.Context, db sqlc.DBTX, itemIds []uuid.UUID) ([]sqlc.Contributions, error)
	ListDistinctContributorEmails(ctx context.Context, db sqlc.DBTX) ([]string, error)
}

type ContributionReadStore struct {
	queries ContributionReadQueries
	db      sqlc.DBTX
}

func NewContributionReadStore(queries ContributionReadQueries, db sqlc.DBTX) *ContributionReadStore {
	return &ContributionReadStore{
		queries: queries,
		db:      db,
	}
}

// ListForItem returns a snapshot ordered by creation time ascending.
func (r *ContributionReadStore) ListForItem(ctx context.Context, itemID uuid.UUID) ([]*queries.ContributionView, error) {
	rows, err := r.queries.ListContributionsByItem(ctx, r.db, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list contributions for item", err)
	}
	return mapContributionRows(rows)
}

func (r *ContributionReadStore) ListForItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]*queries.ContributionView, error) {
	out := make(map[uuid.UUID][]*queries.ContributionView, len(itemIDs))
	if len(itemIDs) == 0 {
		return out, nil
	}

	rows, err := r.queries.ListContributionsByItemIDs(ctx, r.db, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list contributions for items", err)
	}
	views, err := mapContributionRows(rows)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		out[v.ItemID] = append(out[v.ItemID], v)
	}
	return out, nil
}

// ListDistinctEmails returns lower-cased, trimmed, non-blank addresses without duplicates.
func (r *ContributionReadStore) ListDistinctEmails(ctx context.Context) ([]string, error) {
	emails, err := r.queries.ListDistinctContributorEmails(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list contributor emails", err)
	}
	if emails == nil {
		return []string{}, nil
	}
	return emails, nil
}

func mapContributionRows(rows []sqlc.Contributions) ([]*queries.ContributionView, error) {
	views := make([]*queries.ContributionView, 0, len(rows))
	for _, row := range rows {
		amount, err := pgconv.DecimalFromNumeric(row.Amount)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid contribution amount", err)
		}
		views = append(views, &queries.ContributionView{
			ID:                 row.ID,
			ItemID:             row.ItemID,
			Amount:             amount,
			ContributorName:    row.ContributorName,
			ContributorSurname: row.ContributorSurname,
			ContributorEmail:   row.ContributorEmail,
			Message:            pgconv.StringFromPgtype(row.Message),
			PaymentMethod:      row.PaymentMethod,
			CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}

package repository

import (
	"context"

	"baby-registry/internal/domain/contribution"
	"baby-registry/internal/infra"
	"baby-registry/internal/infra/repository/converter"
	sqlc "baby-registry/internal/infra/sqlc/generated"
)

type ContributionWriteQueries interface {
	InsertContribution(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertContributionParams) (sqlc.Contributions, error)
}

type ContributionRepository struct {
	queries ContributionWriteQueries
	db      sqlc.DBTX
}

func NewContributionRepository(queries ContributionWriteQueries, db sqlc.DBTX) *ContributionRepository {
	return &ContributionRepository{
		queries: queries,
		db:      db,
	}
}

// Insert appends a contribution; rows are never updated afterwards.
func (r *ContributionRepository) Insert(ctx context.Context, tx sqlc.DBTX, c *contribution.Contribution) error {
	if _, err := r.queries.InsertContribution(ctx, tx, converter.ContributionToInsertParams(c)); err != nil {
		return infra.WrapRepoErr("failed to insert contribution", err)
	}
	return nil
}

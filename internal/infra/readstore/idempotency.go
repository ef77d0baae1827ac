package readstore

import (
	"context"

	"baby-registry/internal/infra"
	sqlc "baby-registry/internal/infra/sqlc/generated"
	"baby-registry/internal/pkg/pgconv"
	"baby-registry/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, key uuid.UUID) (sqlc.IdempotencyKeys, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
}

func NewIdempotencyReadStore(queries IdempotencyReadQueries) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
	}
}

func (r *IdempotencyReadStore) Get(ctx context.Context, tx sqlc.DBTX, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, tx, key)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	total, err := pgconv.DecimalPtrFromNumeric(row.ResultTotal)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid idempotency result total", err)
	}

	return &shared.IdempotencyRecord{
		Key:                  row.Key,
		Endpoint:             row.Endpoint,
		Status:               row.Status,
		RequestHash:          row.RequestHash,
		ResultContributionID: pgconv.UUIDPtrFromPgtype(row.ResultContributionID),
		ResultTotal:          total,
		ExpiresAt:            pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}

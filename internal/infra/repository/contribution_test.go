//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"baby-registry/internal/infra"
	"baby-registry/internal/infra/repository"
	sqlc "baby-registry/internal/infra/sqlc/generated"
	"baby-registry/internal/pkg/pgconv"
	"baby-registry/tests/common/builder"
	repositorymock "baby-registry/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestContributionRepository_Insert(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := repositorymock.NewMockContributionWriteQueries(ctrl)
	repo := repository.NewContributionRepository(q, nil)
	c, err := builder.NewContributionBuilder().WithAmount(12.5).
		With(func(b *builder.ContributionBuilder) { b.Message = "" }).
		BuildDomain()
	require.NoError(t, err)

	q.EXPECT().InsertContribution(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertContributionParams) (sqlc.Contributions, error) {
			assert.Equal(t, c.ID(), arg.ID)
			assert.Equal(t, c.ItemID(), arg.ItemID)
			amount, _ := pgconv.DecimalFromNumeric(arg.Amount)
			assert.True(t, amount.Equal(decimal.RequireFromString("12.5")))
			assert.Equal(t, "giulia.rossi@example.com", arg.ContributorEmail)
			assert.False(t, arg.Message.Valid, "empty message is stored as NULL")
			assert.Equal(t, "paypal", arg.PaymentMethod)
			return sqlc.Contributions{}, nil
		})

	require.NoError(t, repo.Insert(context.Background(), nil, c))
}

func TestContributionRepository_InsertUnknownItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := repositorymock.NewMockContributionWriteQueries(ctrl)
	repo := repository.NewContributionRepository(q, nil)
	c, err := builder.NewContributionBuilder().BuildDomain()
	require.NoError(t, err)

	q.EXPECT().InsertContribution(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(sqlc.Contributions{}, &pgconn.PgError{Code: "23503"})

	err = repo.Insert(context.Background(), nil, c)

	assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated), "got %v", err)
}

func TestIdempotencyRepository(t *testing.T) {
	key := uuid.New()
	expires := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("claim reports whether a row was written", func(t *testing.T) {
		for _, rows := range []int64{1, 0} {
			ctrl := gomock.NewController(t)
			q := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
			repo := repository.NewIdempotencyRepository(q, nil)

			q.EXPECT().TryInsertIdempotencyKey(gomock.Any(), gomock.Any(), sqlc.TryInsertIdempotencyKeyParams{
				Key:         key,
				Endpoint:    "POST /api/contributions",
				RequestHash: "abc",
				ExpiresAt:   pgconv.TimeToPgtype(expires),
			}).Return(rows, nil)

			claimed, err := repo.TryInsert(context.Background(), nil, key, "POST /api/contributions", "abc", expires)

			require.NoError(t, err)
			assert.Equal(t, rows == 1, claimed)
		}
	})

	t.Run("mark completed stores the result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		repo := repository.NewIdempotencyRepository(q, nil)
		contributionID := uuid.New()

		q.EXPECT().CompleteIdempotencyKey(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CompleteIdempotencyKeyParams) (int64, error) {
				assert.Equal(t, key, arg.Key)
				assert.Equal(t, pgconv.UUIDToPgtype(contributionID), arg.ResultContributionID)
				total, _ := pgconv.DecimalFromNumeric(arg.ResultTotal)
				assert.True(t, total.Equal(decimal.NewFromInt(75)))
				return 1, nil
			})

		require.NoError(t, repo.MarkCompleted(context.Background(), nil, key, contributionID, decimal.NewFromInt(75)))
	})

	t.Run("mark completed on a missing key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		repo := repository.NewIdempotencyRepository(q, nil)

		q.EXPECT().CompleteIdempotencyKey(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := repo.MarkCompleted(context.Background(), nil, key, uuid.New(), decimal.Zero)

		assert.True(t, infra.IsKind(err, infra.KindNotFound), "got %v", err)
	})
}

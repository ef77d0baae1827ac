//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"baby-registry/internal/infra"
	sqlc "baby-registry/internal/infra/sqlc/generated"
	"baby-registry/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockContributionQueries struct {
	mock.Mock
}

func (m *MockContributionQueries) ListContributionsByItem(ctx context.Context, db sqlc.DBTX, itemID uuid.UUID) ([]sqlc.Contributions, error) {
	args := m.Called(ctx, db, itemID)
	return args.Get(0).([]sqlc.Contributions), args.Error(1)
}

func (m *MockContributionQueries) ListContributionsByItemIDs(ctx context.Context, db sqlc.DBTX, itemIds []uuid.UUID) ([]sqlc.Contributions, error) {
	args := m.Called(ctx, db, itemIds)
	return args.Get(0).([]sqlc.Contributions), args.Error(1)
}

func (m *MockContributionQueries) ListDistinctContributorEmails(ctx context.Context, db sqlc.DBTX) ([]string, error) {
	args := m.Called(ctx, db)
	var emails []string
	if v := args.Get(0); v != nil {
		emails = v.([]string)
	}
	return emails, args.Error(1)
}

func TestContributionReadStore_ListForItem(t *testing.T) {
	itemID := uuid.New()
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	first := builder.NewContributionBuilder().ForItem(itemID).WithAmount(10).
		With(func(b *builder.ContributionBuilder) { b.CreatedAt = base }).BuildInfra(1)
	second := builder.NewContributionBuilder().ForItem(itemID).WithAmount(15.5).
		With(func(b *builder.ContributionBuilder) { b.CreatedAt = base.Add(time.Hour); b.Message = "" }).BuildInfra(2)

	q := new(MockContributionQueries)
	q.On("ListContributionsByItem", mock.Anything, mock.Anything, itemID).Return([]sqlc.Contributions{first, second}, nil)
	store := NewContributionReadStore(q, nil)

	views, err := store.ListForItem(context.Background(), itemID)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, first.ID, views[0].ID)
	assert.Equal(t, "10.00", views[0].Amount.StringFixed(2))
	assert.Equal(t, base, views[0].CreatedAt)
	assert.Equal(t, "15.50", views[1].Amount.StringFixed(2))
	assert.Empty(t, views[1].Message)
	q.AssertExpectations(t)
}

func TestContributionReadStore_ListForItemEmpty(t *testing.T) {
	itemID := uuid.New()
	q := new(MockContributionQueries)
	q.On("ListContributionsByItem", mock.Anything, mock.Anything, itemID).Return([]sqlc.Contributions{}, nil)
	store := NewContributionReadStore(q, nil)

	views, err := store.ListForItem(context.Background(), itemID)

	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestContributionReadStore_ListForItemsGroupsByItem(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	rows := []sqlc.Contributions{
		builder.NewContributionBuilder().ForItem(a).BuildInfra(1),
		builder.NewContributionBuilder().ForItem(b).BuildInfra(2),
		builder.NewContributionBuilder().ForItem(a).BuildInfra(3),
	}
	q := new(MockContributionQueries)
	q.On("ListContributionsByItemIDs", mock.Anything, mock.Anything, []uuid.UUID{a, b}).Return(rows, nil)
	store := NewContributionReadStore(q, nil)

	got, err := store.ListForItems(context.Background(), []uuid.UUID{a, b})

	require.NoError(t, err)
	assert.Len(t, got[a], 2)
	assert.Len(t, got[b], 1)
	assert.Equal(t, rows[0].ID, got[a][0].ID)
	assert.Equal(t, rows[2].ID, got[a][1].ID)
}

func TestContributionReadStore_ListForItemsSkipsQueryWhenEmpty(t *testing.T) {
	q := new(MockContributionQueries)
	store := NewContributionReadStore(q, nil)

	got, err := store.ListForItems(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, got)
	q.AssertNotCalled(t, "ListContributionsByItemIDs", mock.Anything, mock.Anything, mock.Anything)
}

func TestContributionReadStore_ListDistinctEmails(t *testing.T) {
	tests := []struct {
		name      string
		mockRet   any
		mockError error
		want      []string
		wantErr   bool
	}{
		{name: "success", mockRet: []string{"anna@example.com", "marco@example.com"}, want: []string{"anna@example.com", "marco@example.com"}},
		{name: "no contributions", mockRet: nil, want: []string{}},
		{name: "database error", mockRet: nil, mockError: assert.AnError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockContributionQueries)
			q.On("ListDistinctContributorEmails", mock.Anything, mock.Anything).Return(tt.mockRet, tt.mockError)
			store := NewContributionReadStore(q, nil)

			got, err := store.ListDistinctEmails(context.Background())

			if tt.wantErr {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

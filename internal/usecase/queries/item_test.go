//go:build unit

package queries_test

import (
	"context"
	"testing"

	"baby-registry/internal/infra"
	"baby-registry/internal/usecase/queries"
	"baby-registry/tests/common/builder"
	queriesmock "baby-registry/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestItemQueries_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := queriesmock.NewMockItemReadStore(ctrl)
	contribs := queriesmock.NewMockContributionReadStore(ctrl)
	q := queries.NewItemQueries(items, contribs)

	view := builder.NewItemBuilder().BuildView()
	first := builder.NewContributionBuilder().ForItem(view.ID).BuildView()
	second := builder.NewContributionBuilder().ForItem(view.ID).BuildView()

	items.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
	contribs.EXPECT().ListForItem(gomock.Any(), view.ID).Return([]*queries.ContributionView{first, second}, nil)

	got, err := q.GetByID(context.Background(), view.ID)

	require.NoError(t, err)
	require.Len(t, got.Contributions, 2)
	assert.Equal(t, first.ID, got.Contributions[0].ID)
	assert.Equal(t, second.ID, got.Contributions[1].ID)
}

func TestItemQueries_GetByIDNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := queriesmock.NewMockItemReadStore(ctrl)
	q := queries.NewItemQueries(items, queriesmock.NewMockContributionReadStore(ctrl))
	id := uuid.New()

	items.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("item not found", pgx.ErrNoRows, infra.KindNotFound))

	_, err := q.GetByID(context.Background(), id)

	assert.ErrorIs(t, err, queries.ErrItemNotFound)
}

func TestItemQueries_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := queriesmock.NewMockItemReadStore(ctrl)
	contribs := queriesmock.NewMockContributionReadStore(ctrl)
	q := queries.NewItemQueries(items, contribs)

	funded := builder.NewItemBuilder().BuildView()
	empty := builder.NewItemBuilder().BuildView()
	c := builder.NewContributionBuilder().ForItem(funded.ID).BuildView()

	items.EXPECT().List(gomock.Any()).Return([]*queries.ItemView{funded, empty}, nil)
	contribs.EXPECT().ListForItems(gomock.Any(), []uuid.UUID{funded.ID, empty.ID}).
		Return(map[uuid.UUID][]*queries.ContributionView{funded.ID: {c}}, nil)

	got, err := q.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Len(t, got[0].Contributions, 1)
	assert.NotNil(t, got[1].Contributions)
	assert.Empty(t, got[1].Contributions)
}

func TestItemQueries_ListEmptyCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := queriesmock.NewMockItemReadStore(ctrl)
	q := queries.NewItemQueries(items, queriesmock.NewMockContributionReadStore(ctrl))

	items.EXPECT().List(gomock.Any()).Return(nil, nil)

	got, err := q.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

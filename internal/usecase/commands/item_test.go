//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"baby-registry/internal/domain/item"
	"baby-registry/internal/infra"
	sqlc "baby-registry/internal/infra/sqlc/generated"
	"baby-registry/internal/pkg/clock"
	"baby-registry/internal/pkg/errs"
	"baby-registry/internal/usecase/commands"
	"baby-registry/internal/usecase/shared"
	"baby-registry/tests/common/builder"
	sharedmock "baby-registry/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ItemUseCaseTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	uow   *sharedmock.MockUnitOfWork
	tx    *sharedmock.MockTx
	reads *sharedmock.MockCommandReads
	items *sharedmock.MockItemRepository
	now   time.Time
	uc    commands.ItemCommands
}

func (s *ItemUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.items = sharedmock.NewMockItemRepository(s.ctrl)
	s.now = time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)

	s.tx.EXPECT().Items().Return(s.items).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().DB().Return(sqlc.DBTX(nil)).AnyTimes()
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()

	s.uc = commands.NewItemUseCase(s.uow, clock.NewFixedClock(s.now))
}

func (s *ItemUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestItemUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ItemUseCaseTestSuite))
}

func (s *ItemUseCaseTestSuite) TestCreate() {
	ctx := context.Background()
	contributed := 30.0

	s.items.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, it *item.Item) error {
			s.Equal("Crib", it.Name().String())
			s.True(it.Price().Decimal().Equal(decimal.RequireFromString("249.9")))
			s.True(it.ContributedAmount().Equal(decimal.NewFromInt(30)))
			s.Equal(s.now, it.CreatedAt())
			return nil
		})

	id, err := s.uc.Create(ctx, commands.ItemInput{
		Name:              "  Crib ",
		Price:             249.90,
		ContributedAmount: &contributed,
	})

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, id)
}

func (s *ItemUseCaseTestSuite) TestCreate_ValidationErrors() {
	ctx := context.Background()
	negative := -1.0

	testCases := []struct {
		name string
		in   commands.ItemInput
	}{
		{"empty name", commands.ItemInput{Name: " ", Price: 10}},
		{"zero price", commands.ItemInput{Name: "Crib", Price: 0}},
		{"bad image url", commands.ItemInput{Name: "Crib", Price: 10, ImageURL: "not a url"}},
		{"negative contributed amount", commands.ItemInput{Name: "Crib", Price: 10, ContributedAmount: &negative}},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.uc.Create(ctx, tc.in)
			s.True(errs.Is(err, commands.ErrValidationFailed), "got %v", err)
		})
	}
}

func (s *ItemUseCaseTestSuite) TestUpdate_KeepsTotalUnlessOverridden() {
	ctx := context.Background()
	existing := builder.NewItemBuilder().WithPrice(100).WithContributed(60).BuildStored()

	s.reads.EXPECT().ItemByIDForUpdate(gomock.Any(), existing.ID()).Return(existing, nil)
	s.items.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, it *item.Item) error {
			s.Equal("Travel stroller", it.Name().String())
			s.True(it.ContributedAmount().Equal(decimal.NewFromInt(60)))
			return nil
		})

	err := s.uc.Update(ctx, existing.ID(), commands.ItemInput{Name: "Travel stroller", Price: 120})

	s.NoError(err)
}

func (s *ItemUseCaseTestSuite) TestUpdate_OverridesContributedAmount() {
	ctx := context.Background()
	existing := builder.NewItemBuilder().WithContributed(60).BuildStored()
	reset := 0.0

	s.reads.EXPECT().ItemByIDForUpdate(gomock.Any(), existing.ID()).Return(existing, nil)
	s.items.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.items.EXPECT().SetContributedAmount(gomock.Any(), gomock.Any(), existing.ID(), decimalEq("0")).Return(nil)

	err := s.uc.Update(ctx, existing.ID(), commands.ItemInput{Name: "Stroller", Price: 100, ContributedAmount: &reset})

	s.NoError(err)
}

func (s *ItemUseCaseTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()
	id := uuid.New()

	s.reads.EXPECT().ItemByIDForUpdate(gomock.Any(), id).
		Return(nil, infra.WrapRepoErr("failed to load item", pgx.ErrNoRows))

	err := s.uc.Update(ctx, id, commands.ItemInput{Name: "Stroller", Price: 100})

	s.True(errs.Is(err, commands.ErrItemNotFound), "got %v", err)
}

func (s *ItemUseCaseTestSuite) TestDelete() {
	ctx := context.Background()
	id := uuid.New()

	s.Run("success", func() {
		s.items.EXPECT().Delete(gomock.Any(), gomock.Any(), id).Return(nil)
		s.NoError(s.uc.Delete(ctx, id))
	})

	s.Run("storage failure", func() {
		s.items.EXPECT().Delete(gomock.Any(), gomock.Any(), id).
			Return(infra.WrapRepoErr("failed to delete item", errors.New("connection reset")))
		err := s.uc.Delete(ctx, id)
		s.True(errs.Is(err, commands.ErrDatabaseOperationFailed), "got %v", err)
	})
}

package commands

import (
	"context"

	"baby-registry/internal/domain/item"
	"baby-registry/internal/domain/money"
	"baby-registry/internal/pkg/clock"
	"baby-registry/internal/pkg/errs"
	"baby-registry/internal/usecase/shared"

	"github.com/google/uuid"
)

// ItemInput carries admin catalog edits. ContributedAmount, when set,
// overwrites the running total.
type ItemInput struct {
	Name              string
	Description       string
	Price             float64
	IsPriority        bool
	Category          string
	ImageURL          string
	OriginalURL       string
	ContributedAmount *float64
}

type ItemCommands interface {
	Create(ctx context.Context, in ItemInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, in ItemInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type itemUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewItemUseCase(uow shared.UnitOfWork, clk clock.Clock) ItemCommands {
	return &itemUseCaseImpl{uow: uow, clock: clk}
}

func (uc *itemUseCaseImpl) Create(ctx context.Context, in ItemInput) (uuid.UUID, error) {
	attrs, err := in.attributes()
	if err != nil {
		return uuid.Nil, err
	}
	it, err := item.NewItem(uuid.New(), attrs, uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidationFailed)
	}
	if err := applyContributedAmount(it, in.ContributedAmount); err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Items().Create(ctx, tx.DB(), it); err != nil {
			return mapStorageErr(err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, classifyCommandErr(err)
	}
	return it.ID(), nil
}

func (uc *itemUseCaseImpl) Update(ctx context.Context, id uuid.UUID, in ItemInput) error {
	attrs, err := in.attributes()
	if err != nil {
		return err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		it, err := tx.Reads().ItemByIDForUpdate(ctx, id)
		if err != nil {
			return mapStorageErr(err)
		}
		if err := it.Update(attrs); err != nil {
			return errs.Mark(err, ErrValidationFailed)
		}
		if err := tx.Items().Update(ctx, tx.DB(), it); err != nil {
			return mapStorageErr(err)
		}

		if in.ContributedAmount == nil {
			return nil
		}
		if err := applyContributedAmount(it, in.ContributedAmount); err != nil {
			return err
		}
		if err := tx.Items().SetContributedAmount(ctx, tx.DB(), it.ID(), it.ContributedAmount()); err != nil {
			return mapStorageErr(err)
		}
		return nil
	})
	if err != nil {
		return classifyCommandErr(err)
	}
	return nil
}

func (uc *itemUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Items().Delete(ctx, tx.DB(), id); err != nil {
			return mapStorageErr(err)
		}
		return nil
	})
	if err != nil {
		return classifyCommandErr(err)
	}
	return nil
}

func (in ItemInput) attributes() (item.Attributes, error) {
	price, err := money.FromFloat(in.Price)
	if err != nil {
		return item.Attributes{}, errs.Mark(err, ErrValidationFailed)
	}
	return item.Attributes{
		Name:        in.Name,
		Description: in.Description,
		Price:       price,
		IsPriority:  in.IsPriority,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		OriginalURL: in.OriginalURL,
	}, nil
}

func applyContributedAmount(it *item.Item, amount *float64) error {
	if amount == nil {
		return nil
	}
	d, err := money.FromFloat(*amount)
	if err != nil {
		return errs.Mark(err, ErrValidationFailed)
	}
	if err := it.SetContributedAmount(d); err != nil {
		return errs.Mark(err, ErrValidationFailed)
	}
	return nil
}

package commands

import (
	"context"
	"time"

	"baby-registry/internal/domain/contribution"
	"baby-registry/internal/pkg/config"
	"baby-registry/internal/pkg/errs"
	"baby-registry/internal/pkg/metrics"
	"baby-registry/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationCommands interface {
	// Reserve takes a temporary hold on an item; the same email may refresh it.
	Reserve(ctx context.Context, itemID uuid.UUID, email string) (*shared.Lease, error)
	// Release drops the hold if email still owns it. Releasing a free item is not an error.
	Release(ctx context.Context, itemID uuid.UUID, email string) error
}

type reservationUseCaseImpl struct {
	uow    shared.UnitOfWork
	leases LeaseStore
	ttl    time.Duration
}

func NewReservationUseCase(uow shared.UnitOfWork, leases LeaseStore, cfg config.ReservationConfig) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:    uow,
		leases: leases,
		ttl:    cfg.TTL,
	}
}

func (r *reservationUseCaseImpl) Reserve(ctx context.Context, itemID uuid.UUID, email string) (*shared.Lease, error) {
	holder, err := contribution.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	it, err := r.uow.CommandReads().ItemByID(ctx, itemID)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	if it.IsCompleted() {
		metrics.ReservationsTotal.WithLabelValues(metrics.ResultRejected).Inc()
		return nil, ErrAlreadyCompleted
	}

	lease, acquired, err := r.leases.Acquire(ctx, itemID, holder.String(), r.ttl)
	if err != nil {
		metrics.ReservationsTotal.WithLabelValues(metrics.ResultError).Inc()
		return nil, errs.Mark(err, ErrCacheOperationFailed)
	}
	if !acquired {
		metrics.ReservationsTotal.WithLabelValues(metrics.ResultConflict).Inc()
		return nil, errs.Wrapf(ErrReservedByOther, "reserved until %s", lease.ExpiresAt.UTC().Format(time.RFC3339))
	}

	metrics.ReservationsTotal.WithLabelValues(metrics.ResultAccepted).Inc()
	return &lease, nil
}

func (r *reservationUseCaseImpl) Release(ctx context.Context, itemID uuid.UUID, email string) error {
	holder, err := contribution.NewEmail(email)
	if err != nil {
		return errs.Mark(err, ErrValidationFailed)
	}
	if _, err := r.leases.Release(ctx, itemID, holder.String()); err != nil {
		return errs.Mark(err, ErrCacheOperationFailed)
	}
	return nil
}

package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"baby-registry/internal/domain/contribution"
	"baby-registry/internal/domain/item"
	"baby-registry/internal/infra"
	"baby-registry/internal/pkg/clock"
	"baby-registry/internal/pkg/errs"
	"baby-registry/internal/pkg/metrics"
	"baby-registry/internal/usecase/notification"
	"baby-registry/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrValidationFailed        = errs.ErrValidationFailed
	ErrItemNotFound            = errs.ErrItemNotFound
	ErrAlreadyCompleted        = errs.ErrAlreadyCompleted
	ErrReservedByOther         = errs.ErrReservedByOther
	ErrIdempotencyInProgress   = errs.ErrIdempotencyInProgress
	ErrIdempotencyKeyReused    = errs.ErrIdempotencyKeyReused
	ErrDatabaseOperationFailed = errs.ErrDatabaseOperationFailed
	ErrCacheOperationFailed    = errs.ErrCacheOperationFailed
)

const (
	contributionEndpoint = "POST /api/contributions"
	idempotencyTTL       = 24 * time.Hour
)

type SubmitContributionInput struct {
	ItemID             uuid.UUID
	Amount             float64
	ContributorName    string
	ContributorSurname string
	ContributorEmail   string
	Message            string
	PaymentMethod      string
}

type ContributionResult struct {
	ContributionID       uuid.UUID
	ItemID               uuid.UUID
	Amount               decimal.Decimal
	NewContributedAmount decimal.Decimal
	Completed            bool
	IsReplayed           bool
}

type LeaseStore interface {
	Acquire(ctx context.Context, itemID uuid.UUID, holder string, ttl time.Duration) (shared.Lease, bool, error)
	Holder(ctx context.Context, itemID uuid.UUID) (*shared.Lease, error)
	Release(ctx context.Context, itemID uuid.UUID, holder string) (bool, error)
}

type ContributionCommands interface {
	// Submit records a pledge. A uuid.Nil idempotency key disables replay detection.
	Submit(ctx context.Context, in SubmitContributionInput, idempotencyKey uuid.UUID) (*ContributionResult, error)
}

type contributionUseCaseImpl struct {
	uow      shared.UnitOfWork
	leases   LeaseStore
	notifier notification.Notifier
	clock    clock.Clock
	logger   *slog.Logger
}

func NewContributionUseCase(
	uow shared.UnitOfWork,
	leases LeaseStore,
	notifier notification.Notifier,
	clk clock.Clock,
	logger *slog.Logger,
) ContributionCommands {
	return &contributionUseCaseImpl{
		uow:      uow,
		leases:   leases,
		notifier: notifier,
		clock:    clk,
		logger:   logger,
	}
}

func (uc *contributionUseCaseImpl) Submit(ctx context.Context, in SubmitContributionInput, idempotencyKey uuid.UUID) (*ContributionResult, error) {
	contrib, err := contribution.NewContribution(contribution.Input{
		ItemID:             in.ItemID,
		Amount:             in.Amount,
		ContributorName:    in.ContributorName,
		ContributorSurname: in.ContributorSurname,
		ContributorEmail:   in.ContributorEmail,
		Message:            in.Message,
		PaymentMethod:      in.PaymentMethod,
	}, uc.clock.Now())
	if err != nil {
		metrics.ContributionsTotal.WithLabelValues(metrics.ResultRejected).Inc()
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	email := contrib.Contributor().Email().String()
	if err := uc.checkLease(ctx, in.ItemID, email); err != nil {
		metrics.ContributionsTotal.WithLabelValues(metrics.ResultRejected).Inc()
		return nil, err
	}

	requestHash := calculateRequestHash(contrib)

	var (
		result *ContributionResult
		notice *notification.ContributionNotice
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// reset state captured by a previous attempt
		result, notice = nil, nil

		if idempotencyKey != uuid.Nil {
			replay, err := uc.claimIdempotencyKey(ctx, tx, idempotencyKey, requestHash, contrib)
			if err != nil {
				return err
			}
			if replay != nil {
				result = replay
				return nil
			}
		}

		it, err := tx.Reads().ItemByIDForUpdate(ctx, contrib.ItemID())
		if err != nil {
			return mapStorageErr(err)
		}
		if err := it.CanAccept(contrib.Amount()); err != nil {
			if errs.Is(err, item.ErrAlreadyCompleted) {
				return ErrAlreadyCompleted
			}
			return errs.Mark(err, ErrValidationFailed)
		}

		newTotal, err := tx.Items().IncrementContributedAmount(ctx, tx.DB(), it.ID(), contrib.Amount())
		if err != nil {
			return mapStorageErr(err)
		}
		if err := tx.Contributions().Insert(ctx, tx.DB(), contrib); err != nil {
			return mapStorageErr(err)
		}
		if idempotencyKey != uuid.Nil {
			if err := tx.Idempotency().MarkCompleted(ctx, tx.DB(), idempotencyKey, contrib.ID(), newTotal); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		price := it.Price().Decimal()
		result = &ContributionResult{
			ContributionID:       contrib.ID(),
			ItemID:               it.ID(),
			Amount:               contrib.Amount(),
			NewContributedAmount: newTotal,
			Completed:            newTotal.GreaterThanOrEqual(price),
		}
		notice = buildNotice(it, contrib, newTotal, result.Completed)
		return nil
	})
	if err != nil {
		metrics.ContributionsTotal.WithLabelValues(metrics.ResultRejected).Inc()
		return nil, classifyCommandErr(err)
	}

	if result.IsReplayed {
		metrics.ContributionsTotal.WithLabelValues(metrics.ResultReplayed).Inc()
		return result, nil
	}

	metrics.ContributionsTotal.WithLabelValues(metrics.ResultAccepted).Inc()
	metrics.ContributedAmountTotal.Add(result.Amount.InexactFloat64())
	if result.Completed {
		metrics.ItemsCompletedTotal.Inc()
	}
	uc.logger.InfoContext(ctx, "contribution recorded",
		"contribution_id", result.ContributionID,
		"item_id", result.ItemID,
		"amount", result.Amount.StringFixed(2),
		"new_total", result.NewContributedAmount.StringFixed(2),
		"completed", result.Completed)

	uc.afterCommit(ctx, email, *notice)
	return result, nil
}

// checkLease rejects a pledge while another contributor holds the item.
// The lease is advisory: an unreachable cache does not block contributions.
func (uc *contributionUseCaseImpl) checkLease(ctx context.Context, itemID uuid.UUID, email string) error {
	if uc.leases == nil {
		return nil
	}
	holder, err := uc.leases.Holder(ctx, itemID)
	if err != nil {
		uc.logger.WarnContext(ctx, "reservation lookup failed", "item_id", itemID, "error", err)
		return nil
	}
	if holder != nil && holder.Holder != email {
		return errs.Wrapf(ErrReservedByOther, "reserved until %s", holder.ExpiresAt.UTC().Format(time.RFC3339))
	}
	return nil
}

func (uc *contributionUseCaseImpl) afterCommit(ctx context.Context, email string, notice notification.ContributionNotice) {
	if uc.leases != nil {
		if _, err := uc.leases.Release(ctx, notice.ItemID, email); err != nil {
			uc.logger.WarnContext(ctx, "failed to release reservation", "error", err)
		}
	}

	if err := uc.notifier.NotifyContribution(ctx, notice); err != nil {
		uc.logger.WarnContext(ctx, "contribution recorded but notification failed", "error", err)
	}
}

func (uc *contributionUseCaseImpl) claimIdempotencyKey(
	ctx context.Context,
	tx shared.Tx,
	key uuid.UUID,
	requestHash string,
	contrib *contribution.Contribution,
) (*ContributionResult, error) {
	expiresAt := uc.clock.Now().Add(idempotencyTTL)
	claimed, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, contributionEndpoint, requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if claimed {
		return nil, nil
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if existing.RequestHash != requestHash {
		return nil, ErrIdempotencyKeyReused
	}
	if existing.Status != shared.IdempotencyStatusCompleted {
		return nil, ErrIdempotencyInProgress
	}

	replay := &ContributionResult{
		ItemID:     contrib.ItemID(),
		Amount:     contrib.Amount(),
		IsReplayed: true,
	}
	if existing.ResultContributionID != nil {
		replay.ContributionID = *existing.ResultContributionID
	}
	if existing.ResultTotal != nil {
		replay.NewContributedAmount = *existing.ResultTotal
	}
	if it, err := tx.Reads().ItemByID(ctx, contrib.ItemID()); err == nil {
		replay.Completed = replay.NewContributedAmount.GreaterThanOrEqual(it.Price().Decimal())
	}
	return replay, nil
}

func buildNotice(it *item.Item, c *contribution.Contribution, newTotal decimal.Decimal, completed bool) *notification.ContributionNotice {
	who := c.Contributor()
	return &notification.ContributionNotice{
		ItemID:             it.ID(),
		ItemName:           it.Name().String(),
		Amount:             c.Amount(),
		ContributorName:    who.Name(),
		ContributorSurname: who.Surname(),
		ContributorEmail:   who.Email().String(),
		Message:            c.Message(),
		PaymentMethod:      c.PaymentMethod().String(),
		NewTotal:           newTotal,
		Price:              it.Price().Decimal(),
		Completed:          completed,
	}
}

func calculateRequestHash(c *contribution.Contribution) string {
	who := c.Contributor()
	payload := struct {
		ItemID        uuid.UUID `json:"item_id"`
		Amount        string    `json:"amount"`
		Name          string    `json:"name"`
		Surname       string    `json:"surname"`
		Email         string    `json:"email"`
		Message       string    `json:"message"`
		PaymentMethod string    `json:"payment_method"`
	}{
		ItemID:        c.ItemID(),
		Amount:        c.Amount().StringFixed(2),
		Name:          who.Name(),
		Surname:       who.Surname(),
		Email:         who.Email().String(),
		Message:       c.Message(),
		PaymentMethod: c.PaymentMethod().String(),
	}
	data, _ := json.Marshal(payload)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func mapStorageErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrItemNotFound
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}

var knownCommandErrs = []error{
	ErrValidationFailed,
	ErrItemNotFound,
	ErrAlreadyCompleted,
	ErrReservedByOther,
	ErrIdempotencyInProgress,
	ErrIdempotencyKeyReused,
	ErrDatabaseOperationFailed,
	ErrCacheOperationFailed,
}

// classifyCommandErr keeps known sentinels and marks anything else
// (begin/commit failures, retries exhausted) as a storage error.
func classifyCommandErr(err error) error {
	for _, known := range knownCommandErrs {
		if errs.Is(err, known) {
			return err
		}
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}

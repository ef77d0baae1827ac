//go:build unit || e2e

package builder

import (
	"time"

	"baby-registry/internal/domain/contribution"
	reqdto "baby-registry/internal/handler/dto/request"
	sqlc "baby-registry/internal/infra/sqlc/generated"
	"baby-registry/internal/pkg/pgconv"
	"baby-registry/internal/usecase/commands"
	"baby-registry/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type ContributionBuilder struct {
	ID                 uuid.UUID
	ItemID             uuid.UUID
	Amount             float64
	ContributorName    string
	ContributorSurname string
	ContributorEmail   string
	Message            string
	PaymentMethod      string
	CreatedAt          time.Time
}

func NewContributionBuilder() *ContributionBuilder {
	return &ContributionBuilder{
		ID:                 uuid.New(),
		ItemID:             uuid.New(),
		Amount:             25,
		ContributorName:    "Giulia",
		ContributorSurname: "Rossi",
		ContributorEmail:   "giulia.rossi@example.com",
		Message:            "Congratulations!",
		PaymentMethod:      string(contribution.PaymentPayPal),
		CreatedAt:          time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ContributionBuilder) With(mutate func(*ContributionBuilder)) *ContributionBuilder {
	mutate(b)
	return b
}

func (b *ContributionBuilder) ForItem(id uuid.UUID) *ContributionBuilder {
	b.ItemID = id
	return b
}

func (b *ContributionBuilder) WithAmount(amount float64) *ContributionBuilder {
	b.Amount = amount
	return b
}

func (b *ContributionBuilder) WithEmail(email string) *ContributionBuilder {
	b.ContributorEmail = email
	return b
}

func (b *ContributionBuilder) BuildDomain() (*contribution.Contribution, error) {
	return contribution.NewContribution(contribution.Input{
		ItemID:             b.ItemID,
		Amount:             b.Amount,
		ContributorName:    b.ContributorName,
		ContributorSurname: b.ContributorSurname,
		ContributorEmail:   b.ContributorEmail,
		Message:            b.Message,
		PaymentMethod:      b.PaymentMethod,
	}, b.CreatedAt)
}

func (b *ContributionBuilder) BuildInput() commands.SubmitContributionInput {
	return commands.SubmitContributionInput{
		ItemID:             b.ItemID,
		Amount:             b.Amount,
		ContributorName:    b.ContributorName,
		ContributorSurname: b.ContributorSurname,
		ContributorEmail:   b.ContributorEmail,
		Message:            b.Message,
		PaymentMethod:      b.PaymentMethod,
	}
}

func (b *ContributionBuilder) BuildRequestDTO() reqdto.CreateContributionRequest {
	return reqdto.CreateContributionRequest{
		ItemID:             b.ItemID,
		Amount:             b.Amount,
		ContributorName:    b.ContributorName,
		ContributorSurname: b.ContributorSurname,
		ContributorEmail:   b.ContributorEmail,
		Message:            b.Message,
		PaymentMethod:      b.PaymentMethod,
	}
}

func (b *ContributionBuilder) BuildInfra(seq int64) sqlc.Contributions {
	return sqlc.Contributions{
		ID:                 b.ID,
		Seq:                seq,
		ItemID:             b.ItemID,
		Amount:             pgconv.DecimalToNumeric(decimal.NewFromFloat(b.Amount)),
		ContributorName:    b.ContributorName,
		ContributorSurname: b.ContributorSurname,
		ContributorEmail:   b.ContributorEmail,
		Message:            pgconv.OptionalStringToPgtype(b.Message),
		PaymentMethod:      b.PaymentMethod,
		CreatedAt:          pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *ContributionBuilder) BuildView() *queries.ContributionView {
	return &queries.ContributionView{
		ID:                 b.ID,
		ItemID:             b.ItemID,
		Amount:             decimal.NewFromFloat(b.Amount),
		ContributorName:    b.ContributorName,
		ContributorSurname: b.ContributorSurname,
		ContributorEmail:   b.ContributorEmail,
		Message:            b.Message,
		PaymentMethod:      b.PaymentMethod,
		CreatedAt:          b.CreatedAt,
	}
}

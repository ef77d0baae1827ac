//go:build unit || e2e

package builder

import (
	"time"

	"baby-registry/internal/domain/item"
	reqdto "baby-registry/internal/handler/dto/request"
	sqlc "baby-registry/internal/infra/sqlc/generated"
	"baby-registry/internal/pkg/pgconv"
	"baby-registry/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type ItemBuilder struct {
	ID                uuid.UUID
	Name              string
	Description       string
	Price             decimal.Decimal
	ContributedAmount decimal.Decimal
	IsPriority        bool
	Category          string
	ImageURL          string
	OriginalURL       string
	CreatedAt         time.Time
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:                uuid.New(),
		Name:              "Stroller",
		Description:       "Lightweight city stroller",
		Price:             decimal.NewFromInt(100),
		ContributedAmount: decimal.Zero,
		Category:          "outdoor",
		ImageURL:          "https://example.com/stroller.jpg",
		OriginalURL:       "https://shop.example.com/stroller",
		CreatedAt:         time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

func (b *ItemBuilder) WithPrice(price float64) *ItemBuilder {
	b.Price = decimal.NewFromFloat(price)
	return b
}

func (b *ItemBuilder) WithContributed(amount float64) *ItemBuilder {
	b.ContributedAmount = decimal.NewFromFloat(amount)
	return b
}

func (b *ItemBuilder) AsPriority() *ItemBuilder {
	b.IsPriority = true
	return b
}

func (b *ItemBuilder) Attributes() item.Attributes {
	return item.Attributes{
		Name:        b.Name,
		Description: b.Description,
		Price:       b.Price,
		IsPriority:  b.IsPriority,
		Category:    b.Category,
		ImageURL:    b.ImageURL,
		OriginalURL: b.OriginalURL,
	}
}

// Build methods
func (b *ItemBuilder) BuildDomain() (*item.Item, error) {
	it, err := item.NewItem(b.ID, b.Attributes(), b.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := it.SetContributedAmount(b.ContributedAmount); err != nil {
		return nil, err
	}
	return it, nil
}

func (b *ItemBuilder) BuildStored() *item.Item {
	return item.ReconstructItem(b.ID, b.Attributes(), b.ContributedAmount, b.CreatedAt)
}

func (b *ItemBuilder) BuildInfra() sqlc.Items {
	return sqlc.Items{
		ID:                b.ID,
		Name:              b.Name,
		Description:       pgconv.OptionalStringToPgtype(b.Description),
		Price:             pgconv.DecimalToNumeric(b.Price),
		ContributedAmount: pgconv.DecimalToNumeric(b.ContributedAmount),
		IsPriority:        b.IsPriority,
		Category:          pgconv.OptionalStringToPgtype(b.Category),
		ImageUrl:          pgconv.OptionalStringToPgtype(b.ImageURL),
		OriginalUrl:       pgconv.OptionalStringToPgtype(b.OriginalURL),
		CreatedAt:         pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:         pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *ItemBuilder) BuildView() *queries.ItemView {
	remaining := b.Price.Sub(b.ContributedAmount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return &queries.ItemView{
		ID:                b.ID,
		Name:              b.Name,
		Description:       b.Description,
		Price:             b.Price,
		ContributedAmount: b.ContributedAmount,
		Remaining:         remaining,
		IsCompleted:       b.ContributedAmount.GreaterThanOrEqual(b.Price),
		IsPriority:        b.IsPriority,
		Category:          b.Category,
		ImageURL:          b.ImageURL,
		OriginalURL:       b.OriginalURL,
		CreatedAt:         b.CreatedAt,
		Contributions:     []*queries.ContributionView{},
	}
}

func (b *ItemBuilder) BuildCreateRequestDTO() reqdto.CreateItemRequest {
	return reqdto.CreateItemRequest{
		Name:        b.Name,
		Description: b.Description,
		Price:       b.Price.InexactFloat64(),
		IsPriority:  b.IsPriority,
		Category:    b.Category,
		ImageURL:    b.ImageURL,
		OriginalURL: b.OriginalURL,
	}
}

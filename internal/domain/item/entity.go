package item

import (
	"strings"
	"time"

	"baby-registry/internal/domain/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Attributes struct {
	Name        string
	Description string
	Price       decimal.Decimal
	IsPriority  bool
	Category    string
	ImageURL    string
	OriginalURL string
}

type Item struct {
	id                uuid.UUID
	name              Name
	description       string
	price             Price
	contributedAmount decimal.Decimal
	isPriority        bool
	category          string
	imageURL          string
	originalURL       string
	createdAt         time.Time
}

func NewItem(id uuid.UUID, attrs Attributes, now time.Time) (*Item, error) {
	it := &Item{
		id:                id,
		contributedAmount: decimal.Zero,
		createdAt:         now,
	}
	if it.id == uuid.Nil {
		it.id = uuid.New()
	}
	if err := it.apply(attrs); err != nil {
		return nil, err
	}
	return it, nil
}

// ReconstructItem rebuilds an item from storage without validation.
func ReconstructItem(id uuid.UUID, attrs Attributes, contributedAmount decimal.Decimal, createdAt time.Time) *Item {
	return &Item{
		id:                id,
		name:              Name{value: attrs.Name},
		description:       attrs.Description,
		price:             Price{value: attrs.Price},
		contributedAmount: contributedAmount,
		isPriority:        attrs.IsPriority,
		category:          attrs.Category,
		imageURL:          attrs.ImageURL,
		originalURL:       attrs.OriginalURL,
		createdAt:         createdAt,
	}
}

// Update replaces the catalog attributes; the contributed amount is untouched.
func (i *Item) Update(attrs Attributes) error {
	return i.apply(attrs)
}

// SetContributedAmount is the administrative correction path.
func (i *Item) SetContributedAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	i.contributedAmount = money.Round2(amount)
	return nil
}

func (i *Item) apply(attrs Attributes) error {
	name, err := NewName(attrs.Name)
	if err != nil {
		return err
	}
	price, err := NewPrice(attrs.Price)
	if err != nil {
		return err
	}
	for _, u := range []string{attrs.ImageURL, attrs.OriginalURL} {
		if err := validateOptionalURL(strings.TrimSpace(u)); err != nil {
			return err
		}
	}

	i.name = name
	i.price = price
	i.description = strings.TrimSpace(attrs.Description)
	i.isPriority = attrs.IsPriority
	i.category = strings.TrimSpace(attrs.Category)
	i.imageURL = strings.TrimSpace(attrs.ImageURL)
	i.originalURL = strings.TrimSpace(attrs.OriginalURL)
	return nil
}

func (i *Item) IsCompleted() bool {
	return i.contributedAmount.GreaterThanOrEqual(i.price.Decimal())
}

func (i *Item) Remaining() decimal.Decimal {
	r := i.price.Decimal().Sub(i.contributedAmount)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

// CanAccept checks a pledge against the full price rather than the remaining
// balance, so overshoot of the running total is allowed.
func (i *Item) CanAccept(amount decimal.Decimal) error {
	if i.IsCompleted() {
		return ErrAlreadyCompleted
	}
	if !money.AtMost(amount, i.price.Decimal()) {
		return ErrAmountExceedsPrice
	}
	return nil
}

func (i *Item) ID() uuid.UUID                      { return i.id }
func (i *Item) Name() Name                         { return i.name }
func (i *Item) Description() string                { return i.description }
func (i *Item) Price() Price                       { return i.price }
func (i *Item) ContributedAmount() decimal.Decimal { return i.contributedAmount }
func (i *Item) IsPriority() bool                   { return i.isPriority }
func (i *Item) Category() string                   { return i.category }
func (i *Item) ImageURL() string                   { return i.imageURL }
func (i *Item) OriginalURL() string                { return i.originalURL }
func (i *Item) CreatedAt() time.Time               { return i.createdAt }

package request

import (
	"baby-registry/internal/usecase/commands"
	"baby-registry/internal/usecase/queries"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type CreateItemRequest struct {
	Name              string   `json:"name"`
	Description       string   `json:"description,omitempty"`
	Price             float64  `json:"price"`
	IsPriority        bool     `json:"isPriority"`
	Category          string   `json:"category,omitempty"`
	ImageURL          string   `json:"imageUrl,omitempty"`
	OriginalURL       string   `json:"originalUrl,omitempty"`
	ContributedAmount *float64 `json:"contributedAmount,omitempty"`
}

func (r CreateItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Price, validation.Required, validation.Min(0.01)),
		validation.Field(&r.ImageURL, is.URL),
		validation.Field(&r.OriginalURL, is.URL),
	)
}

func (r CreateItemRequest) ToInput() commands.ItemInput {
	return commands.ItemInput{
		Name:              r.Name,
		Description:       r.Description,
		Price:             r.Price,
		IsPriority:        r.IsPriority,
		Category:          r.Category,
		ImageURL:          r.ImageURL,
		OriginalURL:       r.OriginalURL,
		ContributedAmount: r.ContributedAmount,
	}
}

// UpdateItemRequest applies only the fields present in the body.
type UpdateItemRequest struct {
	Name              *string  `json:"name,omitempty"`
	Description       *string  `json:"description,omitempty"`
	Price             *float64 `json:"price,omitempty"`
	IsPriority        *bool    `json:"isPriority,omitempty"`
	Category          *string  `json:"category,omitempty"`
	ImageURL          *string  `json:"imageUrl,omitempty"`
	OriginalURL       *string  `json:"originalUrl,omitempty"`
	ContributedAmount *float64 `json:"contributedAmount,omitempty"`
}

func (r UpdateItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty),
		validation.Field(&r.Price, validation.NilOrNotEmpty, validation.Min(0.01)),
		validation.Field(&r.ImageURL, is.URL),
		validation.Field(&r.OriginalURL, is.URL),
	)
}

func (r UpdateItemRequest) ToInput(existing *queries.ItemView) commands.ItemInput {
	return commands.ItemInput{
		Name:              orExisting(r.Name, existing.Name),
		Description:       orExisting(r.Description, existing.Description),
		Price:             orExisting(r.Price, existing.Price.InexactFloat64()),
		IsPriority:        orExisting(r.IsPriority, existing.IsPriority),
		Category:          orExisting(r.Category, existing.Category),
		ImageURL:          orExisting(r.ImageURL, existing.ImageURL),
		OriginalURL:       orExisting(r.OriginalURL, existing.OriginalURL),
		ContributedAmount: r.ContributedAmount,
	}
}

func orExisting[T any](v *T, existing T) T {
	if v == nil {
		return existing
	}
	return *v
}

package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemView represents read-optimized item data with its contributions
type ItemView struct {
	ID                uuid.UUID           `json:"id"`
	Name              string              `json:"name"`
	Description       string              `json:"description,omitempty"`
	Price             decimal.Decimal     `json:"price"`
	ContributedAmount decimal.Decimal     `json:"contributed_amount"`
	Remaining         decimal.Decimal     `json:"remaining"`
	IsCompleted       bool                `json:"is_completed"`
	IsPriority        bool                `json:"is_priority"`
	Category          string              `json:"category,omitempty"`
	ImageURL          string              `json:"image_url,omitempty"`
	OriginalURL       string              `json:"original_url,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	Contributions     []*ContributionView `json:"contributions"`
}

// ContributionView represents a stored contribution in creation order
type ContributionView struct {
	ID                 uuid.UUID       `json:"id"`
	ItemID             uuid.UUID       `json:"item_id"`
	Amount             decimal.Decimal `json:"amount"`
	ContributorName    string          `json:"contributor_name"`
	ContributorSurname string          `json:"contributor_surname"`
	ContributorEmail   string          `json:"contributor_email"`
	Message            string          `json:"message,omitempty"`
	PaymentMethod      string          `json:"payment_method"`
	CreatedAt          time.Time       `json:"created_at"`
}

package response

import (
	"time"

	"baby-registry/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemResponse struct {
	ID                uuid.UUID               `json:"id"`
	Name              string                  `json:"name"`
	Description       string                  `json:"description,omitempty"`
	Price             float64                 `json:"price"`
	ContributedAmount float64                 `json:"contributedAmount"`
	Remaining         float64                 `json:"remaining"`
	IsCompleted       bool                    `json:"isCompleted"`
	IsPriority        bool                    `json:"isPriority"`
	Category          string                  `json:"category,omitempty"`
	ImageURL          string                  `json:"imageUrl,omitempty"`
	OriginalURL       string                  `json:"originalUrl,omitempty"`
	CreatedAt         time.Time               `json:"createdAt"`
	Contributions     []*ContributionResponse `json:"contributions"`
}

// ContributionResponse is the public projection; contributor emails are not exposed.
type ContributionResponse struct {
	ID                 uuid.UUID `json:"id"`
	Amount             float64   `json:"amount"`
	ContributorName    string    `json:"contributorName"`
	ContributorSurname string    `json:"contributorSurname"`
	Message            string    `json:"message,omitempty"`
	PaymentMethod      string    `json:"paymentMethod"`
	CreatedAt          time.Time `json:"createdAt"`
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	contributions := make([]*ContributionResponse, len(v.Contributions))
	for i, c := range v.Contributions {
		contributions[i] = &ContributionResponse{
			ID:                 c.ID,
			Amount:             c.Amount.InexactFloat64(),
			ContributorName:    c.ContributorName,
			ContributorSurname: c.ContributorSurname,
			Message:            c.Message,
			PaymentMethod:      c.PaymentMethod,
			CreatedAt:          c.CreatedAt,
		}
	}

	return &ItemResponse{
		ID:                v.ID,
		Name:              v.Name,
		Description:       v.Description,
		Price:             v.Price.InexactFloat64(),
		ContributedAmount: v.ContributedAmount.InexactFloat64(),
		Remaining:         v.Remaining.InexactFloat64(),
		IsCompleted:       v.IsCompleted,
		IsPriority:        v.IsPriority,
		Category:          v.Category,
		ImageURL:          v.ImageURL,
		OriginalURL:       v.OriginalURL,
		CreatedAt:         v.CreatedAt,
		Contributions:     contributions,
	}
}

func FromItemViews(views []*queries.ItemView) []*ItemResponse {
	res := make([]*ItemResponse, len(views))
	for i, v := range views {
		res[i] = FromItemView(v)
	}
	return res
}

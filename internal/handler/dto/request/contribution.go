package request

import (
	"baby-registry/internal/usecase/commands"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateContributionRequest only checks shape; amount and contributor rules
// are enforced by the domain.
type CreateContributionRequest struct {
	ItemID             uuid.UUID `json:"itemId"`
	Amount             float64   `json:"amount"`
	ContributorName    string    `json:"contributorName"`
	ContributorSurname string    `json:"contributorSurname"`
	ContributorEmail   string    `json:"contributorEmail"`
	Message            string    `json:"message,omitempty"`
	PaymentMethod      string    `json:"paymentMethod"`
}

func (r CreateContributionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ItemID, validation.By(notNilUUID)),
		validation.Field(&r.PaymentMethod, validation.Required.Error("payment method is required")),
	)
}

func (r CreateContributionRequest) ToInput() commands.SubmitContributionInput {
	return commands.SubmitContributionInput{
		ItemID:             r.ItemID,
		Amount:             r.Amount,
		ContributorName:    r.ContributorName,
		ContributorSurname: r.ContributorSurname,
		ContributorEmail:   r.ContributorEmail,
		Message:            r.Message,
		PaymentMethod:      r.PaymentMethod,
	}
}

func notNilUUID(value any) error {
	id, _ := value.(uuid.UUID)
	if id == uuid.Nil {
		return validation.NewError("validation_uuid_required", "itemId is required")
	}
	return nil
}

package response

import (
	"baby-registry/internal/usecase/commands"

	"github.com/google/uuid"
)

type ContributionResultResponse struct {
	ContributionID       uuid.UUID `json:"contributionId"`
	ItemID               uuid.UUID `json:"itemId"`
	Amount               float64   `json:"amount"`
	NewContributedAmount float64   `json:"newContributedAmount"`
	Completed            bool      `json:"completed"`
	Replayed             bool      `json:"replayed,omitempty"`
}

func FromContributionResult(r *commands.ContributionResult) *ContributionResultResponse {
	return &ContributionResultResponse{
		ContributionID:       r.ContributionID,
		ItemID:               r.ItemID,
		Amount:               r.Amount.InexactFloat64(),
		NewContributedAmount: r.NewContributedAmount.InexactFloat64(),
		Completed:            r.Completed,
		Replayed:             r.IsReplayed,
	}
}

package response

import (
	"time"

	"baby-registry/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ItemID    uuid.UUID `json:"itemId"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func FromLease(l *shared.Lease) *ReservationResponse {
	return &ReservationResponse{
		ItemID:    l.ItemID,
		Email:     l.Holder,
		ExpiresAt: l.ExpiresAt,
	}
}

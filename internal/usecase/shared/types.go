package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key                  uuid.UUID
	Endpoint             string
	Status               string
	RequestHash          string
	ResultContributionID *uuid.UUID
	ResultTotal          *decimal.Decimal
	ExpiresAt            time.Time
}

// Lease is a short-lived hold on an item by a contributor email.
type Lease struct {
	ItemID    uuid.UUID
	Holder    string
	ExpiresAt time.Time
}

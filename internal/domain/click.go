package domain

import (
	"time"

	"github.com/google/uuid"
)

// OutboundClick records a user following a partner link.
type OutboundClick struct {
	ProviderID string           `json:"provider_id"`
	Category   ProviderCategory `json:"category"`
	OwnerID    *uuid.UUID       `json:"owner_id,omitempty"`
	URL        string           `json:"url"`
	OccurredAt time.Time        `json:"occurred_at"`
}

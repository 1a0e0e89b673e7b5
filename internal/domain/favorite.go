package domain

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteRecord is a saved offer. Records are inserted and deleted, never updated.
type FavoriteRecord struct {
	ID           uuid.UUID `db:"id" json:"id"`
	OwnerID      uuid.UUID `db:"owner_id" json:"owner_id"`
	Identity     string    `db:"identity" json:"identity"`
	Provider     string    `db:"provider" json:"provider"`
	Title        string    `db:"title" json:"title"`
	ImageURL     string    `db:"image_url" json:"image_url"`
	Price        *float64  `db:"price" json:"price,omitempty"`
	OutboundLink string    `db:"outbound_link" json:"outbound_link"`
	TypeTag      *string   `db:"type_tag" json:"type_tag,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

func (r FavoriteRecord) Key() OfferKey {
	return OfferKey{Identity: r.Identity, Provider: r.Provider}
}

package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/fitcity-offers/internal/domain"
)

// FavoriteRepository persists saved offers. Uniqueness of (owner, identity,
// provider) is kept by callers, not by the store.
type FavoriteRepository interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.FavoriteRecord, error)
	Insert(ctx context.Context, record domain.FavoriteRecord) (*domain.FavoriteRecord, error)
	DeleteByPrimaryKey(ctx context.Context, id uuid.UUID) error
}

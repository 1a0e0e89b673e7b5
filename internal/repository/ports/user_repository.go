package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/fitcity-offers/internal/domain"
)

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

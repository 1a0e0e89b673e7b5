package ports

import (
	"context"

	"github.com/njprem/fitcity-offers/internal/domain"
)

type SessionRepository interface {
	FindActiveSession(ctx context.Context, token string) (*domain.Session, error)
}

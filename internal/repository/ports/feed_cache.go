package ports

import (
	"context"
	"time"

	"github.com/njprem/fitcity-offers/internal/domain"
)

// FeedCache keeps the last fetched source document per display mode.
type FeedCache interface {
	Get(ctx context.Context, mode domain.DisplayMode) ([]byte, bool, error)
	Set(ctx context.Context, mode domain.DisplayMode, payload []byte, ttl time.Duration) error
}

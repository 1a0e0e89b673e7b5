package ports

import (
	"context"

	"github.com/njprem/fitcity-offers/internal/domain"
)

type ClickPublisher interface {
	PublishClick(ctx context.Context, click domain.OutboundClick) error
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/njprem/fitcity-offers/internal/catalog"
	"github.com/njprem/fitcity-offers/internal/domain"
	"github.com/njprem/fitcity-offers/internal/repository/ports"
)

var ErrProviderNotFound = errors.New("provider not found")

// ClickService turns a provider id into its outbound link and records the
// click. Publishing is best effort; a broken broker never blocks navigation.
type ClickService struct {
	catalog *catalog.Catalog
	clicks  ports.ClickPublisher
	logger  *zap.Logger
	now     func() time.Time
}

// NewClickService accepts a nil publisher, in which case clicks are only logged.
func NewClickService(c *catalog.Catalog, clicks ports.ClickPublisher, logger *zap.Logger) *ClickService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClickService{catalog: c, clicks: clicks, logger: logger, now: time.Now}
}

func (s *ClickService) Follow(ctx context.Context, providerID string, params domain.LinkParams, ownerID *uuid.UUID) (string, error) {
	provider, ok := s.catalog.Provider(providerID)
	if !ok {
		return "", ErrProviderNotFound
	}
	link, _ := s.catalog.BuildLink(provider.ID, params)

	click := domain.OutboundClick{
		ProviderID: provider.ID,
		Category:   provider.Category,
		OwnerID:    ownerID,
		URL:        link,
		OccurredAt: s.now().UTC(),
	}
	if s.clicks == nil {
		s.logger.Debug("outbound click", zap.String("provider_id", provider.ID))
		return link, nil
	}
	if err := s.clicks.PublishClick(ctx, click); err != nil {
		s.logger.Warn("click publish failed", zap.String("provider_id", provider.ID), zap.Error(err))
	}
	return link, nil
}

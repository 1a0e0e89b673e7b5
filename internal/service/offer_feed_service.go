package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/njprem/fitcity-offers/internal/domain"
	"github.com/njprem/fitcity-offers/internal/offers"
	"github.com/njprem/fitcity-offers/internal/repository/ports"
)

var ErrFeedUnavailable = errors.New("offer feed unavailable")

type DemoFeedLocation struct {
	Bucket string
	Object string
}

// OfferFeedService serves normalized feeds. The demo document lives in object
// storage and is cached in front of it.
type OfferFeedService struct {
	storage ports.ObjectStorage
	cache   ports.FeedCache
	demo    DemoFeedLocation
	ttl     time.Duration
	logger  *zap.Logger
}

func NewOfferFeedService(storage ports.ObjectStorage, cache ports.FeedCache, demo DemoFeedLocation, ttl time.Duration, logger *zap.Logger) *OfferFeedService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OfferFeedService{storage: storage, cache: cache, demo: demo, ttl: ttl, logger: logger}
}

// Normalize runs a caller-supplied document through the adapter for mode.
func (s *OfferFeedService) Normalize(mode domain.DisplayMode, payload []byte) ([]domain.NormalizedOffer, error) {
	return offers.NormalizeFeed(mode, payload)
}

func (s *OfferFeedService) Demo(ctx context.Context) ([]domain.NormalizedOffer, error) {
	payload, err := s.demoPayload(ctx)
	if err != nil {
		return nil, err
	}
	return offers.NormalizeFeed(domain.ModeDemo, payload)
}

// RefreshDemo reloads the demo document from storage into the cache. A
// document that does not decode is rejected and the cache is left alone.
func (s *OfferFeedService) RefreshDemo(ctx context.Context) ([]byte, error) {
	payload, err := s.storage.Download(ctx, s.demo.Bucket, s.demo.Object)
	if err != nil {
		s.logger.Error("demo feed download failed",
			zap.String("bucket", s.demo.Bucket),
			zap.String("object", s.demo.Object),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}

	raws, err := offers.DecodeFeed(domain.ModeDemo, payload)
	if err != nil {
		s.logger.Error("demo feed rejected", zap.String("object", s.demo.Object), zap.Error(err))
		return nil, err
	}

	if err := s.cache.Set(ctx, domain.ModeDemo, payload, s.ttl); err != nil {
		s.logger.Warn("demo feed cache write failed", zap.Error(err))
	}
	s.logger.Info("demo feed refreshed", zap.Int("offers", len(raws)), zap.Int("bytes", len(payload)))
	return payload, nil
}

func (s *OfferFeedService) demoPayload(ctx context.Context) ([]byte, error) {
	payload, ok, err := s.cache.Get(ctx, domain.ModeDemo)
	if err != nil {
		s.logger.Warn("demo feed cache read failed", zap.Error(err))
	}
	if ok {
		return payload, nil
	}
	return s.RefreshDemo(ctx)
}

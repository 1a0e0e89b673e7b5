package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/njprem/fitcity-offers/internal/domain"
	"github.com/njprem/fitcity-offers/internal/offers"
	"github.com/njprem/fitcity-offers/internal/repository/ports"
)

var (
	ErrUnauthenticatedWrite = errors.New("sign in to save offers")
	ErrFavoritingDisabled   = errors.New("offer cannot be saved")
	ErrMissingIdentity      = errors.New("offer has no identity")
	ErrPersistenceFailure   = errors.New("favorites store unavailable")
)

type ToggleOutcome string

const (
	ToggleSaved   ToggleOutcome = "saved"
	ToggleRemoved ToggleOutcome = "removed"
)

// FavoriteTarget is what the user toggled: a rendered offer or an already
// saved record. Exactly one field is set.
type FavoriteTarget struct {
	Offer  *domain.NormalizedOffer
	Record *domain.FavoriteRecord
}

func (t FavoriteTarget) ref() offers.FavoriteRef {
	if t.Record != nil {
		return offers.RefOfRecord(*t.Record)
	}
	if t.Offer != nil {
		return offers.RefOfOffer(*t.Offer)
	}
	return offers.FavoriteRef{}
}

// FavoriteManager keeps one owner's saved offers in memory, most recent
// first, and moves offers between absent and saved against the store. A
// failed store call leaves the collection untouched. Not safe for concurrent
// use.
type FavoriteManager struct {
	store  ports.FavoriteRepository
	owner  ports.OwnerContext
	logger *zap.Logger

	items    []domain.FavoriteRecord
	loadedBy *uuid.UUID
}

func NewFavoriteManager(store ports.FavoriteRepository, owner ports.OwnerContext, logger *zap.Logger) *FavoriteManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FavoriteManager{store: store, owner: owner, logger: logger}
}

// Refresh replaces the collection with the store's view for the current
// owner. Without an owner the collection is emptied.
func (m *FavoriteManager) Refresh(ctx context.Context) error {
	ownerID := m.owner.CurrentOwnerID()
	if !m.owner.IsAuthenticated() || ownerID == nil {
		m.items = nil
		m.loadedBy = nil
		return nil
	}

	records, err := m.store.ListByOwner(ctx, *ownerID)
	if err != nil {
		m.logger.Warn("favorites list failed", zap.String("owner_id", ownerID.String()), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	m.items = append([]domain.FavoriteRecord(nil), records...)
	id := *ownerID
	m.loadedBy = &id
	return nil
}

func (m *FavoriteManager) Items() []domain.FavoriteRecord {
	out := make([]domain.FavoriteRecord, len(m.items))
	copy(out, m.items)
	return out
}

func (m *FavoriteManager) IsSaved(target FavoriteTarget) bool {
	_, ok := m.find(target.ref())
	return ok
}

// Toggle saves an absent target or removes a saved one. Removal always goes
// through the stored primary key. Offers whose mode forbids favoriting are
// refused in both directions.
func (m *FavoriteManager) Toggle(ctx context.Context, target FavoriteTarget) (ToggleOutcome, error) {
	ownerID := m.owner.CurrentOwnerID()
	if !m.owner.IsAuthenticated() || ownerID == nil {
		return "", ErrUnauthenticatedWrite
	}
	if target.Offer != nil && !target.Offer.CanFavorite {
		return "", ErrFavoritingDisabled
	}
	if m.loadedBy == nil || *m.loadedBy != *ownerID {
		if err := m.Refresh(ctx); err != nil {
			return "", err
		}
	}

	ref := target.ref()
	existing, ok := m.find(ref)
	if !ok && ref.PrimaryKey != nil {
		// A stale record copy may have been saved again under a new key.
		existing, ok = m.find(offers.FavoriteRef{Key: ref.Key})
	}
	if ok {
		if err := m.remove(ctx, existing); err != nil {
			return "", err
		}
		return ToggleRemoved, nil
	}
	if ref.Key.Identity == "" {
		return "", ErrMissingIdentity
	}

	if err := m.save(ctx, m.recordFor(*ownerID, target)); err != nil {
		return "", err
	}
	return ToggleSaved, nil
}

func (m *FavoriteManager) recordFor(ownerID uuid.UUID, target FavoriteTarget) domain.FavoriteRecord {
	if target.Record != nil {
		record := *target.Record
		record.ID = uuid.Nil
		record.OwnerID = ownerID
		return record
	}

	offer := target.Offer
	record := domain.FavoriteRecord{
		OwnerID:      ownerID,
		Identity:     offer.Identity,
		Provider:     offer.Provider,
		Title:        offer.Title,
		ImageURL:     offer.ImageURL,
		OutboundLink: offer.OutboundLink,
	}
	if offer.Price != nil {
		price := *offer.Price
		record.Price = &price
	}
	if offer.TypeTag != nil {
		tag := *offer.TypeTag
		record.TypeTag = &tag
	}
	return record
}

func (m *FavoriteManager) save(ctx context.Context, record domain.FavoriteRecord) error {
	saved, err := m.store.Insert(ctx, record)
	if err != nil {
		m.logger.Warn("favorite insert failed",
			zap.String("identity", record.Identity),
			zap.String("provider", record.Provider),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}

	items := make([]domain.FavoriteRecord, 0, len(m.items)+1)
	items = append(items, *saved)
	m.items = append(items, m.items...)
	m.logger.Info("favorite saved", zap.String("id", saved.ID.String()), zap.String("provider", saved.Provider))
	return nil
}

func (m *FavoriteManager) remove(ctx context.Context, existing domain.FavoriteRecord) error {
	if err := m.store.DeleteByPrimaryKey(ctx, existing.ID); err != nil {
		m.logger.Warn("favorite delete failed", zap.String("id", existing.ID.String()), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}

	items := make([]domain.FavoriteRecord, 0, len(m.items))
	for _, item := range m.items {
		if item.ID != existing.ID {
			items = append(items, item)
		}
	}
	m.items = items
	m.logger.Info("favorite removed", zap.String("id", existing.ID.String()))
	return nil
}

func (m *FavoriteManager) find(ref offers.FavoriteRef) (domain.FavoriteRecord, bool) {
	for _, item := range m.items {
		if offers.SameFavorite(ref, offers.RefOfRecord(item)) {
			return item, true
		}
	}
	return domain.FavoriteRecord{}, false
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/njprem/fitcity-offers/internal/domain"
)

func liveOffer(identity, provider string) domain.NormalizedOffer {
	price := 129.0
	return domain.NormalizedOffer{
		Identity:     identity,
		Provider:     provider,
		Title:        "Lisbon city break",
		ImageURL:     "https://cdn.example.com/lisbon.jpg",
		Price:        &price,
		OutboundLink: "https://partner.example.com/" + identity,
		CanFavorite:  true,
		CanActivate:  true,
		Mode:         domain.ModeLive,
	}
}

func newManager(t *testing.T, repo *fakeFavoriteRepo) (*FavoriteManager, uuid.UUID) {
	t.Helper()
	ownerID := uuid.New()
	m := NewFavoriteManager(repo, fakeOwner{id: &ownerID}, nil)
	if err := m.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	return m, ownerID
}

func TestToggleSavesAndPrepends(t *testing.T) {
	repo := &fakeFavoriteRepo{}
	m, ownerID := newManager(t, repo)
	ctx := context.Background()

	first := liveOffer("offer-1", "Aviasales")
	second := liveOffer("offer-2", "Kiwi")

	for _, offer := range []domain.NormalizedOffer{first, second} {
		o := offer
		outcome, err := m.Toggle(ctx, FavoriteTarget{Offer: &o})
		if err != nil {
			t.Fatalf("Toggle returned error: %v", err)
		}
		if outcome != ToggleSaved {
			t.Fatalf("expected saved outcome, got %q", outcome)
		}
	}

	items := m.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 favorites, got %d", len(items))
	}
	if items[0].Identity != "offer-2" || items[1].Identity != "offer-1" {
		t.Fatalf("expected most recent first, got %s then %s", items[0].Identity, items[1].Identity)
	}
	if items[0].OwnerID != ownerID {
		t.Fatalf("expected owner %s, got %s", ownerID, items[0].OwnerID)
	}
	if items[0].Price == nil || *items[0].Price != 129 {
		t.Fatalf("expected price copied onto record")
	}
	if !m.IsSaved(FavoriteTarget{Offer: &first}) {
		t.Fatalf("expected first offer to be saved")
	}
}

func TestToggleTwiceRestoresCollection(t *testing.T) {
	repo := &fakeFavoriteRepo{}
	m, _ := newManager(t, repo)
	ctx := context.Background()

	kept := liveOffer("kept", "Kiwi")
	if _, err := m.Toggle(ctx, FavoriteTarget{Offer: &kept}); err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	before := m.Items()

	offer := liveOffer("offer-1", "Aviasales")
	if outcome, err := m.Toggle(ctx, FavoriteTarget{Offer: &offer}); err != nil || outcome != ToggleSaved {
		t.Fatalf("first toggle: outcome=%q err=%v", outcome, err)
	}
	if outcome, err := m.Toggle(ctx, FavoriteTarget{Offer: &offer}); err != nil || outcome != ToggleRemoved {
		t.Fatalf("second toggle: outcome=%q err=%v", outcome, err)
	}

	after := m.Items()
	if len(after) != len(before) || after[0].ID != before[0].ID {
		t.Fatalf("expected collection restored, before=%v after=%v", before, after)
	}
	if len(repo.deleteCalls) != 1 {
		t.Fatalf("expected one delete, got %d", len(repo.deleteCalls))
	}
}

func TestToggleDeletesByPrimaryKey(t *testing.T) {
	ownerID := uuid.New()
	stored := domain.FavoriteRecord{ID: uuid.New(), OwnerID: ownerID, Identity: "legacy-id", Provider: "Aviasales"}
	repo := &fakeFavoriteRepo{records: []domain.FavoriteRecord{stored}}
	m := NewFavoriteManager(repo, fakeOwner{id: &ownerID}, nil)
	if err := m.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}

	// The caller's copy carries a different identity; the primary key decides.
	target := stored
	target.Identity = "recomputed-id"
	outcome, err := m.Toggle(context.Background(), FavoriteTarget{Record: &target})
	if err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	if outcome != ToggleRemoved {
		t.Fatalf("expected removed outcome, got %q", outcome)
	}
	if len(repo.deleteCalls) != 1 || repo.deleteCalls[0] != stored.ID {
		t.Fatalf("expected delete by primary key %s, got %v", stored.ID, repo.deleteCalls)
	}
	if len(m.Items()) != 0 {
		t.Fatalf("expected collection to be empty")
	}
}

func TestToggleUnauthenticatedMakesNoStoreCall(t *testing.T) {
	repo := &fakeFavoriteRepo{}
	m := NewFavoriteManager(repo, fakeOwner{}, nil)

	offer := liveOffer("offer-1", "Aviasales")
	_, err := m.Toggle(context.Background(), FavoriteTarget{Offer: &offer})
	if !errors.Is(err, ErrUnauthenticatedWrite) {
		t.Fatalf("expected ErrUnauthenticatedWrite, got %v", err)
	}
	if repo.calls() != 0 {
		t.Fatalf("expected no store calls, got %d", repo.calls())
	}
}

func TestToggleRefusesDemoOffers(t *testing.T) {
	repo := &fakeFavoriteRepo{}
	m, _ := newManager(t, repo)

	offer := liveOffer("offer-1", "Aviasales")
	offer.CanFavorite = false
	offer.Mode = domain.ModeDemo
	if _, err := m.Toggle(context.Background(), FavoriteTarget{Offer: &offer}); !errors.Is(err, ErrFavoritingDisabled) {
		t.Fatalf("expected ErrFavoritingDisabled, got %v", err)
	}
	if repo.insertCalls != 0 {
		t.Fatalf("expected no insert")
	}
}

func TestToggleDemoOfferCannotRemoveSavedLiveOffer(t *testing.T) {
	repo := &fakeFavoriteRepo{}
	m, _ := newManager(t, repo)
	ctx := context.Background()

	live := liveOffer("offer-1", "Aviasales")
	if _, err := m.Toggle(ctx, FavoriteTarget{Offer: &live}); err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}

	demo := live
	demo.CanFavorite = false
	demo.CanActivate = false
	demo.Mode = domain.ModeDemo
	outcome, err := m.Toggle(ctx, FavoriteTarget{Offer: &demo})
	if !errors.Is(err, ErrFavoritingDisabled) {
		t.Fatalf("expected ErrFavoritingDisabled, got %v", err)
	}
	if outcome != "" {
		t.Fatalf("expected no outcome, got %q", outcome)
	}
	if len(repo.deleteCalls) != 0 {
		t.Fatalf("expected no delete, got %d", len(repo.deleteCalls))
	}
	if !m.IsSaved(FavoriteTarget{Offer: &live}) {
		t.Fatalf("expected live offer to stay saved")
	}
}

func TestToggleStaleRecordRemovesResavedCopy(t *testing.T) {
	ownerID := uuid.New()
	current := domain.FavoriteRecord{ID: uuid.New(), OwnerID: ownerID, Identity: "offer-1", Provider: "Kiwi"}
	repo := &fakeFavoriteRepo{records: []domain.FavoriteRecord{current}}
	m := NewFavoriteManager(repo, fakeOwner{id: &ownerID}, nil)
	if err := m.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}

	stale := current
	stale.ID = uuid.New()
	outcome, err := m.Toggle(context.Background(), FavoriteTarget{Record: &stale})
	if err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	if outcome != ToggleRemoved {
		t.Fatalf("expected removed outcome, got %q", outcome)
	}
	if repo.insertCalls != 0 {
		t.Fatalf("expected no duplicate insert, got %d", repo.insertCalls)
	}
	if len(repo.deleteCalls) != 1 || repo.deleteCalls[0] != current.ID {
		t.Fatalf("expected delete of %s, got %v", current.ID, repo.deleteCalls)
	}
}

func TestToggleRefusesMissingIdentity(t *testing.T) {
	repo := &fakeFavoriteRepo{}
	m, _ := newManager(t, repo)

	offer := liveOffer("", "Partner")
	if _, err := m.Toggle(context.Background(), FavoriteTarget{Offer: &offer}); !errors.Is(err, ErrMissingIdentity) {
		t.Fatalf("expected ErrMissingIdentity, got %v", err)
	}
	if _, err := m.Toggle(context.Background(), FavoriteTarget{}); !errors.Is(err, ErrMissingIdentity) {
		t.Fatalf("expected ErrMissingIdentity for empty target, got %v", err)
	}
	if repo.insertCalls != 0 {
		t.Fatalf("expected no insert")
	}
}

func TestToggleInsertFailureLeavesStateUntouched(t *testing.T) {
	repo := &fakeFavoriteRepo{}
	m, _ := newManager(t, repo)
	ctx := context.Background()

	kept := liveOffer("kept", "Kiwi")
	if _, err := m.Toggle(ctx, FavoriteTarget{Offer: &kept}); err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	before := m.Items()

	repo.insertErr = errors.New("connection reset")
	offer := liveOffer("offer-1", "Aviasales")
	outcome, err := m.Toggle(ctx, FavoriteTarget{Offer: &offer})
	if !errors.Is(err, ErrPersistenceFailure) {
		t.Fatalf("expected ErrPersistenceFailure, got %v", err)
	}
	if outcome != "" {
		t.Fatalf("expected no outcome on failed insert, got %q", outcome)
	}
	after := m.Items()
	if len(after) != len(before) || after[0].ID != before[0].ID {
		t.Fatalf("expected state unchanged after failed insert")
	}
}

func TestToggleDeleteFailureLeavesStateUntouched(t *testing.T) {
	repo := &fakeFavoriteRepo{}
	m, _ := newManager(t, repo)
	ctx := context.Background()

	offer := liveOffer("offer-1", "Aviasales")
	if _, err := m.Toggle(ctx, FavoriteTarget{Offer: &offer}); err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}

	repo.deleteErr = errors.New("timeout")
	outcome, err := m.Toggle(ctx, FavoriteTarget{Offer: &offer})
	if !errors.Is(err, ErrPersistenceFailure) {
		t.Fatalf("expected ErrPersistenceFailure, got %v", err)
	}
	if outcome != "" {
		t.Fatalf("expected no outcome on failed delete, got %q", outcome)
	}
	if !m.IsSaved(FavoriteTarget{Offer: &offer}) {
		t.Fatalf("expected offer to remain saved after failed delete")
	}
}

func TestRefreshWithoutOwnerEmptiesCollection(t *testing.T) {
	repo := &fakeFavoriteRepo{}
	m, _ := newManager(t, repo)
	offer := liveOffer("offer-1", "Aviasales")
	if _, err := m.Toggle(context.Background(), FavoriteTarget{Offer: &offer}); err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}

	m.owner = fakeOwner{}
	if err := m.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if len(m.Items()) != 0 {
		t.Fatalf("expected empty collection without owner")
	}
}

func TestToggleReloadsWhenOwnerChanges(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	repo := &fakeFavoriteRepo{records: []domain.FavoriteRecord{
		{ID: uuid.New(), OwnerID: bob, Identity: "offer-1", Provider: "Aviasales"},
	}}
	m := NewFavoriteManager(repo, fakeOwner{id: &alice}, nil)
	if err := m.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}

	m.owner = fakeOwner{id: &bob}
	offer := liveOffer("offer-1", "Aviasales")
	outcome, err := m.Toggle(context.Background(), FavoriteTarget{Offer: &offer})
	if err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	if outcome != ToggleRemoved {
		t.Fatalf("expected bob's saved offer to be removed, got %q", outcome)
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	repo := &fakeFavoriteRepo{}
	m, _ := newManager(t, repo)
	offer := liveOffer("offer-1", "Aviasales")
	if _, err := m.Toggle(context.Background(), FavoriteTarget{Offer: &offer}); err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}

	items := m.Items()
	items[0].Identity = "mutated"
	if m.Items()[0].Identity != "offer-1" {
		t.Fatalf("expected Items to return an independent copy")
	}
}

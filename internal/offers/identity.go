package offers

import (
	"github.com/google/uuid"

	"github.com/njprem/fitcity-offers/internal/domain"
)

// DefaultProvider names offers whose source did not say who sells them.
const DefaultProvider = "Partner"

// ComputeIdentity resolves the dedup key of a raw offer. Identity falls back
// through offer_id, id, cta.url and link; it is empty when none is present.
func ComputeIdentity(raw domain.RawOffer) domain.OfferKey {
	return domain.OfferKey{
		Identity: firstOf(raw.OfferID, raw.ID, raw.CTAURL, raw.Link),
		Provider: providerOf(raw),
	}
}

func providerOf(raw domain.RawOffer) string {
	if p := firstOf(raw.Provider); p != "" {
		return p
	}
	return DefaultProvider
}

// FavoriteRef is anything that can be compared against a saved favorite.
// PrimaryKey is only set for persisted records.
type FavoriteRef struct {
	PrimaryKey *uuid.UUID
	Key        domain.OfferKey
}

func RefOfOffer(o domain.NormalizedOffer) FavoriteRef {
	return FavoriteRef{Key: o.Key()}
}

func RefOfRecord(r domain.FavoriteRecord) FavoriteRef {
	ref := FavoriteRef{Key: r.Key()}
	if r.ID != uuid.Nil {
		id := r.ID
		ref.PrimaryKey = &id
	}
	return ref
}

// MatchRule compares two refs. decided is false when the rule has nothing to
// say and the next rule should be tried.
type MatchRule func(a, b FavoriteRef) (same, decided bool)

// MatchByPrimaryKey decides whenever both sides are persisted. Persisted keys
// win over recomputed identities because older rows may have been saved under
// a different identity derivation.
func MatchByPrimaryKey(a, b FavoriteRef) (bool, bool) {
	if a.PrimaryKey == nil || b.PrimaryKey == nil {
		return false, false
	}
	return *a.PrimaryKey == *b.PrimaryKey, true
}

// MatchByKey compares (identity, provider). An empty identity never matches.
func MatchByKey(a, b FavoriteRef) (bool, bool) {
	if a.Key.Identity == "" || b.Key.Identity == "" {
		return false, true
	}
	return a.Key == b.Key, true
}

var matchPolicy = []MatchRule{MatchByPrimaryKey, MatchByKey}

// SameFavorite applies the match rules in priority order.
func SameFavorite(a, b FavoriteRef) bool {
	for _, rule := range matchPolicy {
		if same, decided := rule(a, b); decided {
			return same
		}
	}
	return false
}

func firstOf(values ...*string) string {
	for _, v := range values {
		if v != nil && *v != "" {
			return *v
		}
	}
	return ""
}

func firstPtr(values ...*string) *string {
	for _, v := range values {
		if v != nil && *v != "" {
			s := *v
			return &s
		}
	}
	return nil
}

// Package offers turns raw offers from any source into the canonical shape the
// app renders, and resolves the identity used to deduplicate favorites.
package offers

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/njprem/fitcity-offers/internal/domain"
)

const (
	DefaultProviderColor = "#2563EB"

	currencySymbol    = "€"
	subtitleSeparator = " · "
	shortDateLayout   = "02 Jan"
)

var capabilityTable = map[domain.DisplayMode]domain.ModeCapabilities{
	domain.ModeDemo:      {CanFavorite: false, CanActivate: false, Badge: badge("Demo")},
	domain.ModeLive:      {CanFavorite: true, CanActivate: true},
	domain.ModeGenerated: {CanFavorite: true, CanActivate: true, Badge: badge("AI")},
}

func badge(label string) *string {
	return &label
}

// Capabilities looks a mode up in the capability table. Unknown modes get no
// capabilities and no badge.
func Capabilities(mode domain.DisplayMode) domain.ModeCapabilities {
	caps, ok := capabilityTable[mode]
	if !ok {
		return domain.ModeCapabilities{}
	}
	if caps.Badge != nil {
		caps.Badge = badge(*caps.Badge)
	}
	return caps
}

// Normalize never fails: missing fields degrade to nil or a default. Two calls
// with equal input return structurally equal offers.
func Normalize(raw domain.RawOffer, mode domain.DisplayMode) domain.NormalizedOffer {
	key := ComputeIdentity(raw)
	caps := Capabilities(mode)

	title := firstOf(raw.Title)
	if title == "" {
		title = key.Provider
	}

	providerColor := firstOf(raw.ProviderBrandColor, raw.ProviderColor)
	if providerColor == "" {
		providerColor = DefaultProviderColor
	}

	offer := domain.NormalizedOffer{
		Identity:      key.Identity,
		Provider:      key.Provider,
		Title:         title,
		ImageURL:      ResolveImage(firstOf(raw.Image, raw.ImageURL)),
		Price:         copyFloat(raw.Price),
		Transfers:     copyInt(raw.Transfers),
		DepartDate:    firstPtr(raw.DepartDate, raw.DepartureAt),
		OutboundLink:  firstOf(raw.Link, raw.CTAURL),
		ProviderColor: providerColor,
		TypeTag:       firstPtr(raw.Type),
		CanFavorite:   caps.CanFavorite,
		CanActivate:   caps.CanActivate,
		Badge:         caps.Badge,
		Mode:          mode,
	}
	offer.Subtitle = subtitle(offer.Price, offer.Transfers, offer.DepartDate, raw.Description)
	return offer
}

// subtitle prefers the priced summary and falls back to the raw description
// verbatim when there is no price.
func subtitle(price *float64, transfers *int, departDate *string, description *string) *string {
	if price == nil {
		return firstPtr(description)
	}

	parts := []string{FormatPrice(*price)}
	if transfers != nil {
		parts = append(parts, TransfersLabel(*transfers))
	}
	if departDate != nil {
		if d, ok := ShortDate(*departDate); ok {
			parts = append(parts, d)
		}
	}
	s := strings.Join(parts, subtitleSeparator)
	return &s
}

func FormatPrice(price float64) string {
	if price == math.Trunc(price) && math.Abs(price) < 1e15 {
		return currencySymbol + humanize.Comma(int64(price))
	}
	return currencySymbol + humanize.FormatFloat("#,###.##", price)
}

func TransfersLabel(transfers int) string {
	if transfers == 0 {
		return "Direct"
	}
	return fmt.Sprintf("%d stops", transfers)
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"}

// ShortDate formats a departure date as "02 Jan".
func ShortDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(shortDateLayout), true
		}
	}
	return "", false
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

package offers

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/njprem/fitcity-offers/internal/domain"
)

var ErrInvalidOffer = errors.New("offer must be a JSON object")

// ParseRawOffer reads a single offer document.
func ParseRawOffer(data []byte) (domain.RawOffer, error) {
	if !gjson.ValidBytes(data) {
		return domain.RawOffer{}, ErrInvalidOffer
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return domain.RawOffer{}, ErrInvalidOffer
	}
	return rawFromJSON(doc), nil
}

func rawFromJSON(item gjson.Result) domain.RawOffer {
	return domain.RawOffer{
		OfferID:            stringAt(item, "offer_id"),
		ID:                 stringAt(item, "id"),
		CTAURL:             stringAt(item, "cta.url"),
		Image:              stringAt(item, "image"),
		ImageURL:           stringAt(item, "image_url"),
		Link:               stringAt(item, "link"),
		Price:              floatAt(item, "price"),
		Transfers:          intAt(item, "transfers"),
		DepartDate:         stringAt(item, "depart_date"),
		DepartureAt:        stringAt(item, "departure_at"),
		Provider:           stringAt(item, "provider"),
		ProviderBrandColor: stringAt(item, "provider_meta.brand_color"),
		ProviderColor:      stringAt(item, "provider_color"),
		Type:               stringAt(item, "type"),
		Title:              stringAt(item, "title"),
		Description:        verbatimAt(item, "description"),
	}
}

// stringAt treats null, blank strings and nested documents as absent. Numbers
// are kept in their JSON text form so numeric ids survive.
func stringAt(item gjson.Result, path string) *string {
	v := item.Get(path)
	switch v.Type {
	case gjson.String, gjson.Number, gjson.True, gjson.False:
	default:
		return nil
	}
	s := strings.TrimSpace(v.String())
	if s == "" {
		return nil
	}
	return &s
}

// verbatimAt is stringAt without trimming. Whitespace-only text is absent.
func verbatimAt(item gjson.Result, path string) *string {
	v := item.Get(path)
	if v.Type != gjson.String || strings.TrimSpace(v.Str) == "" {
		return nil
	}
	s := v.Str
	return &s
}

// floatAt drops non-finite values; they cannot be rendered or encoded.
func floatAt(item gjson.Result, path string) *float64 {
	v := item.Get(path)
	var f float64
	switch v.Type {
	case gjson.Number:
		f = v.Float()
	case gjson.String:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func intAt(item gjson.Result, path string) *int {
	v := item.Get(path)
	switch v.Type {
	case gjson.Number:
		n := int(v.Int())
		return &n
	case gjson.String:
		n, err := strconv.Atoi(strings.TrimSpace(v.Str))
		if err != nil {
			return nil
		}
		return &n
	default:
		return nil
	}
}

package offers

import (
	"errors"

	"github.com/tidwall/gjson"

	"github.com/njprem/fitcity-offers/internal/domain"
)

var (
	ErrInvalidFeed = errors.New("offer feed is not valid JSON")
	ErrUnknownMode = errors.New("unknown offer display mode")
)

// sourceAdapter knows the envelope one source wraps its offers in. A bare JSON
// array is accepted from every source; a lone object is read as one offer.
type sourceAdapter struct {
	listPaths []string
}

var sourceAdapters = map[domain.DisplayMode]sourceAdapter{
	domain.ModeDemo:      {listPaths: []string{"offers"}},
	domain.ModeLive:      {listPaths: []string{"data", "offers"}},
	domain.ModeGenerated: {listPaths: []string{"recommendations", "offers"}},
}

func (a sourceAdapter) items(doc gjson.Result) []gjson.Result {
	if doc.IsArray() {
		return doc.Array()
	}
	if !doc.IsObject() {
		return nil
	}
	for _, path := range a.listPaths {
		if list := doc.Get(path); list.IsArray() {
			return list.Array()
		}
	}
	return []gjson.Result{doc}
}

// DecodeFeed reads a source document into raw offers. Items that are not JSON
// objects are skipped.
func DecodeFeed(mode domain.DisplayMode, payload []byte) ([]domain.RawOffer, error) {
	adapter, ok := sourceAdapters[mode]
	if !ok {
		return nil, ErrUnknownMode
	}
	if !gjson.ValidBytes(payload) {
		return nil, ErrInvalidFeed
	}

	items := adapter.items(gjson.ParseBytes(payload))
	out := make([]domain.RawOffer, 0, len(items))
	for _, item := range items {
		if !item.IsObject() {
			continue
		}
		out = append(out, rawFromJSON(item))
	}
	return out, nil
}

// NormalizeFeed decodes a source document and normalizes every offer in it.
func NormalizeFeed(mode domain.DisplayMode, payload []byte) ([]domain.NormalizedOffer, error) {
	raws, err := DecodeFeed(mode, payload)
	if err != nil {
		return nil, err
	}
	out := make([]domain.NormalizedOffer, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Normalize(raw, mode))
	}
	return out, nil
}

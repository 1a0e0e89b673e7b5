// Package catalog holds the immutable partner registry: providers by
// category, intent resolution and outbound link building.
package catalog

import (
	"github.com/njprem/fitcity-offers/internal/domain"
)

// Catalog is read-only after construction and safe to share between goroutines.
type Catalog struct {
	providers []domain.Provider
	byID      map[string]int
	intents   map[string][]domain.ProviderCategory
}

// Default builds the production partner table.
func Default() *Catalog {
	return New(defaultProviders(), defaultIntents())
}

// New copies providers and intents into a catalog. Providers without an id or
// link builder, and repeated ids, are skipped.
func New(providers []domain.Provider, intents map[string][]domain.ProviderCategory) *Catalog {
	c := &Catalog{
		providers: make([]domain.Provider, 0, len(providers)),
		byID:      make(map[string]int, len(providers)),
		intents:   make(map[string][]domain.ProviderCategory, len(intents)),
	}
	for _, p := range providers {
		if p.ID == "" || p.Link == nil {
			continue
		}
		if _, dup := c.byID[p.ID]; dup {
			continue
		}
		c.byID[p.ID] = len(c.providers)
		c.providers = append(c.providers, p)
	}
	for intent, categories := range intents {
		c.intents[intentKey(intent)] = append([]domain.ProviderCategory(nil), categories...)
	}
	return c
}

func (c *Catalog) All() []domain.Provider {
	return append([]domain.Provider(nil), c.providers...)
}

func (c *Catalog) Provider(id string) (domain.Provider, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.Provider{}, false
	}
	return c.providers[idx], true
}

// ByCategory returns the category members in insertion order. Unknown or empty
// categories give an empty, non-nil slice.
func (c *Catalog) ByCategory(category domain.ProviderCategory) []domain.Provider {
	out := make([]domain.Provider, 0)
	for _, p := range c.providers {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// CategoriesForIntent returns the mapped categories, or nil when the intent is
// not in the table.
func (c *Catalog) CategoriesForIntent(intent string) []domain.ProviderCategory {
	categories, ok := c.intents[intentKey(intent)]
	if !ok {
		return nil
	}
	return append([]domain.ProviderCategory(nil), categories...)
}

// ForIntent resolves an intent to providers. An unmapped intent is a normal
// outcome and yields an empty slice.
func (c *Catalog) ForIntent(intent string) []domain.Provider {
	out := make([]domain.Provider, 0)
	for _, category := range c.CategoriesForIntent(intent) {
		out = append(out, c.ByCategory(category)...)
	}
	return out
}

// BuildLink runs the provider's link builder. It reports false only when the
// provider id is unknown.
func (c *Catalog) BuildLink(providerID string, params domain.LinkParams) (string, bool) {
	p, ok := c.Provider(providerID)
	if !ok {
		return "", false
	}
	return p.Link(params), true
}

package domain

type ProviderCategory string

const (
	CategoryFlights      ProviderCategory = "flights"
	CategoryTransfers    ProviderCategory = "transfers"
	CategoryTickets      ProviderCategory = "tickets"
	CategoryActivities   ProviderCategory = "activities"
	CategoryCars         ProviderCategory = "cars"
	CategoryESIM         ProviderCategory = "esim"
	CategoryCompensation ProviderCategory = "compensation"
	CategoryInsurance    ProviderCategory = "insurance"
	CategoryFood         ProviderCategory = "food"
	CategoryTours        ProviderCategory = "tours"
	CategoryTransport    ProviderCategory = "transport"
	CategoryOther        ProviderCategory = "other"
)

var providerCategories = []ProviderCategory{
	CategoryFlights,
	CategoryTransfers,
	CategoryTickets,
	CategoryActivities,
	CategoryCars,
	CategoryESIM,
	CategoryCompensation,
	CategoryInsurance,
	CategoryFood,
	CategoryTours,
	CategoryTransport,
	CategoryOther,
}

// ProviderCategories returns the closed category set in display order.
func ProviderCategories() []ProviderCategory {
	out := make([]ProviderCategory, len(providerCategories))
	copy(out, providerCategories)
	return out
}

func (c ProviderCategory) Valid() bool {
	for _, known := range providerCategories {
		if c == known {
			return true
		}
	}
	return false
}

// LinkParams carries the optional route context a partner link can be
// personalised with. The zero value is valid and yields generic links.
type LinkParams struct {
	FromIATA    string `json:"from_iata,omitempty" query:"from_iata"`
	ToIATA      string `json:"to_iata,omitempty" query:"to_iata"`
	DepartDate  string `json:"depart_date,omitempty" query:"depart_date"`
	ReturnDate  string `json:"return_date,omitempty" query:"return_date"`
	Passengers  int    `json:"passengers,omitempty" query:"passengers"`
	City        string `json:"city,omitempty" query:"city"`
	Destination string `json:"destination,omitempty" query:"destination"`
	Query       string `json:"query,omitempty" query:"query"`
}

// LinkBuilder must be pure and total: it returns an absolute URL for every input.
type LinkBuilder func(params LinkParams) string

type Provider struct {
	ID          string           `json:"id"`
	Category    ProviderCategory `json:"category"`
	Name        string           `json:"name"`
	BrandColor  *string          `json:"brand_color,omitempty"`
	Description string           `json:"description"`
	CTALabel    string           `json:"cta_label"`
	Thumbnail   *string          `json:"thumbnail,omitempty"`
	Link        LinkBuilder      `json:"-"`
}

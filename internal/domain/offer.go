package domain

// DisplayMode identifies where an offer came from and what the user may do with it.
type DisplayMode string

const (
	ModeDemo      DisplayMode = "demo"
	ModeLive      DisplayMode = "live"
	ModeGenerated DisplayMode = "generated"
)

func (m DisplayMode) Valid() bool {
	switch m {
	case ModeDemo, ModeLive, ModeGenerated:
		return true
	default:
		return false
	}
}

type ModeCapabilities struct {
	CanFavorite bool
	CanActivate bool
	Badge       *string
}

// RawOffer is one loosely-shaped offer as it arrived from a source. Every
// synonym a known source uses has its own field; nil means absent.
type RawOffer struct {
	OfferID            *string  `json:"offer_id,omitempty"`
	ID                 *string  `json:"id,omitempty"`
	CTAURL             *string  `json:"cta_url,omitempty"`
	Image              *string  `json:"image,omitempty"`
	ImageURL           *string  `json:"image_url,omitempty"`
	Link               *string  `json:"link,omitempty"`
	Price              *float64 `json:"price,omitempty"`
	Transfers          *int     `json:"transfers,omitempty"`
	DepartDate         *string  `json:"depart_date,omitempty"`
	DepartureAt        *string  `json:"departure_at,omitempty"`
	Provider           *string  `json:"provider,omitempty"`
	ProviderBrandColor *string  `json:"provider_brand_color,omitempty"`
	ProviderColor      *string  `json:"provider_color,omitempty"`
	Type               *string  `json:"type,omitempty"`
	Title              *string  `json:"title,omitempty"`
	Description        *string  `json:"description,omitempty"`
}

// OfferKey is the (identity, provider) pair used to recognise the same offer
// across fetches.
type OfferKey struct {
	Identity string `json:"identity"`
	Provider string `json:"provider"`
}

type NormalizedOffer struct {
	Identity      string      `json:"identity"`
	Provider      string      `json:"provider"`
	Title         string      `json:"title"`
	Subtitle      *string     `json:"subtitle,omitempty"`
	ImageURL      string      `json:"image_url"`
	Price         *float64    `json:"price"`
	Transfers     *int        `json:"transfers"`
	DepartDate    *string     `json:"depart_date"`
	OutboundLink  string      `json:"outbound_link"`
	ProviderColor string      `json:"provider_color"`
	TypeTag       *string     `json:"type_tag"`
	CanFavorite   bool        `json:"can_favorite"`
	CanActivate   bool        `json:"can_activate"`
	Badge         *string     `json:"badge"`
	Mode          DisplayMode `json:"mode"`
}

func (o NormalizedOffer) Key() OfferKey {
	return OfferKey{Identity: o.Identity, Provider: o.Provider}
}

package catalog

import "github.com/njprem/fitcity-offers/internal/domain"

func color(hex string) *string {
	return &hex
}

func thumbnail(id string) *string {
	path := "/providers/" + id + ".svg"
	return &path
}

// defaultProviders is the partner table, grouped by category. Order inside a
// category is the order partners are recommended in.
func defaultProviders() []domain.Provider {
	return []domain.Provider{
		{
			ID:          "aviasales",
			Category:    domain.CategoryFlights,
			Name:        "Aviasales",
			BrandColor:  color("#0C73FE"),
			Description: "Compare airfares from hundreds of airlines and agencies in one search.",
			CTALabel:    "Search flights",
			Thumbnail:   thumbnail("aviasales"),
			Link:        aviasalesLink,
		},
		{
			ID:          "kiwi",
			Category:    domain.CategoryFlights,
			Name:        "Kiwi.com",
			BrandColor:  color("#00A991"),
			Description: "Virtual interlining that combines carriers which do not normally cooperate.",
			CTALabel:    "Find routes",
			Thumbnail:   thumbnail("kiwi"),
			Link:        keywordLink("https://www.kiwi.com/en/", marker(), "destination", byDestination),
		},
		{
			ID:          "kiwitaxi",
			Category:    domain.CategoryTransfers,
			Name:        "Kiwitaxi",
			BrandColor:  color("#FFC700"),
			Description: "Pre-booked airport transfers with fixed prices in over 100 countries.",
			CTALabel:    "Book a transfer",
			Thumbnail:   thumbnail("kiwitaxi"),
			Link:        keywordLink("https://kiwitaxi.com/en", marker(), "city", byCity),
		},
		{
			ID:          "gettransfer",
			Category:    domain.CategoryTransfers,
			Name:        "GetTransfer",
			BrandColor:  color("#1C2B4B"),
			Description: "Compare offers from local drivers and transfer companies.",
			CTALabel:    "Get offers",
			Thumbnail:   thumbnail("gettransfer"),
			Link:        keywordLink("https://gettransfer.com/en", marker(), "to", byCity),
		},
		{
			ID:          "tiqets",
			Category:    domain.CategoryTickets,
			Name:        "Tiqets",
			BrandColor:  color("#00A2B8"),
			Description: "Instant mobile tickets for museums and attractions.",
			CTALabel:    "Get tickets",
			Thumbnail:   thumbnail("tiqets"),
			Link:        keywordLink("https://www.tiqets.com/en/search", []trackingParam{{key: "partner", value: "travelpayouts.com"}, {key: "tq_campaign", value: travelpayoutsMarker}}, "q", byQuery),
		},
		{
			ID:          "getyourguide",
			Category:    domain.CategoryActivities,
			Name:        "GetYourGuide",
			BrandColor:  color("#FF5533"),
			Description: "Tours, day trips and experiences with free cancellation.",
			CTALabel:    "Explore activities",
			Thumbnail:   thumbnail("getyourguide"),
			Link:        keywordLink("https://www.getyourguide.com/s/", []trackingParam{{key: "partner_id", value: "FITCITY"}, {key: "cmp", value: travelpayoutsMarker}}, "q", byQuery),
		},
		{
			ID:          "klook",
			Category:    domain.CategoryActivities,
			Name:        "Klook",
			BrandColor:  color("#FF5B00"),
			Description: "Attractions, passes and local experiences across Asia and Europe.",
			CTALabel:    "Browse experiences",
			Thumbnail:   thumbnail("klook"),
			Link:        keywordLink("https://www.klook.com/en-US/search/", []trackingParam{{key: "aid", value: travelpayoutsMarker}}, "query", byQuery),
		},
		{
			ID:          "localrent",
			Category:    domain.CategoryCars,
			Name:        "Localrent",
			BrandColor:  color("#2F80ED"),
			Description: "Car hire from local rental companies without hidden fees.",
			CTALabel:    "Rent a car",
			Thumbnail:   thumbnail("localrent"),
			Link:        keywordLink("https://localrent.com/en/", marker(), "city", byCity),
		},
		{
			ID:          "economybookings",
			Category:    domain.CategoryCars,
			Name:        "EconomyBookings",
			BrandColor:  color("#E30613"),
			Description: "Worldwide car rental comparison with full coverage options.",
			CTALabel:    "Compare cars",
			Thumbnail:   thumbnail("economybookings"),
			Link:        keywordLink("https://www.economybookings.com/", []trackingParam{{key: "btag", value: travelpayoutsMarker}}, "location", byCity),
		},
		{
			ID:          "airalo",
			Category:    domain.CategoryESIM,
			Name:        "Airalo",
			BrandColor:  color("#F26A4B"),
			Description: "Prepaid eSIM data plans for more than 200 destinations.",
			CTALabel:    "Get an eSIM",
			Thumbnail:   thumbnail("airalo"),
			Link:        keywordLink("https://www.airalo.com/", marker(), "country", byDestination),
		},
		{
			ID:          "yesim",
			Category:    domain.CategoryESIM,
			Name:        "Yesim",
			BrandColor:  color("#6C4DF6"),
			Description: "Travel eSIM with pay-as-you-go and unlimited data plans.",
			CTALabel:    "Choose a plan",
			Thumbnail:   thumbnail("yesim"),
			Link:        keywordLink("https://yesim.app/", marker(), "country", byDestination),
		},
		{
			ID:          "airhelp",
			Category:    domain.CategoryCompensation,
			Name:        "AirHelp",
			BrandColor:  color("#FF0E5B"),
			Description: "Claim up to 600 EUR for delayed, cancelled or overbooked flights.",
			CTALabel:    "Check compensation",
			Thumbnail:   thumbnail("airhelp"),
			Link:        keywordLink("https://www.airhelp.com/en/", []trackingParam{{key: "a_aid", value: travelpayoutsMarker}}, "", noKeyword),
		},
		{
			ID:          "compensair",
			Category:    domain.CategoryCompensation,
			Name:        "Compensair",
			BrandColor:  color("#1E3A8A"),
			Description: "No-win no-fee flight disruption claims.",
			CTALabel:    "Start a claim",
			Thumbnail:   thumbnail("compensair"),
			Link:        keywordLink("https://www.compensair.com/", marker(), "", noKeyword),
		},
		{
			ID:          "ektatraveling",
			Category:    domain.CategoryInsurance,
			Name:        "EKTA",
			BrandColor:  color("#00B67A"),
			Description: "Travel medical insurance issued online in minutes.",
			CTALabel:    "Get insured",
			Thumbnail:   thumbnail("ektatraveling"),
			Link:        keywordLink("https://ektatraveling.com/", marker(), "country", byDestination),
		},
		{
			ID:          "visitorscoverage",
			Category:    domain.CategoryInsurance,
			Name:        "VisitorsCoverage",
			BrandColor:  color("#003B71"),
			Description: "Compare travel insurance plans for trips abroad.",
			CTALabel:    "Compare plans",
			Thumbnail:   thumbnail("visitorscoverage"),
			Link:        keywordLink("https://www.visitorscoverage.com/", []trackingParam{{key: "affid", value: travelpayoutsMarker}}, "destination", byDestination),
		},
		{
			ID:          "eatwith",
			Category:    domain.CategoryFood,
			Name:        "Eatwith",
			BrandColor:  color("#FF4F4F"),
			Description: "Dinners, cooking classes and food tours hosted by locals.",
			CTALabel:    "Find a table",
			Thumbnail:   thumbnail("eatwith"),
			Link:        keywordLink("https://www.eatwith.com/search", marker(), "q", byCity),
		},
		{
			ID:          "wegotrip",
			Category:    domain.CategoryTours,
			Name:        "WeGoTrip",
			BrandColor:  color("#5B3CC4"),
			Description: "Self-guided audio tours you can start at any time.",
			CTALabel:    "Pick a tour",
			Thumbnail:   thumbnail("wegotrip"),
			Link:        keywordLink("https://wegotrip.com/en/", marker(), "q", byQuery),
		},
		{
			ID:          "omio",
			Category:    domain.CategoryTransport,
			Name:        "Omio",
			BrandColor:  color("#132968"),
			Description: "Trains, buses and ferries across Europe in one booking.",
			CTALabel:    "Search trains and buses",
			Thumbnail:   thumbnail("omio"),
			Link:        keywordLink("https://www.omio.com/", []trackingParam{{key: "partner_id", value: travelpayoutsMarker}}, "destination", byDestination),
		},
		{
			ID:          "12go",
			Category:    domain.CategoryTransport,
			Name:        "12Go",
			BrandColor:  color("#F7A600"),
			Description: "Ground and sea transport across Southeast Asia.",
			CTALabel:    "Book transport",
			Thumbnail:   thumbnail("12go"),
			Link:        keywordLink("https://12go.asia/en", []trackingParam{{key: "z", value: travelpayoutsMarker}}, "to", byDestination),
		},
	}
}

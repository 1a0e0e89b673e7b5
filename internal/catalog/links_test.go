package catalog

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njprem/fitcity-offers/internal/domain"
)

func TestCompactDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "2025-06-10", want: "1006", ok: true},
		{in: "1999-12-31", want: "3112", ok: true},
		{in: "2025-6-10"},
		{in: "10-06-2025"},
		{in: "2025-06-10T00:00:00Z"},
		{in: " 2025-06-10"},
		{in: ""},
		{in: "abcd-ef-gh"},
	}
	for _, tc := range cases {
		got, ok := CompactDate(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
		if ok {
			assert.Len(t, got, 4)
		}
	}
}

func TestAviasalesOneWay(t *testing.T) {
	link := aviasalesLink(domain.LinkParams{FromIATA: "OTP", ToIATA: "CDG", DepartDate: "2025-06-10", Passengers: 1})
	assert.Equal(t, "https://www.aviasales.com/search/OTP1006CDG1?marker=688834&locale=en&currency=EUR", link)
}

func TestAviasalesRoundTrip(t *testing.T) {
	link := aviasalesLink(domain.LinkParams{
		FromIATA:   "otp ",
		ToIATA:     "cdg",
		DepartDate: "2025-06-10",
		ReturnDate: "2025-06-17",
		Passengers: 2,
	})
	assert.Equal(t, "https://www.aviasales.com/search/OTP1006CDG17062?marker=688834&locale=en&currency=EUR", link)
}

func TestAviasalesInvalidReturnDateIsDropped(t *testing.T) {
	oneWay := aviasalesLink(domain.LinkParams{FromIATA: "OTP", ToIATA: "CDG", DepartDate: "2025-06-10"})
	withBadReturn := aviasalesLink(domain.LinkParams{FromIATA: "OTP", ToIATA: "CDG", DepartDate: "2025-06-10", ReturnDate: "17/06/2025"})
	assert.Equal(t, oneWay, withBadReturn)
	assert.Contains(t, oneWay, "/search/OTP1006CDG1?")
}

func TestAviasalesInvalidDepartDate(t *testing.T) {
	for _, date := range []string{"", "2025/06/10", "tomorrow", "2025-06-1"} {
		link := aviasalesLink(domain.LinkParams{FromIATA: "OTP", ToIATA: "CDG", DepartDate: date, ReturnDate: "2025-06-17"})

		parsed, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, "/search", parsed.Path, "date %q", date)
		assert.Equal(t, "OTP", parsed.Query().Get("origin_iata"))
		assert.Equal(t, "CDG", parsed.Query().Get("destination_iata"))
		assert.Equal(t, travelpayoutsMarker, parsed.Query().Get("marker"))
		assert.NotContains(t, link, "1706")
	}
}

func TestAviasalesMissingAirports(t *testing.T) {
	generic := "https://www.aviasales.com/?marker=688834"
	assert.Equal(t, generic, aviasalesLink(domain.LinkParams{}))
	assert.Equal(t, generic, aviasalesLink(domain.LinkParams{FromIATA: "OTP", DepartDate: "2025-06-10"}))
	assert.Equal(t, generic, aviasalesLink(domain.LinkParams{ToIATA: "CDG"}))
}

func TestAviasalesPassengerDigit(t *testing.T) {
	assert.Contains(t, aviasalesLink(domain.LinkParams{FromIATA: "OTP", ToIATA: "CDG", DepartDate: "2025-06-10", Passengers: 0}), "CDG1?")
	assert.Contains(t, aviasalesLink(domain.LinkParams{FromIATA: "OTP", ToIATA: "CDG", DepartDate: "2025-06-10", Passengers: -3}), "CDG1?")
	assert.Contains(t, aviasalesLink(domain.LinkParams{FromIATA: "OTP", ToIATA: "CDG", DepartDate: "2025-06-10", Passengers: 14}), "CDG9?")
}

func TestAviasalesEscapesFreeText(t *testing.T) {
	link := aviasalesLink(domain.LinkParams{FromIATA: "A B", ToIATA: "C/D", DepartDate: "2025-06-10"})
	_, err := url.Parse(link)
	require.NoError(t, err)
	assert.NotContains(t, link, " ")
	assert.Contains(t, link, "marker=688834")
}

func TestTrackedURL(t *testing.T) {
	tracking := []trackingParam{{key: "marker", value: "1"}}

	assert.Equal(t, "https://x.test/?marker=1", trackedURL("https://x.test/", tracking, "city", ""))
	assert.Equal(t, "https://x.test/?marker=1", trackedURL("https://x.test/", tracking, "city", "   "))
	assert.Equal(t, "https://x.test/?marker=1&city=S%C3%A3o+Paulo+%26+Rio", trackedURL("https://x.test/", tracking, "city", "São Paulo & Rio"))
	assert.Equal(t, "https://x.test/?a=b&marker=1", trackedURL("https://x.test/?a=b", tracking, "", "ignored"))
}

func TestEveryProviderBuildsAbsoluteURLs(t *testing.T) {
	inputs := []domain.LinkParams{
		{},
		{City: "Lisbon"},
		{Destination: "Bali & Lombok", Query: "sunset <tour>"},
		{FromIATA: "OTP", ToIATA: "CDG", DepartDate: "2025-06-10", ReturnDate: "bad", Passengers: 3},
	}
	for _, p := range defaultProviders() {
		for _, in := range inputs {
			link := p.Link(in)
			parsed, err := url.Parse(link)
			require.NoError(t, err, "provider %s", p.ID)
			assert.True(t, parsed.IsAbs(), "provider %s built %q", p.ID, link)
			assert.NotEmpty(t, parsed.Host, "provider %s", p.ID)
			assert.NotEmpty(t, parsed.RawQuery, "provider %s lost its tracking parameter", p.ID)
			assert.False(t, strings.ContainsAny(link, " <>"), "provider %s left unescaped text in %q", p.ID, link)
		}
	}
}

func TestKeywordLinkAppendsEncodedKeyword(t *testing.T) {
	link := keywordLink("https://kiwitaxi.com/en", marker(), "city", byCity)(domain.LinkParams{City: "New York"})
	assert.Equal(t, "https://kiwitaxi.com/en?marker=688834&city=New+York", link)

	generic := keywordLink("https://kiwitaxi.com/en", marker(), "city", byCity)(domain.LinkParams{})
	assert.Equal(t, "https://kiwitaxi.com/en?marker=688834", generic)
}

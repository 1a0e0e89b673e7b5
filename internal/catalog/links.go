package catalog

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/njprem/fitcity-offers/internal/domain"
)

const (
	travelpayoutsMarker = "688834"

	aviasalesHost     = "https://www.aviasales.com"
	aviasalesLocale   = "en"
	aviasalesCurrency = "EUR"
	maxPassengerDigit = 9
)

var isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// CompactDate turns a strict YYYY-MM-DD string into the DDMM token used in
// flight-search paths. Day and month are cut at fixed offsets.
func CompactDate(date string) (string, bool) {
	if !isoDate.MatchString(date) {
		return "", false
	}
	return date[8:10] + date[5:7], true
}

type trackingParam struct {
	key   string
	value string
}

func marker() []trackingParam {
	return []trackingParam{{key: "marker", value: travelpayoutsMarker}}
}

// trackedURL writes the partner tracking parameters first, in order, and then
// the optional keyword parameter when it is not blank.
func trackedURL(base string, tracking []trackingParam, keywordKey, keyword string) string {
	var b strings.Builder
	b.WriteString(base)
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	write := func(key, value string) {
		b.WriteString(sep)
		b.WriteString(url.QueryEscape(key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
		sep = "&"
	}
	for _, p := range tracking {
		write(p.key, p.value)
	}
	if keywordKey != "" {
		if kw := strings.TrimSpace(keyword); kw != "" {
			write(keywordKey, kw)
		}
	}
	return b.String()
}

type keywordPicker func(domain.LinkParams) string

func byCity(p domain.LinkParams) string {
	return firstNonBlank(p.City, p.Destination, p.ToIATA)
}

func byDestination(p domain.LinkParams) string {
	return firstNonBlank(p.Destination, p.City, p.ToIATA)
}

func byQuery(p domain.LinkParams) string {
	return firstNonBlank(p.Query, p.Destination, p.City)
}

func noKeyword(domain.LinkParams) string {
	return ""
}

// keywordLink builds the common partner link: generic tracking URL, optionally
// suffixed with one encoded keyword.
func keywordLink(base string, tracking []trackingParam, keywordKey string, pick keywordPicker) domain.LinkBuilder {
	return func(p domain.LinkParams) string {
		return trackedURL(base, tracking, keywordKey, pick(p))
	}
}

// aviasalesLink encodes a flight search as a single path token:
// origin + DDMM + destination [+ return DDMM] + passenger digit.
func aviasalesLink(p domain.LinkParams) string {
	origin := iataCode(p.FromIATA)
	destination := iataCode(p.ToIATA)
	if origin == "" || destination == "" {
		return trackedURL(aviasalesHost+"/", marker(), "", "")
	}

	searchTracking := append(marker(),
		trackingParam{key: "locale", value: aviasalesLocale},
		trackingParam{key: "currency", value: aviasalesCurrency},
	)

	depart, ok := CompactDate(strings.TrimSpace(p.DepartDate))
	if !ok {
		route := []trackingParam{
			{key: "origin_iata", value: origin},
			{key: "destination_iata", value: destination},
		}
		return trackedURL(aviasalesHost+"/search", append(route, searchTracking...), "", "")
	}

	token := origin + depart + destination
	if ret, ok := CompactDate(strings.TrimSpace(p.ReturnDate)); ok {
		token += ret
	}
	token += strconv.Itoa(passengerDigit(p.Passengers))

	return trackedURL(aviasalesHost+"/search/"+url.PathEscape(token), searchTracking, "", "")
}

func passengerDigit(n int) int {
	switch {
	case n < 1:
		return 1
	case n > maxPassengerDigit:
		return maxPassengerDigit
	default:
		return n
	}
}

func iataCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

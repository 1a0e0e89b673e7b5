package catalog

import (
	"strings"

	"github.com/njprem/fitcity-offers/internal/domain"
)

// defaultIntents maps classifier intents to categories. "hotel" resolves to
// the other category, which has no partner yet.
func defaultIntents() map[string][]domain.ProviderCategory {
	return map[string][]domain.ProviderCategory{
		"flight":        {domain.CategoryFlights},
		"flights":       {domain.CategoryFlights},
		"airfare":       {domain.CategoryFlights},
		"transfer":      {domain.CategoryTransfers},
		"airport_taxi":  {domain.CategoryTransfers},
		"tickets":       {domain.CategoryTickets, domain.CategoryActivities},
		"attraction":    {domain.CategoryTickets, domain.CategoryActivities},
		"museum":        {domain.CategoryTickets},
		"activity":      {domain.CategoryActivities, domain.CategoryTours},
		"things_to_do":  {domain.CategoryActivities, domain.CategoryTours},
		"car":           {domain.CategoryCars},
		"car_rental":    {domain.CategoryCars},
		"esim":          {domain.CategoryESIM},
		"connectivity":  {domain.CategoryESIM},
		"compensation":  {domain.CategoryCompensation},
		"flight_delay":  {domain.CategoryCompensation},
		"insurance":     {domain.CategoryInsurance},
		"food":          {domain.CategoryFood},
		"restaurant":    {domain.CategoryFood},
		"tour":          {domain.CategoryTours, domain.CategoryActivities},
		"transport":     {domain.CategoryTransport},
		"train":         {domain.CategoryTransport},
		"bus":           {domain.CategoryTransport},
		"hotel":         {domain.CategoryOther},
		"accommodation": {domain.CategoryOther},
	}
}

func intentKey(intent string) string {
	return strings.ToLower(strings.TrimSpace(intent))
}

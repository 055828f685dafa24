package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"btmportal/models"
)

// rawOption is a seed-data option whose NGN price is still a human-readable
// figure or range string (e.g. "₦170,000 - ₦200,000"). These strings are
// normalized into numeric bounds exactly once, when a Catalog is built; the
// rest of the portal only ever sees structured MinNGN/MaxNGN values.
type rawOption struct {
	Type       string
	PriceRange string
}

type rawService struct {
	ID       string
	Label    string
	PriceNGN float64
	PriceUSD float64
	Options  []rawOption
}

// Primary meet & greet tiers are priced per flow. USD prices are fixed on the
// international flow; the domestic flow derives USD from the configured rate.
var primarySeed = map[models.Flow][]rawService{
	models.FlowDomestic: {
		{ID: "standard-meet-greet", Label: "Standard Meet and Greet", PriceNGN: 15000},
		{ID: "vip-meet-greet", Label: "VIP Meet and Greet", PriceNGN: 30000},
	},
	models.FlowInternational: {
		{ID: "standard-meet-greet", Label: "Standard Meet and Greet", PriceNGN: 20000, PriceUSD: 20},
		{ID: "vip-meet-greet", Label: "VIP Meet and Greet", PriceNGN: 35000, PriceUSD: 40},
	},
}

// Additional services are settled offline and shared by both flows.
var additionalSeed = []rawService{
	{
		ID:    "car-hire",
		Label: "Car Hire",
		Options: []rawOption{
			{Type: "Bus", PriceRange: "₦170,000 - ₦200,000"},
			{Type: "Saloon", PriceRange: "₦150,000 - ₦180,000"},
			{Type: "SUV", PriceRange: "₦205,000 - ₦280,000"},
		},
	},
	{
		ID:    "airport-transfer",
		Label: "Airport Transfer",
		Options: []rawOption{
			{Type: "Saloon Car", PriceRange: "₦90,000"},
			{Type: "SUV", PriceRange: "₦130,000 - ₦180,000"},
		},
	},
	{ID: "lounge-services", Label: "International Lounge Access", PriceNGN: 30200},
	{
		ID:    "escort-services",
		Label: "Security Escort Vehicle",
		Options: []rawOption{
			{Type: "Half Day", PriceRange: "₦103,000 - ₦150,000"},
			{Type: "Full Day", PriceRange: "₦210,000 - ₦250,000"},
		},
	},
	{ID: "tour-entertainment", Label: "Tour / Entertainment"},
}

// Reference lists used by the forms.
var (
	ReferralSources = []string{
		"Google Search",
		"Social Media",
		"Friend/Family Referral",
		"Travel Agency",
		"Previous Customer",
		"Advertisement",
		"Other",
	}

	DepartureCities = []string{
		"London", "New York", "Dubai", "Paris", "Johannesburg", "Other",
	}

	domesticCities = []string{
		"Lagos", "Abuja", "Port Harcourt", "Kano", "Enugu", "Kaduna",
		"Owerri", "Benin City", "Ibadan", "Calabar", "Uyo", "Other",
	}

	internationalCities = []string{"Lagos", "Abuja", "Port Harcourt", "Kano"}
)

// ArrivalCities returns the arrival-city choices for a booking flow.
func ArrivalCities(flow models.Flow) []string {
	if flow == models.FlowDomestic {
		return domesticCities
	}
	return internationalCities
}

// parseRange extracts up to two NGN bounds from a human-readable price or
// price-range string, stripping the currency glyph and thousands separators.
// A string with a single figure yields max == 0.
func parseRange(s string) (min, max float64, err error) {
	parts := strings.Split(s, "-")
	if len(parts) > 2 {
		return 0, 0, fmt.Errorf("malformed price range %q", s)
	}
	min, err = parseAmount(parts[0])
	if err != nil {
		return 0, 0, err
	}
	if len(parts) == 2 {
		max, err = parseAmount(parts[1])
		if err != nil {
			return 0, 0, err
		}
		if max < min {
			return 0, 0, fmt.Errorf("inverted price range %q", s)
		}
	}
	return min, max, nil
}

func parseAmount(s string) (float64, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "₦")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable price %q: %w", s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative price %q", s)
	}
	return v, nil
}

func buildService(raw rawService, tag models.ServiceTag) (models.Service, error) {
	svc := models.Service{
		ID:       raw.ID,
		Label:    raw.Label,
		Tag:      tag,
		PriceNGN: raw.PriceNGN,
		PriceUSD: raw.PriceUSD,
	}
	for _, opt := range raw.Options {
		min, max, err := parseRange(opt.PriceRange)
		if err != nil {
			return models.Service{}, fmt.Errorf("service %s option %s: %w", raw.ID, opt.Type, err)
		}
		svc.Options = append(svc.Options, models.ServiceOption{
			Type:   opt.Type,
			MinNGN: min,
			MaxNGN: max,
		})
	}
	return svc, nil
}

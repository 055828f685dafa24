package models

// ServiceTag marks how a catalog entry is settled.
type ServiceTag string

const (
	// TagOnline services are paid through the portal and enter the numeric total.
	TagOnline ServiceTag = "online"
	// TagOffline services are settled outside the portal ("contact us" line items).
	TagOffline ServiceTag = "offline"
)

// ServiceOption is a priced sub-option of an offline service (e.g. a vehicle
// class). Price bounds are normalized NGN figures; MaxNGN is zero when the
// option carries a single figure rather than a range.
type ServiceOption struct {
	Type   string  `json:"type"`
	MinNGN float64 `json:"minNGN"`
	MaxNGN float64 `json:"maxNGN,omitempty"`
}

// Service is a catalog entry. Flat-price entries carry PriceNGN (and
// optionally PriceUSD; when absent the USD figure is derived from the
// configured exchange rate). Option-priced entries carry Options instead.
type Service struct {
	ID       string          `json:"id"`
	Label    string          `json:"label"`
	Tag      ServiceTag      `json:"tag"`
	PriceNGN float64         `json:"price,omitempty"`
	PriceUSD float64         `json:"dollar,omitempty"`
	Options  []ServiceOption `json:"options,omitempty"`
}

// Priced reports whether the entry carries a flat price. Option-priced and
// quote-on-request entries are not priced.
func (s Service) Priced() bool {
	return s.PriceNGN > 0 || s.PriceUSD > 0
}

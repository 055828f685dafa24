package models

// Flow discriminates which booking form produced a submission.
type Flow string

const (
	FlowDomestic      Flow = "domestic"
	FlowInternational Flow = "international"
)

// SelectedServiceDetail is a fully resolved selected-service record attached
// to the outbound payload. Field names match what the backend has always
// received from the forms.
type SelectedServiceDetail struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	PriceNGN float64 `json:"price"`
	PriceUSD float64 `json:"dollar,omitempty"`
}

// BookingSubmission is the booking form payload. Totals and service details
// are recomputed portal-side before submission; client-sent figures are
// overwritten. TotalPrice is always the canonical NGN total regardless of the
// display currency active at submit time.
type BookingSubmission struct {
	FullName string `json:"fullName" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,min=8,max=20"`

	Services []string `json:"services" binding:"required,min=1"`

	FlightDate    string `json:"flightDate" binding:"required"`
	FlightTime    string `json:"flightTime" binding:"required"`
	FlightNumber  string `json:"flightNumber" binding:"required,max=50"`
	DepartureCity string `json:"departureCity" binding:"required"`
	ArrivalCity   string `json:"arrivalCity" binding:"required"`
	Passengers    string `json:"passengers" binding:"required"`

	SpecialRequests string `json:"specialRequests,omitempty"`
	DiscountCode    string `json:"discountCode,omitempty"`
	ReferralSource  string `json:"referralSource,omitempty"`

	// Return-leg booking. ReturnDate is mandatory only when the flag is set.
	ReturnService bool   `json:"returnService"`
	ReturnDate    string `json:"returnDate,omitempty" binding:"required_if=ReturnService true"`

	Type      Flow   `json:"type"`
	Reference string `json:"reference,omitempty"`

	TotalPrice              float64                 `json:"totalPrice"`
	TotalPriceUSD           float64                 `json:"totalPriceUSD,omitempty"`
	SelectedServicesDetails []SelectedServiceDetail `json:"selectedServicesDetails,omitempty"`
}

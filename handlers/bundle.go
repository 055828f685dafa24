package handlers

// HandlerBundle groups the portal's handlers for route registration.
type HandlerBundle struct {
	Booking  *BookingHandler
	Feedback *FeedbackHandler
	Customer *CustomerHandler
	Payment  *PaymentHandler
	Currency *CurrencyHandler
	Services *ServicesHandler
}

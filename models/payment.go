package models

// PaymentRequest asks the backend to initiate payment for a booking.
type PaymentRequest struct {
	FullName  string  `json:"fullName" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Amount    float64 `json:"totalPrice" binding:"required,gt=0"`
	Currency  string  `json:"currency" binding:"required,oneof=NGN USD"`
	Reference string  `json:"reference,omitempty"`
}

// PaymentRecord is the backend's record of an initiated payment.
type PaymentRecord struct {
	FullName   string  `json:"fullName"`
	Email      string  `json:"email"`
	TotalPrice float64 `json:"totalPrice"`
	Currency   string  `json:"currency"`
	Reference  string  `json:"reference"`
}

// PaymentInitiation is the backend response to an initiate-payment call.
type PaymentInitiation struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	Reference  string `json:"reference,omitempty"`
	PaymentURL string `json:"paymentUrl,omitempty"`
}

// PaymentVerification is the backend response to a verify-payment call.
type PaymentVerification struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Payment PaymentRecord `json:"payment"`
}

// SubmissionResponse is the backend's generic {success, message} reply shape.
type SubmissionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

package portal

import (
	"context"

	"btmportal/models"
	"btmportal/services/pricing"
)

// PortalService owns the submission flows: it validates form payloads,
// recomputes totals portal-side and hands the finished payload to the backend
// gateway. Nothing here persists; every submission is a one-shot snapshot.
type PortalService interface {
	SubmitBooking(ctx context.Context, flow models.Flow, sub models.BookingSubmission) (*models.SubmissionResponse, error)
	SubmitFeedback(ctx context.Context, fb models.Feedback) (*models.SubmissionResponse, error)
	SubmitCustomerDetails(ctx context.Context, cd models.CustomerDetails) (*models.SubmissionResponse, error)
	InitiatePayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentInitiation, error)
	VerifyPayment(ctx context.Context, reference string) (*models.PaymentVerification, error)
	Quote(flow models.Flow, selection []string, returnService bool) (pricing.Result, error)
}

// Gateway is the outbound boundary the service submits through.
type Gateway interface {
	SubmitBooking(ctx context.Context, sub models.BookingSubmission) (*models.SubmissionResponse, error)
	SubmitFeedback(ctx context.Context, fb models.Feedback) (*models.SubmissionResponse, error)
	SubmitCustomerDetails(ctx context.Context, cd models.CustomerDetails) (*models.SubmissionResponse, error)
	InitiatePayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentInitiation, error)
	VerifyPayment(ctx context.Context, reference string) (*models.PaymentVerification, error)
}

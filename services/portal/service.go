package portal

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"btmportal/models"
	"btmportal/services/pricing"
)

// ErrInvalidSubmission marks client-side validation failures. These are
// reported to the caller and never sent over the wire.
var ErrInvalidSubmission = errors.New("invalid submission")

// DefaultPortalService is the production PortalService.
type DefaultPortalService struct {
	Gateway     Gateway
	Aggregators map[models.Flow]*pricing.Aggregator
	Logger      *zap.Logger

	validate *validator.Validate
}

func NewDefaultPortalService(gw Gateway, aggs map[models.Flow]*pricing.Aggregator, logger *zap.Logger) *DefaultPortalService {
	v := validator.New()
	// Reuse the gin binding tags so the wire contract is validated the same
	// way no matter which layer the payload enters through.
	v.SetTagName("binding")
	return &DefaultPortalService{
		Gateway:     gw,
		Aggregators: aggs,
		Logger:      logger,
		validate:    v,
	}
}

// SubmitBooking validates the form, recomputes the totals from the catalog
// (client-sent figures are never trusted), merges the pricing result into the
// payload and forwards it. The canonical NGN total is what gets submitted
// regardless of the display currency active at submit time.
func (s *DefaultPortalService) SubmitBooking(ctx context.Context, flow models.Flow, sub models.BookingSubmission) (*models.SubmissionResponse, error) {
	agg, ok := s.Aggregators[flow]
	if !ok {
		return nil, fmt.Errorf("%w: unknown booking flow %q", ErrInvalidSubmission, flow)
	}
	sub.Type = flow

	if err := s.validate.Struct(sub); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSubmission, err)
	}

	res := agg.Compute(sub.Services, sub.ReturnService)
	agg.Merge(res, sub.Services, &sub)
	if sub.Reference == "" {
		sub.Reference = uuid.New().String()
	}

	s.Logger.Info("submitting booking",
		zap.String("flow", string(flow)),
		zap.String("reference", sub.Reference),
		zap.Float64("totalNGN", sub.TotalPrice),
		zap.Float64("totalUSD", sub.TotalPriceUSD),
	)
	return s.Gateway.SubmitBooking(ctx, sub)
}

// SubmitFeedback validates and forwards a service-feedback form.
func (s *DefaultPortalService) SubmitFeedback(ctx context.Context, fb models.Feedback) (*models.SubmissionResponse, error) {
	if err := s.validate.Struct(fb); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSubmission, err)
	}
	return s.Gateway.SubmitFeedback(ctx, fb)
}

// SubmitCustomerDetails validates and forwards a check-in report.
func (s *DefaultPortalService) SubmitCustomerDetails(ctx context.Context, cd models.CustomerDetails) (*models.SubmissionResponse, error) {
	if err := s.validate.Struct(cd); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSubmission, err)
	}
	return s.Gateway.SubmitCustomerDetails(ctx, cd)
}

// InitiatePayment forwards a payment-initiation request, minting a client
// reference when the caller did not supply one.
func (s *DefaultPortalService) InitiatePayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentInitiation, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSubmission, err)
	}
	if req.Reference == "" {
		req.Reference = uuid.New().String()
	}
	return s.Gateway.InitiatePayment(ctx, req)
}

// VerifyPayment checks a payment reference with the backend.
func (s *DefaultPortalService) VerifyPayment(ctx context.Context, reference string) (*models.PaymentVerification, error) {
	if reference == "" {
		return nil, fmt.Errorf("%w: payment reference is required", ErrInvalidSubmission)
	}
	return s.Gateway.VerifyPayment(ctx, reference)
}

// Quote recomputes the pricing result for a selection without submitting
// anything. Used by the live total display.
func (s *DefaultPortalService) Quote(flow models.Flow, selection []string, returnService bool) (pricing.Result, error) {
	agg, ok := s.Aggregators[flow]
	if !ok {
		return pricing.Result{}, fmt.Errorf("%w: unknown booking flow %q", ErrInvalidSubmission, flow)
	}
	return agg.Compute(selection, returnService), nil
}

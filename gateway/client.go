// Package gateway is the portal's only outbound HTTP boundary: the remote
// backend that records submissions and drives payment.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"btmportal/models"
)

// Client talks to the backend's named endpoints. Every call is a single
// timeout-bounded attempt; there are no automatic retries.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// SubmitBooking posts a booking payload to POST /booking.
func (c *Client) SubmitBooking(ctx context.Context, sub models.BookingSubmission) (*models.SubmissionResponse, error) {
	return c.postJSON(ctx, "/booking", sub)
}

// SubmitFeedback posts a feedback payload to POST /feedback.
func (c *Client) SubmitFeedback(ctx context.Context, fb models.Feedback) (*models.SubmissionResponse, error) {
	return c.postJSON(ctx, "/feedback", fb)
}

// SubmitCustomerDetails posts a check-in report to POST /customer.
func (c *Client) SubmitCustomerDetails(ctx context.Context, cd models.CustomerDetails) (*models.SubmissionResponse, error) {
	return c.postJSON(ctx, "/customer", cd)
}

// InitiatePayment asks the backend to start payment for a booking.
func (c *Client) InitiatePayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentInitiation, error) {
	var out models.PaymentInitiation
	if err := c.do(ctx, http.MethodPost, "/initiate-payment", req, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, declined(out.Message)
	}
	return &out, nil
}

// VerifyPayment checks a payment reference with the backend.
func (c *Client) VerifyPayment(ctx context.Context, reference string) (*models.PaymentVerification, error) {
	path := "/verify-payment?reference=" + url.QueryEscape(reference)
	var out models.PaymentVerification
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, declined(out.Message)
	}
	return &out, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) (*models.SubmissionResponse, error) {
	var out models.SubmissionResponse
	if err := c.do(ctx, http.MethodPost, path, payload, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, declined(out.Message)
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding request for %s failed: %w", path, err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request for %s failed: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return c.classify(path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Surface the backend's message when the error body is well formed,
		// a generic failure otherwise. Raw bodies are never propagated.
		var serverErr models.SubmissionResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&serverErr); decodeErr == nil && serverErr.Message != "" {
			return &SubmissionError{Message: serverErr.Message}
		}
		return &SubmissionError{Message: fmt.Sprintf("submission failed with status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Warn("gateway: unexpected response shape", zap.String("path", path), zap.Error(err))
		return &SubmissionError{Message: "received an unexpected response from the booking service"}
	}
	return nil
}

// classify maps transport failures into the timeout / unreachable taxonomy.
func (c *Client) classify(path string, err error) error {
	var netErr net.Error
	timedOut := errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout())
	if timedOut {
		c.logger.Warn("gateway: request timed out", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrBackendTimeout, err)
	}
	c.logger.Warn("gateway: request failed", zap.String("path", path), zap.Error(err))
	return fmt.Errorf("%w: %v", ErrBackendUnreachable, err)
}

func declined(message string) error {
	if message == "" {
		message = "the booking service declined the request"
	}
	return &SubmissionError{Message: message}
}

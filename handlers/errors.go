package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"btmportal/gateway"
	"btmportal/services/portal"
	"btmportal/utils"
)

// respondSubmissionError maps the submission error taxonomy onto HTTP
// responses. Validation failures never reached the network; timeouts,
// unreachable-backend and backend-declined failures each get a distinct
// user-facing message, and the form data stays client-side for a manual
// retry.
func respondSubmissionError(c *gin.Context, logger *zap.Logger, err error) {
	var subErr *gateway.SubmissionError
	switch {
	case errors.Is(err, portal.ErrInvalidSubmission):
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", err.Error())
	case errors.Is(err, gateway.ErrBackendTimeout):
		utils.JSONError(c, http.StatusGatewayTimeout, "The request timed out. Please try again.", "")
	case errors.Is(err, gateway.ErrBackendUnreachable):
		utils.JSONError(c, http.StatusBadGateway, "Could not connect to the server.", "")
	case errors.As(err, &subErr):
		utils.JSONError(c, http.StatusBadGateway, subErr.Message, "")
	default:
		logger.Error("submission failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong while submitting.", "")
	}
}

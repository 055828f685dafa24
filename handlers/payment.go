package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"btmportal/models"
	"btmportal/services/portal"
	"btmportal/utils"
)

// PaymentHandler forwards payment initiation and verification to the backend.
type PaymentHandler struct {
	Portal portal.PortalService
	Logger *zap.Logger
}

func NewPaymentHandler(svc portal.PortalService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Portal: svc, Logger: logger}
}

// Initiate handles POST /api/payment/initiate.
func (h *PaymentHandler) Initiate(c *gin.Context) {
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	initiation, err := h.Portal.InitiatePayment(c.Request.Context(), req)
	if err != nil {
		respondSubmissionError(c, h.Logger, err)
		return
	}

	c.JSON(http.StatusOK, initiation)
}

// Verify handles GET /api/payment/verify?reference=...
func (h *PaymentHandler) Verify(c *gin.Context) {
	reference := c.Query("reference")
	verification, err := h.Portal.VerifyPayment(c.Request.Context(), reference)
	if err != nil {
		respondSubmissionError(c, h.Logger, err)
		return
	}

	c.JSON(http.StatusOK, verification)
}

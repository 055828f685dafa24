package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"btmportal/models"
	"btmportal/services/portal"
	"btmportal/utils"
)

// BookingHandler serves the domestic and international booking flows.
type BookingHandler struct {
	Portal portal.PortalService
	Logger *zap.Logger
}

func NewBookingHandler(svc portal.PortalService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Portal: svc, Logger: logger}
}

// SubmitDomestic handles POST /api/booking/domestic.
func (h *BookingHandler) SubmitDomestic(c *gin.Context) {
	h.submit(c, models.FlowDomestic)
}

// SubmitInternational handles POST /api/booking/international.
func (h *BookingHandler) SubmitInternational(c *gin.Context) {
	h.submit(c, models.FlowInternational)
}

func (h *BookingHandler) submit(c *gin.Context, flow models.Flow) {
	var sub models.BookingSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	resp, err := h.Portal.SubmitBooking(c.Request.Context(), flow, sub)
	if err != nil {
		respondSubmissionError(c, h.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": resp.Message,
	})
}

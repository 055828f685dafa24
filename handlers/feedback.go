package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"btmportal/models"
	"btmportal/services/portal"
	"btmportal/utils"
)

// FeedbackHandler serves the service-feedback form.
type FeedbackHandler struct {
	Portal portal.PortalService
	Logger *zap.Logger
}

func NewFeedbackHandler(svc portal.PortalService, logger *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{Portal: svc, Logger: logger}
}

// Submit handles POST /api/feedback.
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var fb models.Feedback
	if err := c.ShouldBindJSON(&fb); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	resp, err := h.Portal.SubmitFeedback(c.Request.Context(), fb)
	if err != nil {
		respondSubmissionError(c, h.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": resp.Message})
}

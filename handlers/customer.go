package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"btmportal/models"
	"btmportal/services/portal"
	"btmportal/utils"
)

// CustomerHandler serves the customer check-in report form.
type CustomerHandler struct {
	Portal portal.PortalService
	Logger *zap.Logger
}

func NewCustomerHandler(svc portal.PortalService, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{Portal: svc, Logger: logger}
}

// Submit handles POST /api/customer.
func (h *CustomerHandler) Submit(c *gin.Context) {
	var cd models.CustomerDetails
	if err := c.ShouldBindJSON(&cd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	resp, err := h.Portal.SubmitCustomerDetails(c.Request.Context(), cd)
	if err != nil {
		respondSubmissionError(c, h.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": resp.Message})
}

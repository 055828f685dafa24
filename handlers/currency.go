package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"btmportal/middleware"
	"btmportal/services/currency"
	"btmportal/utils"
)

// CurrencyHandler exposes the session-scoped display currency.
type CurrencyHandler struct {
	Sessions  currency.Store
	Converter *currency.Converter
	Logger    *zap.Logger
}

func NewCurrencyHandler(sessions currency.Store, conv *currency.Converter, logger *zap.Logger) *CurrencyHandler {
	return &CurrencyHandler{Sessions: sessions, Converter: conv, Logger: logger}
}

// Get handles GET /api/currency.
func (h *CurrencyHandler) Get(c *gin.Context) {
	code, err := h.Sessions.Get(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		h.Logger.Error("currency: session read failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to read display currency", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"currency": code, "rate": h.Converter.Rate()})
}

// Toggle handles POST /api/currency/toggle, flipping NGN <-> USD.
func (h *CurrencyHandler) Toggle(c *gin.Context) {
	code, err := h.Sessions.Toggle(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		h.Logger.Error("currency: toggle failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to toggle display currency", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"currency": code, "rate": h.Converter.Rate()})
}

// Set handles POST /api/currency. The oneof binding makes unrecognized codes
// unrepresentable past this point.
func (h *CurrencyHandler) Set(c *gin.Context) {
	var body struct {
		Currency string `json:"currency" binding:"required,oneof=NGN USD"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	code := currency.Code(body.Currency)
	if err := h.Sessions.Set(c.Request.Context(), middleware.SessionID(c), code); err != nil {
		h.Logger.Error("currency: session write failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to set display currency", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"currency": code, "rate": h.Converter.Rate()})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"btmportal/middleware"
	"btmportal/models"
	"btmportal/services/catalog"
	"btmportal/services/currency"
	"btmportal/services/portal"
	"btmportal/utils"
)

// ServicesHandler renders the service catalog and pricing quotes in the
// session's display currency.
type ServicesHandler struct {
	Portal    portal.PortalService
	Catalogs  map[models.Flow]*catalog.Catalog
	Sessions  currency.Store
	Converter *currency.Converter
	Logger    *zap.Logger
}

func NewServicesHandler(svc portal.PortalService, cats map[models.Flow]*catalog.Catalog, sessions currency.Store, conv *currency.Converter, logger *zap.Logger) *ServicesHandler {
	return &ServicesHandler{Portal: svc, Catalogs: cats, Sessions: sessions, Converter: conv, Logger: logger}
}

type serviceOptionView struct {
	Type         string `json:"type"`
	DisplayPrice string `json:"displayPrice"`
}

type serviceView struct {
	ID           string              `json:"id"`
	Label        string              `json:"label"`
	Tag          models.ServiceTag   `json:"tag"`
	DisplayPrice string              `json:"displayPrice,omitempty"`
	Options      []serviceOptionView `json:"options,omitempty"`
}

// List handles GET /api/services?flow=domestic|international.
func (h *ServicesHandler) List(c *gin.Context) {
	flow := models.Flow(c.DefaultQuery("flow", string(models.FlowInternational)))
	cat, ok := h.Catalogs[flow]
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Unknown booking flow", string(flow))
		return
	}

	display, err := h.Sessions.Get(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		h.Logger.Error("services: session read failed", zap.Error(err))
		display = currency.DefaultCode
	}

	views := make([]serviceView, 0, len(cat.Services()))
	for _, svc := range cat.Services() {
		view := serviceView{ID: svc.ID, Label: svc.Label, Tag: svc.Tag}
		if svc.Priced() {
			view.DisplayPrice = h.displayPrice(svc, display)
		}
		for _, opt := range svc.Options {
			view.Options = append(view.Options, serviceOptionView{
				Type:         opt.Type,
				DisplayPrice: h.Converter.FormatRange(opt.MinNGN, opt.MaxNGN, display),
			})
		}
		views = append(views, view)
	}

	c.JSON(http.StatusOK, gin.H{
		"flow":     flow,
		"currency": display,
		"services": views,
		"form": gin.H{
			"departureCities": catalog.DepartureCities,
			"arrivalCities":   catalog.ArrivalCities(flow),
			"referralSources": catalog.ReferralSources,
		},
	})
}

// Quote handles POST /api/quote: a live pricing preview for a selection.
func (h *ServicesHandler) Quote(c *gin.Context) {
	var body struct {
		Flow          models.Flow `json:"flow" binding:"required,oneof=domestic international"`
		Services      []string    `json:"services"`
		ReturnService bool        `json:"returnService"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	res, err := h.Portal.Quote(body.Flow, body.Services, body.ReturnService)
	if err != nil {
		respondSubmissionError(c, h.Logger, err)
		return
	}

	display, sErr := h.Sessions.Get(c.Request.Context(), middleware.SessionID(c))
	if sErr != nil {
		h.Logger.Error("quote: session read failed", zap.Error(sErr))
		display = currency.DefaultCode
	}

	var displayTotal string
	if display == currency.USD {
		displayTotal = h.Converter.Format(res.TotalUSD, currency.USD, currency.USD)
	} else {
		displayTotal = h.Converter.Format(res.TotalNGN, currency.NGN, currency.NGN)
	}

	c.JSON(http.StatusOK, gin.H{
		"quote":        res,
		"currency":     display,
		"displayTotal": displayTotal,
	})
}

// displayPrice prefers the catalog's fixed USD figure over a derived one when
// rendering in USD.
func (h *ServicesHandler) displayPrice(svc models.Service, display currency.Code) string {
	if display == currency.USD && svc.PriceUSD > 0 {
		return h.Converter.Format(svc.PriceUSD, currency.USD, currency.USD)
	}
	return h.Converter.Format(svc.PriceNGN, currency.NGN, display)
}

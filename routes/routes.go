package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"btmportal/handlers"
	"btmportal/middleware"
)

// RegisterBookingRoutes registers the booking form endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.POST("/domestic", hb.Booking.SubmitDomestic)
		api.POST("/international", hb.Booking.SubmitInternational)
	}
}

// RegisterSubmissionRoutes registers the feedback and check-in endpoints.
func RegisterSubmissionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/feedback", hb.Feedback.Submit)
		api.POST("/customer", hb.Customer.Submit)
	}
}

// RegisterPaymentRoutes registers payment initiation and verification.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payment")
	{
		api.POST("/initiate", hb.Payment.Initiate)
		api.GET("/verify", hb.Payment.Verify)
	}
}

// RegisterCurrencyRoutes registers the display-currency endpoints.
func RegisterCurrencyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/currency")
	{
		api.GET("", hb.Currency.Get)
		api.POST("", hb.Currency.Set)
		api.POST("/toggle", hb.Currency.Toggle)
	}
}

// RegisterCatalogRoutes registers the catalog and quote endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.Services.List)
		api.POST("/quote", hb.Services.Quote)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "BTM portal is up"})
	})
}

// RegisterRoutes sets up CORS, session handling and every endpoint group.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.SessionHeader},
		ExposeHeaders:    []string{middleware.SessionHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.SessionMiddleware())

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterSubmissionRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterCurrencyRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
}

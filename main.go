// File: btmportal/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"btmportal/config"
	"btmportal/gateway"
	"btmportal/handlers"
	"btmportal/middleware"
	"btmportal/models"
	"btmportal/routes"
	"btmportal/services/catalog"
	"btmportal/services/currency"
	"btmportal/services/portal"
	"btmportal/services/pricing"
	"btmportal/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()

	converter, err := currency.NewConverter(config.AppConfig.USDRate)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid exchange rate configuration: %v", err)
	}

	// Per-flow catalogs and pricing aggregators.
	catalogs := make(map[models.Flow]*catalog.Catalog)
	aggregators := make(map[models.Flow]*pricing.Aggregator)
	for _, flow := range []models.Flow{models.FlowDomestic, models.FlowInternational} {
		cat, err := catalog.New(flow)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to build %s catalog: %v", flow, err)
		}
		catalogs[flow] = cat
		aggregators[flow] = pricing.NewAggregator(cat, converter)
	}

	// Outbound gateway to the remote backend.
	backend := gateway.NewClient(
		config.AppConfig.APIBase,
		time.Duration(config.AppConfig.SubmitTimeoutSeconds)*time.Second,
		logger,
	)

	// Session-scoped display-currency state.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	currencySessions := currency.NewRedisStore(utils.GetSessionCacheClient(), sessionTTL)

	portalService := portal.NewDefaultPortalService(backend, aggregators, logger)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := &handlers.HandlerBundle{
		Booking:  handlers.NewBookingHandler(portalService, logger),
		Feedback: handlers.NewFeedbackHandler(portalService, logger),
		Customer: handlers.NewCustomerHandler(portalService, logger),
		Payment:  handlers.NewPaymentHandler(portalService, logger),
		Currency: handlers.NewCurrencyHandler(currencySessions, converter, logger),
		Services: handlers.NewServicesHandler(portalService, catalogs, currencySessions, converter, logger),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

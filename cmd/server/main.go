// Package main is the entry point for the flight price optimizer service.
//
//	@title			Flight Price Optimizer API
//	@version		1.0.0
//	@description	Searches the Amadeus flight offers API for itineraries within a price ceiling.
//
//	@contact.name	API Support
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/skylinesaver/flight-price-optimizer/docs"

	flighthttp "github.com/skylinesaver/flight-price-optimizer/internal/adapter/http"
	"github.com/skylinesaver/flight-price-optimizer/internal/adapter/http/middleware"
	"github.com/skylinesaver/flight-price-optimizer/internal/adapter/provider/amadeus"
	"github.com/skylinesaver/flight-price-optimizer/internal/config"
	"github.com/skylinesaver/flight-price-optimizer/internal/infrastructure/logger"
	"github.com/skylinesaver/flight-price-optimizer/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.LoggerConfig())

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("timezone", cfg.Location().String()).
		Str("amadeus_base_url", cfg.Amadeus.BaseURL).
		Msg("Configuration loaded")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.IsDevelopment()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Zerolog())
	setupRoutes(e, cfg, log)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// setupRoutes wires the flight offers client, use case and handler.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger) {
	client := amadeus.NewClient(
		amadeus.Credentials{
			ClientID:     cfg.Amadeus.ClientID,
			ClientSecret: cfg.Amadeus.ClientSecret,
		},
		amadeus.WithBaseURL(cfg.Amadeus.BaseURL),
		amadeus.WithLogger(log.Zerolog()),
	)

	flightUseCase := usecase.NewFlightSearchUseCase(client, &usecase.Config{
		Location: cfg.Location(),
		Logger:   log,
	})

	flighthttp.RegisterRoutes(e, flighthttp.NewFlightHandler(flightUseCase))

	if !cfg.IsProduction() {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}
}

// gracefulShutdown blocks until SIGINT/SIGTERM, then drains in-flight requests.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}

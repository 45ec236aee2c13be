package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"parking-console/internal/config"
	"parking-console/internal/logging"
	"parking-console/internal/parking"
	"parking-console/internal/server"
)

var (
	diag = flag.Bool("diag", false, "Expose the diagnostics HTTP listener (health and metrics)")
	port = flag.String("port", "", "Diagnostics listener port (defaults to PARKING_DIAG_PORT)")
)

func main() {
	flag.Parse()

	// Missing .env is fine, the defaults carry everything.
	_ = godotenv.Load()

	cfg := config.Load()
	logging.Init(cfg.IsDevelopment())
	log := logging.Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	telemetryProvider, err := parking.NewTelemetryProvider(ctx, cfg.ServiceName, cfg.OTLPEndpoint, cfg.Environment)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}

	lot, err := parking.NewInstrumentedParkingLot(cfg.CarSlots, cfg.BikeSlots, telemetryProvider)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create parking lot")
	}

	log.Info().
		Int("carSlots", cfg.CarSlots).
		Int("bikeSlots", cfg.BikeSlots).
		Msg("parking lot ready")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info().Msg("received shutdown signal")
		cancel()
	}()

	var srv *server.Server
	if *diag {
		diagPort := cfg.DiagPort
		if *port != "" {
			diagPort = *port
		}
		srv = server.NewServer(diagPort, cfg.ServiceName)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("diagnostics server error")
			}
		}()
	}

	shell := parking.NewShell(lot, telemetryProvider, os.Stdin, os.Stdout)
	shell.Run(ctx)

	if srv != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("diagnostics server shutdown error")
		}
		shutdownCancel()
	}

	shutdownTelemetry(telemetryProvider)
}

func shutdownTelemetry(telemetryProvider *parking.TelemetryProvider) {
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := telemetryProvider.Shutdown(shutdownCtx); err != nil {
		logging.Logger().Error().Err(err).Msg("error shutting down telemetry")
	}
}

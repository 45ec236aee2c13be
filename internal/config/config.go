package config

import (
	"os"
	"strconv"
)

// Config carries the ambient process settings. The zero configuration case
// runs a standard lot: 10 car slots, 10 bike slots, telemetry pointed at a
// local collector.
type Config struct {
	ServiceName  string
	OTLPEndpoint string
	Environment  string
	CarSlots     int
	BikeSlots    int
	DiagPort     string
}

func Load() *Config {
	return &Config{
		ServiceName:  envOr("OTEL_SERVICE_NAME", "parking-console"),
		OTLPEndpoint: envOr("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318"),
		Environment:  envOr("APP_ENV", "development"),
		CarSlots:     envOrInt("PARKING_CAR_SLOTS", 10),
		BikeSlots:    envOrInt("PARKING_BIKE_SLOTS", 10),
		DiagPort:     envOr("PARKING_DIAG_PORT", "9090"),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// envOrInt falls back on anything that is not a positive integer, so a typo
// in a slot count cannot start a lot with no slots.
func envOrInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

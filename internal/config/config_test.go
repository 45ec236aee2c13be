package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	os.Clearenv()
	cfg := Load()

	assert.Equal(t, "parking-console", cfg.ServiceName)
	assert.Equal(t, "http://localhost:4318", cfg.OTLPEndpoint)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 10, cfg.CarSlots)
	assert.Equal(t, 10, cfg.BikeSlots)
	assert.Equal(t, "9090", cfg.DiagPort)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "lot-console")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://collector:4318")
	t.Setenv("APP_ENV", "production")
	t.Setenv("PARKING_CAR_SLOTS", "4")
	t.Setenv("PARKING_BIKE_SLOTS", "6")
	t.Setenv("PARKING_DIAG_PORT", "9191")

	cfg := Load()

	assert.Equal(t, "lot-console", cfg.ServiceName)
	assert.Equal(t, "http://collector:4318", cfg.OTLPEndpoint)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 4, cfg.CarSlots)
	assert.Equal(t, 6, cfg.BikeSlots)
	assert.Equal(t, "9191", cfg.DiagPort)
	assert.False(t, cfg.IsDevelopment())
}

func TestInvalidSlotCountsFallBackToDefault(t *testing.T) {
	t.Setenv("PARKING_CAR_SLOTS", "not-a-number")
	t.Setenv("PARKING_BIKE_SLOTS", "-3")

	cfg := Load()

	assert.Equal(t, 10, cfg.CarSlots)
	assert.Equal(t, 10, cfg.BikeSlots)
}

func TestEmptyEnvValueFallsBackToDefault(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "")

	cfg := Load()

	assert.Equal(t, "parking-console", cfg.ServiceName)
}

package parking

import (
	"context"
	"errors"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// newTestTelemetryProvider builds a provider with no exporters so tests run
// without a collector.
func newTestTelemetryProvider() *TelemetryProvider {
	tracerProvider := sdktrace.NewTracerProvider()
	meterProvider := sdkmetric.NewMeterProvider()
	return &TelemetryProvider{
		tracerProvider: tracerProvider,
		meterProvider:  meterProvider,
		tracer:         tracerProvider.Tracer("parking-console-test"),
		meter:          meterProvider.Meter("parking-console-test"),
	}
}

func TestInstrumentedParkingLotIntegration(t *testing.T) {
	telemetry := newTestTelemetryProvider()
	defer func() {
		if err := telemetry.Shutdown(context.Background()); err != nil {
			t.Errorf("Failed to shutdown telemetry: %v", err)
		}
	}()

	ipl, err := NewInstrumentedParkingLot(3, 3, telemetry)
	if err != nil {
		t.Fatalf("Failed to create instrumented parking lot: %v", err)
	}

	ctx := context.Background()

	entry, err := ipl.Entry(ctx, "KA01HH1234", Car)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if entry.SlotNumber != 1 {
		t.Errorf("Expected slot number 1, got %d", entry.SlotNumber)
	}

	status := ipl.Status(ctx)
	if len(status.ActiveTickets) != 1 {
		t.Errorf("Expected 1 active ticket, got %d", len(status.ActiveTickets))
	}
	if status.FreeCarSlots != 2 {
		t.Errorf("Expected 2 free car slots, got %d", status.FreeCarSlots)
	}

	matches, err := ipl.LookupByVehicle(ctx, "ka01hh1234")
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if len(matches) != 1 || matches[0].ID != entry.TicketID {
		t.Errorf("Expected lookup to find ticket %d, got %v", entry.TicketID, matches)
	}

	exit, err := ipl.Exit(ctx, entry.TicketID)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if exit.Fee != 30.0 {
		t.Errorf("Expected minimum car fee 30.00, got %.2f", exit.Fee)
	}

	status = ipl.Status(ctx)
	if len(status.ActiveTickets) != 0 {
		t.Errorf("Expected no active tickets after exit, got %d", len(status.ActiveTickets))
	}

	logs := ipl.Logs(ctx)
	if len(logs) != 1 {
		t.Fatalf("Expected one log entry, got %d", len(logs))
	}
	if logs[0].TicketID != entry.TicketID {
		t.Errorf("Expected log for ticket %d, got %d", entry.TicketID, logs[0].TicketID)
	}
}

func TestInstrumentedParkingLotErrorPaths(t *testing.T) {
	telemetry := newTestTelemetryProvider()
	defer telemetry.Shutdown(context.Background())

	ipl, err := NewInstrumentedParkingLot(1, 0, telemetry)
	if err != nil {
		t.Fatalf("Failed to create instrumented parking lot: %v", err)
	}

	ctx := context.Background()

	if _, err := ipl.Entry(ctx, "", Car); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error for empty registration, got %v", err)
	}

	if _, err := ipl.Entry(ctx, "KA01HH1234", Car); err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if _, err := ipl.Entry(ctx, "KA01HH9999", Car); !errors.Is(err, ErrNoSlotAvailable) {
		t.Errorf("Expected no free slot error, got %v", err)
	}

	if _, err := ipl.Exit(ctx, 42); !errors.Is(err, ErrTicketNotFound) {
		t.Errorf("Expected ticket not found error, got %v", err)
	}
}

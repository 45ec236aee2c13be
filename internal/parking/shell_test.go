package parking

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

// runShellSession feeds the scripted input lines to a fresh shell over a
// 2-car 2-bike lot and returns everything it printed.
func runShellSession(t *testing.T, lines ...string) string {
	t.Helper()

	telemetry := newTestTelemetryProvider()
	t.Cleanup(func() { telemetry.Shutdown(context.Background()) })

	lot, err := NewInstrumentedParkingLot(2, 2, telemetry)
	if err != nil {
		t.Fatalf("Failed to create instrumented parking lot: %v", err)
	}

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	shell := NewShell(lot, telemetry, in, &out)
	shell.Run(context.Background())

	return out.String()
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Errorf("Expected output to contain %q, got:\n%s", want, output)
	}
}

func TestShellEntryExitRoundTrip(t *testing.T) {
	output := runShellSession(t,
		"1", "KA01AB1234", "1", // entry: car
		"3",               // status with the active ticket
		"5", "ka01ab1234", // case-insensitive lookup
		"2", "1", // exit ticket 1
		"2", "1", // exit again: already closed
		"4", // logs
		"6",
	)

	assertContains(t, output, "===== Mall Parking Management System =====")
	assertContains(t, output, "Vehicle parked successfully!")
	assertContains(t, output, "Assigned Slot ID: 1")
	assertContains(t, output, "Your Ticket ID: 1")
	assertContains(t, output, "Free CAR slots: 1")
	assertContains(t, output, "Ticket ID: 1, Vehicle: KA01AB1234 (CAR), Slot: 1")
	assertContains(t, output, "Vehicle exit processed.")
	assertContains(t, output, "Slot Freed: 1")
	assertContains(t, output, "Total Fee: Rs 30.00")
	assertContains(t, output, "Ticket not found or already closed.")
	assertContains(t, output, "Log - Ticket: 1, Vehicle: KA01AB1234 (CAR), Slot: 1")
	assertContains(t, output, "Exiting system. Goodbye!")
}

func TestShellMenuRejectsBadChoices(t *testing.T) {
	output := runShellSession(t,
		"abc",
		"9",
		"6",
	)

	assertContains(t, output, "Please enter a valid integer.")
	assertContains(t, output, "Invalid choice. Please try again.")
	assertContains(t, output, "Exiting system. Goodbye!")

	// Each rejected choice reprints the menu instead of looping on the prompt.
	if got := strings.Count(output, "1. Vehicle Entry"); got != 3 {
		t.Errorf("Expected the menu to print 3 times, got %d", got)
	}
}

func TestShellEntryInputErrors(t *testing.T) {
	output := runShellSession(t,
		"1", "   ", // blank vehicle number
		"1", "KA01AB1234", "7", // unknown vehicle type
		"1", "KA01AB1234", "x", // non-integer vehicle type
		"6",
	)

	assertContains(t, output, "Vehicle number cannot be empty.")
	assertContains(t, output, "Invalid vehicle type.")
	assertContains(t, output, "Please enter a valid integer.")

	if strings.Contains(output, "Vehicle parked successfully!") {
		t.Error("Expected no entry to succeed")
	}
}

func TestShellExitNonIntegerTicket(t *testing.T) {
	output := runShellSession(t,
		"2", "not-a-ticket",
		"6",
	)

	assertContains(t, output, "--- Vehicle Exit ---")
	assertContains(t, output, "Please enter a valid integer.")
}

func TestShellCapacityExhausted(t *testing.T) {
	output := runShellSession(t,
		"1", "CAR1", "1",
		"1", "CAR2", "1",
		"1", "CAR3", "1", // both car slots taken
		"1", "BIKE1", "2", // bikes still fit
		"6",
	)

	assertContains(t, output, "Sorry, no free slot available for CAR right now.")
	assertContains(t, output, "Assigned Slot ID: 3")
}

func TestShellLookupMissesAndEmptyReports(t *testing.T) {
	output := runShellSession(t,
		"5", "ZZ99ZZ9999",
		"5", "  ",
		"3",
		"4",
		"6",
	)

	assertContains(t, output, "No active ticket found for vehicle: ZZ99ZZ9999")
	assertContains(t, output, "Vehicle number cannot be empty.")
	assertContains(t, output, "No active tickets.")
	assertContains(t, output, "No logs available yet.")
}

func TestShellStopsOnExhaustedInput(t *testing.T) {
	// No "6": the session ends when input runs out.
	output := runShellSession(t, "3")

	assertContains(t, output, "--- Current Parking Status ---")
	if strings.Contains(output, "Exiting system. Goodbye!") {
		t.Error("Expected no goodbye when input just ends")
	}
}

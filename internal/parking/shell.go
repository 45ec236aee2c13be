package parking

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"parking-console/internal/logging"
)

// Shell is the interactive operator console. It reads menu choices from in,
// writes every prompt and report to out, and drives the instrumented lot so
// each command produces a trace of its own.
type Shell struct {
	lot       *InstrumentedParkingLot
	telemetry *TelemetryProvider
	scanner   *bufio.Scanner
	out       io.Writer
	sessionID string
}

func NewShell(lot *InstrumentedParkingLot, telemetry *TelemetryProvider, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		lot:       lot,
		telemetry: telemetry,
		scanner:   bufio.NewScanner(in),
		out:       out,
		sessionID: uuid.New().String(),
	}
}

// Run loops over the menu until the operator picks Exit, input runs out, or
// ctx is cancelled. Invalid menu input reprints the menu rather than looping
// on the prompt, so a closed or garbage stream can never spin the console.
func (s *Shell) Run(ctx context.Context) {
	tracer := s.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "shell.run",
		trace.WithAttributes(attribute.String("session.id", s.sessionID)))
	defer span.End()

	span.AddEvent("session_started")
	logging.Info(ctx).Str("sessionId", s.sessionID).Msg("operator session started")

	for ctx.Err() == nil {
		s.printMenu()

		line, ok := s.readLine("Enter your choice: ")
		if !ok {
			break
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			s.println("Please enter a valid integer.")
			continue
		}

		cmdCtx, cmdSpan := tracer.Start(ctx, "shell.process_command",
			trace.WithAttributes(attribute.Int("command.choice", choice)))
		done := s.dispatch(cmdCtx, cmdSpan, choice)
		cmdSpan.End()

		if done {
			break
		}
	}

	span.AddEvent("session_ended")
	logging.Info(ctx).Str("sessionId", s.sessionID).Msg("operator session ended")
}

// dispatch routes one menu choice. It reports true when the operator picked
// Exit.
func (s *Shell) dispatch(ctx context.Context, span trace.Span, choice int) bool {
	switch choice {
	case 1:
		s.handleEntry(ctx)
	case 2:
		s.handleExit(ctx)
	case 3:
		s.handleStatus(ctx)
	case 4:
		s.handleLogs(ctx)
	case 5:
		s.handleLookup(ctx)
	case 6:
		span.AddEvent("session_exit_requested")
		s.println("Exiting system. Goodbye!")
		return true
	default:
		span.AddEvent("unknown_choice", trace.WithAttributes(
			attribute.Int("choice", choice),
		))
		s.println("Invalid choice. Please try again.")
	}
	return false
}

func (s *Shell) handleEntry(ctx context.Context) {
	tracer := s.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "shell.vehicle_entry")
	defer span.End()

	s.println("")
	s.println("--- Vehicle Entry ---")

	number, ok := s.readLine("Enter vehicle number: ")
	if !ok {
		return
	}
	number = strings.TrimSpace(number)
	if number == "" {
		span.AddEvent("empty_vehicle_number")
		s.println("Vehicle number cannot be empty.")
		return
	}

	s.println("Select Vehicle Type: ")
	s.println("1. Car")
	s.println("2. Bike")

	typeChoice, err := s.readInt("Enter choice: ")
	if err != nil {
		span.AddEvent("invalid_type_input")
		s.println("Please enter a valid integer.")
		return
	}

	class, err := ParseVehicleClass(typeChoice)
	if err != nil {
		span.AddEvent("invalid_vehicle_type", trace.WithAttributes(
			attribute.Int("type_choice", typeChoice),
		))
		s.println("Invalid vehicle type.")
		return
	}

	result, err := s.lot.Entry(ctx, number, class)
	if err != nil {
		if errors.Is(err, ErrNoSlotAvailable) {
			s.printf("Sorry, no free slot available for %s right now.\n", class)
		} else {
			s.printf("Error: %s\n", err)
		}
		return
	}

	s.println("Vehicle parked successfully!")
	s.printf("Assigned Slot ID: %d\n", result.SlotNumber)
	s.printf("Your Ticket ID: %d\n", result.TicketID)
	s.printf("Entry Time: %s\n", result.EntryTime.Format(timestampLayout))
}

func (s *Shell) handleExit(ctx context.Context) {
	tracer := s.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "shell.vehicle_exit")
	defer span.End()

	s.println("")
	s.println("--- Vehicle Exit ---")

	ticketID, err := s.readInt("Enter Ticket ID: ")
	if err != nil {
		span.AddEvent("invalid_ticket_input")
		s.println("Please enter a valid integer.")
		return
	}

	result, err := s.lot.Exit(ctx, int64(ticketID))
	if err != nil {
		if errors.Is(err, ErrTicketNotFound) {
			s.println("Ticket not found or already closed.")
		} else {
			s.printf("Error: %s\n", err)
		}
		return
	}

	s.println("Vehicle exit processed.")
	s.printf("Ticket ID: %d\n", result.TicketID)
	s.printf("Vehicle: %s\n", result.Registration)
	s.printf("Slot Freed: %d\n", result.SlotNumber)
	s.printf("Total Fee: Rs %.2f\n", result.Fee)
}

func (s *Shell) handleStatus(ctx context.Context) {
	tracer := s.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "shell.parking_status")
	defer span.End()

	s.println("")
	s.println("--- Current Parking Status ---")

	report := s.lot.Status(ctx)

	s.printf("Total Slots: %d\n", report.TotalSlots)
	s.printf("Free CAR slots: %d\n", report.FreeCarSlots)
	s.printf("Free BIKE slots: %d\n", report.FreeBikeSlots)

	s.println("")
	s.println("Slot wise detail:")
	for _, slot := range report.Slots {
		s.println(slot.String())
	}

	s.println("")
	s.println("Active Tickets:")
	if len(report.ActiveTickets) == 0 {
		s.println("No active tickets.")
		return
	}
	for _, ticket := range report.ActiveTickets {
		s.println(ticket.String())
	}
}

func (s *Shell) handleLogs(ctx context.Context) {
	tracer := s.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "shell.entry_exit_logs")
	defer span.End()

	s.println("")
	s.println("--- Entry/Exit Logs ---")

	entries := s.lot.Logs(ctx)
	if len(entries) == 0 {
		s.println("No logs available yet.")
		return
	}
	for _, entry := range entries {
		s.println(entry.String())
	}
}

func (s *Shell) handleLookup(ctx context.Context) {
	tracer := s.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "shell.vehicle_lookup")
	defer span.End()

	number, ok := s.readLine("Enter vehicle number to lookup: ")
	if !ok {
		return
	}
	number = strings.TrimSpace(number)
	if number == "" {
		span.AddEvent("empty_vehicle_number")
		s.println("Vehicle number cannot be empty.")
		return
	}

	matches, err := s.lot.LookupByVehicle(ctx, number)
	if err != nil {
		s.printf("Error: %s\n", err)
		return
	}
	if len(matches) == 0 {
		s.printf("No active ticket found for vehicle: %s\n", number)
		return
	}
	for _, ticket := range matches {
		s.println(ticket.String())
	}
}

func (s *Shell) printMenu() {
	s.println("")
	s.println("===== Mall Parking Management System =====")
	s.println("1. Vehicle Entry")
	s.println("2. Vehicle Exit")
	s.println("3. Show Current Parking Status")
	s.println("4. Show Entry/Exit Logs")
	s.println("5. Lookup Active Ticket by Vehicle Number")
	s.println("6. Exit")
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// readLine prompts and returns the next input line. ok is false once input
// is exhausted.
func (s *Shell) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

// readInt prompts once. A non-integer answer aborts the surrounding flow so
// the operator lands back on the menu instead of a blocking retry loop.
func (s *Shell) readInt(prompt string) (int, error) {
	line, ok := s.readLine(prompt)
	if !ok {
		return 0, fmt.Errorf("%w: input closed", ErrInputFormat)
	}
	line = strings.TrimSpace(line)
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInputFormat, line)
	}
	return n, nil
}

package parking

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"parking-console/internal/logging"
)

// InstrumentedParkingLot wraps ParkingLot with tracing, metrics and logging.
// The console talks to this type; the embedded lot stays telemetry-free.
type InstrumentedParkingLot struct {
	*ParkingLot
	telemetry *TelemetryProvider

	// Metrics
	entryOperations   metric.Int64Counter
	exitOperations    metric.Int64Counter
	occupancyGauge    metric.Int64UpDownCounter
	feeAmounts        metric.Float64Histogram
	operationDuration metric.Float64Histogram
	totalSlotsGauge   metric.Int64UpDownCounter
}

func NewInstrumentedParkingLot(carSlots, bikeSlots int, telemetry *TelemetryProvider) (*InstrumentedParkingLot, error) {
	baseParkingLot := NewParkingLot(carSlots, bikeSlots)

	meter := telemetry.Meter()

	entryOperations, err := meter.Int64Counter("vehicle_entries_total",
		metric.WithDescription("Total number of vehicle entry operations"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	exitOperations, err := meter.Int64Counter("vehicle_exits_total",
		metric.WithDescription("Total number of vehicle exit operations"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	occupancyGauge, err := meter.Int64UpDownCounter("parking_lot_occupancy",
		metric.WithDescription("Current number of occupied parking slots"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	feeAmounts, err := meter.Float64Histogram("parking_fee_amount",
		metric.WithDescription("Distribution of fees charged at exit"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	operationDuration, err := meter.Float64Histogram("operation_duration_seconds",
		metric.WithDescription("Duration of parking lot operations"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	totalSlotsGauge, err := meter.Int64UpDownCounter("parking_lot_total_slots",
		metric.WithDescription("Total number of parking slots"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	ipl := &InstrumentedParkingLot{
		ParkingLot:        baseParkingLot,
		telemetry:         telemetry,
		entryOperations:   entryOperations,
		exitOperations:    exitOperations,
		occupancyGauge:    occupancyGauge,
		feeAmounts:        feeAmounts,
		operationDuration: operationDuration,
		totalSlotsGauge:   totalSlotsGauge,
	}

	// Set initial total slots metric
	totalSlotsGauge.Add(context.Background(), int64(carSlots+bikeSlots))

	return ipl, nil
}

func (ipl *InstrumentedParkingLot) Entry(ctx context.Context, registration string, class VehicleClass) (EntryResult, error) {
	tracer := ipl.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "parking_lot.vehicle_entry",
		trace.WithAttributes(
			attribute.String("vehicle.registration", registration),
			attribute.String("vehicle.class", class.String()),
		))
	defer span.End()

	start := time.Now()

	span.AddEvent("finding_free_slot")

	result, err := ipl.ParkingLot.Entry(registration, class)

	duration := time.Since(start).Seconds()

	labels := []attribute.KeyValue{
		attribute.String("operation", "entry"),
		attribute.String("vehicle_class", class.String()),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		labels = append(labels, attribute.String("status", "failed"))
		ipl.entryOperations.Add(ctx, 1, metric.WithAttributes(labels...))

		logging.Warn(ctx).
			Err(err).
			Str("registration", registration).
			Str("class", class.String()).
			Msg("vehicle entry rejected")
	} else {
		labels = append(labels,
			attribute.String("status", "success"),
			attribute.Int("allocated_slot", result.SlotNumber),
		)
		span.SetAttributes(
			attribute.Int64("ticket_id", result.TicketID),
			attribute.Int("allocated_slot_number", result.SlotNumber),
		)
		span.AddEvent("slot_allocated", trace.WithAttributes(
			attribute.Int("slot_number", result.SlotNumber),
		))

		ipl.entryOperations.Add(ctx, 1, metric.WithAttributes(labels...))
		ipl.occupancyGauge.Add(ctx, 1, metric.WithAttributes(
			attribute.String("vehicle_class", class.String()),
		))

		logging.Info(ctx).
			Int64("ticketId", result.TicketID).
			Str("registration", registration).
			Str("class", class.String()).
			Int("slot", result.SlotNumber).
			Msg("vehicle entry recorded")
	}

	ipl.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return result, err
}

func (ipl *InstrumentedParkingLot) Exit(ctx context.Context, ticketID int64) (ExitResult, error) {
	tracer := ipl.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "parking_lot.vehicle_exit",
		trace.WithAttributes(
			attribute.Int64("ticket_id", ticketID),
		))
	defer span.End()

	start := time.Now()

	span.AddEvent("closing_ticket")

	result, err := ipl.ParkingLot.Exit(ticketID)

	duration := time.Since(start).Seconds()

	labels := []attribute.KeyValue{
		attribute.String("operation", "exit"),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		labels = append(labels, attribute.String("status", "failed"))
		ipl.exitOperations.Add(ctx, 1, metric.WithAttributes(labels...))

		logging.Warn(ctx).
			Err(err).
			Int64("ticketId", ticketID).
			Msg("vehicle exit rejected")
	} else {
		labels = append(labels,
			attribute.String("status", "success"),
			attribute.String("vehicle_class", result.Class.String()),
		)
		span.SetAttributes(
			attribute.String("vehicle.registration", result.Registration),
			attribute.Int("freed_slot_number", result.SlotNumber),
			attribute.Float64("fee_amount", result.Fee),
		)
		span.AddEvent("slot_released", trace.WithAttributes(
			attribute.Int("slot_number", result.SlotNumber),
		))

		ipl.exitOperations.Add(ctx, 1, metric.WithAttributes(labels...))
		ipl.occupancyGauge.Add(ctx, -1, metric.WithAttributes(
			attribute.String("vehicle_class", result.Class.String()),
		))
		ipl.feeAmounts.Record(ctx, result.Fee, metric.WithAttributes(
			attribute.String("vehicle_class", result.Class.String()),
		))

		if result.ExitTime.Before(result.EntryTime) {
			logging.Warn(ctx).
				Int64("ticketId", result.TicketID).
				Time("entryTime", result.EntryTime).
				Time("exitTime", result.ExitTime).
				Msg("exit stamped before entry, fee clamped to the minimum stay")
		}

		logging.Info(ctx).
			Int64("ticketId", result.TicketID).
			Str("registration", result.Registration).
			Int("slot", result.SlotNumber).
			Float64("fee", result.Fee).
			Msg("vehicle exit recorded")
	}

	ipl.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return result, err
}

func (ipl *InstrumentedParkingLot) Status(ctx context.Context) StatusReport {
	tracer := ipl.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "parking_lot.status")
	defer span.End()

	start := time.Now()

	span.AddEvent("collecting_status")

	report := ipl.ParkingLot.Status()

	duration := time.Since(start).Seconds()

	span.SetAttributes(
		attribute.Int("total_slots", report.TotalSlots),
		attribute.Int("free_car_slots", report.FreeCarSlots),
		attribute.Int("free_bike_slots", report.FreeBikeSlots),
		attribute.Int("active_tickets", len(report.ActiveTickets)),
	)

	labels := []attribute.KeyValue{
		attribute.String("operation", "status"),
		attribute.String("status", "success"),
	}

	ipl.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return report
}

func (ipl *InstrumentedParkingLot) Logs(ctx context.Context) []LogEntry {
	tracer := ipl.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "parking_lot.logs")
	defer span.End()

	start := time.Now()

	entries := ipl.ParkingLot.Logs()

	duration := time.Since(start).Seconds()

	span.SetAttributes(attribute.Int("log_entries", len(entries)))

	labels := []attribute.KeyValue{
		attribute.String("operation", "logs"),
		attribute.String("status", "success"),
	}

	ipl.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return entries
}

func (ipl *InstrumentedParkingLot) LookupByVehicle(ctx context.Context, registration string) ([]Ticket, error) {
	tracer := ipl.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "parking_lot.lookup_by_vehicle",
		trace.WithAttributes(
			attribute.String("vehicle.registration", registration),
		))
	defer span.End()

	start := time.Now()

	span.AddEvent("searching_active_tickets")

	matches, err := ipl.ParkingLot.LookupByVehicle(registration)

	duration := time.Since(start).Seconds()

	labels := []attribute.KeyValue{
		attribute.String("operation", "lookup_by_vehicle"),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		labels = append(labels, attribute.String("status", "failed"))
	} else if len(matches) == 0 {
		span.AddEvent("vehicle_not_found")
		labels = append(labels, attribute.String("status", "not_found"))
	} else {
		span.SetAttributes(attribute.Int("matched_tickets", len(matches)))
		span.AddEvent("vehicle_found", trace.WithAttributes(
			attribute.Int64("ticket_id", matches[0].ID),
		))
		labels = append(labels, attribute.String("status", "found"))
	}

	ipl.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return matches, err
}

package parking

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// EntryResult is what the console prints after a successful entry.
type EntryResult struct {
	TicketID   int64
	SlotNumber int
	EntryTime  time.Time
}

// ExitResult is what the console prints after a successful exit. EntryTime
// and ExitTime ride along for instrumentation.
type ExitResult struct {
	TicketID     int64
	Registration string
	Class        VehicleClass
	SlotNumber   int
	EntryTime    time.Time
	ExitTime     time.Time
	Fee          float64
}

// StatusReport is a point-in-time snapshot of the whole lot.
type StatusReport struct {
	TotalSlots    int
	FreeCarSlots  int
	FreeBikeSlots int
	Slots         []Slot
	ActiveTickets []Ticket
}

// ParkingLot owns the slot registry, the active ticket table and the exit
// history. Entry and Exit hold the write lock across their whole compound
// update, so no reader can observe a claimed slot without its ticket or a
// freed slot with its ticket still active. Queries take the read lock and
// return copies that stay stable after release.
type ParkingLot struct {
	mu      sync.RWMutex
	slots   *SlotRegistry
	tickets *TicketStore
	logs    *LogStore

	// now is swapped out in tests to control entry and exit stamps.
	now func() time.Time
}

func NewParkingLot(carSlots, bikeSlots int) *ParkingLot {
	return &ParkingLot{
		slots:   NewSlotRegistry(carSlots, bikeSlots),
		tickets: NewTicketStore(),
		logs:    NewLogStore(),
		now:     time.Now,
	}
}

// Entry admits a vehicle: it claims the lowest-numbered free slot of the
// vehicle's class and opens a ticket stamped with the current time.
func (pl *ParkingLot) Entry(registration string, class VehicleClass) (EntryResult, error) {
	registration = strings.TrimSpace(registration)
	if registration == "" {
		return EntryResult{}, fmt.Errorf("%w: vehicle number cannot be empty", ErrValidation)
	}
	if !class.Valid() {
		return EntryResult{}, fmt.Errorf("%w: unknown vehicle type %d", ErrValidation, int(class))
	}

	pl.mu.Lock()
	defer pl.mu.Unlock()

	slot, ok := pl.slots.FindFree(class)
	if !ok {
		return EntryResult{}, fmt.Errorf("%w for %s", ErrNoSlotAvailable, class)
	}
	slot.IsOccupied = true

	ticket := &Ticket{
		ID:         pl.tickets.NextID(),
		Vehicle:    NewVehicle(registration, class),
		SlotNumber: slot.Number,
		EntryTime:  pl.now(),
	}
	pl.tickets.Create(ticket)

	return EntryResult{
		TicketID:   ticket.ID,
		SlotNumber: ticket.SlotNumber,
		EntryTime:  ticket.EntryTime,
	}, nil
}

// Exit closes an active ticket: it stamps the exit time, prices the stay,
// frees the slot and appends the history entry. A second exit for the same
// ticket fails with ErrTicketNotFound.
func (pl *ParkingLot) Exit(ticketID int64) (ExitResult, error) {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	ticket, ok := pl.tickets.Close(ticketID)
	if !ok {
		return ExitResult{}, fmt.Errorf("%w: ticket %d", ErrTicketNotFound, ticketID)
	}

	exitTime := pl.now()
	fee := CalculateFee(ticket.EntryTime, exitTime, ticket.Vehicle.Class)
	ticket.close(exitTime, fee)

	pl.slots.SetOccupied(ticket.SlotNumber, false)

	pl.logs.Append(LogEntry{
		TicketID:     ticket.ID,
		Registration: ticket.Vehicle.Registration,
		Class:        ticket.Vehicle.Class,
		SlotNumber:   ticket.SlotNumber,
		EntryTime:    ticket.EntryTime,
		ExitTime:     ticket.ExitTime,
		Fee:          ticket.Fee,
	})

	return ExitResult{
		TicketID:     ticket.ID,
		Registration: ticket.Vehicle.Registration,
		Class:        ticket.Vehicle.Class,
		SlotNumber:   ticket.SlotNumber,
		EntryTime:    ticket.EntryTime,
		ExitTime:     ticket.ExitTime,
		Fee:          ticket.Fee,
	}, nil
}

// Status reports totals, free counts per class, the slot detail and the
// active tickets, all as copies.
func (pl *ParkingLot) Status() StatusReport {
	pl.mu.RLock()
	defer pl.mu.RUnlock()

	return StatusReport{
		TotalSlots:    pl.slots.Len(),
		FreeCarSlots:  pl.slots.FreeCount(Car),
		FreeBikeSlots: pl.slots.FreeCount(Bike),
		Slots:         pl.slots.Snapshot(),
		ActiveTickets: pl.tickets.ListActive(),
	}
}

// Logs returns the entry/exit history in closure order.
func (pl *ParkingLot) Logs() []LogEntry {
	pl.mu.RLock()
	defer pl.mu.RUnlock()
	return pl.logs.All()
}

// LookupByVehicle finds the active tickets for a registration, ignoring case.
func (pl *ParkingLot) LookupByVehicle(registration string) ([]Ticket, error) {
	registration = strings.TrimSpace(registration)
	if registration == "" {
		return nil, fmt.Errorf("%w: vehicle number cannot be empty", ErrValidation)
	}

	pl.mu.RLock()
	defer pl.mu.RUnlock()
	return pl.tickets.FindByRegistration(registration), nil
}

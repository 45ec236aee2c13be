package parking

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"time"
)

// timestampLayout is the display format for entry and exit times.
const timestampLayout = "02-01-2006 15:04"

// Ticket records one parking stay. ExitTime, Fee and Closed stay zero until
// the vehicle exits.
type Ticket struct {
	ID         int64
	Vehicle    Vehicle
	SlotNumber int
	EntryTime  time.Time
	ExitTime   time.Time
	Fee        float64
	Closed     bool
}

func (t Ticket) String() string {
	s := fmt.Sprintf("Ticket ID: %d, Vehicle: %s (%s), Slot: %d, Entry: %s",
		t.ID, t.Vehicle.Registration, t.Vehicle.Class, t.SlotNumber,
		t.EntryTime.Format(timestampLayout))
	if t.Closed {
		s += fmt.Sprintf(", Exit: %s, Fee: Rs %.2f", t.ExitTime.Format(timestampLayout), t.Fee)
	}
	return s
}

// close stamps the exit fields. Called exactly once, by ParkingLot.Exit.
func (t *Ticket) close(exit time.Time, fee float64) {
	t.ExitTime = exit
	t.Fee = fee
	t.Closed = true
}

// TicketStore keeps the active tickets keyed by ID. The ID counter is atomic
// so identifiers stay unique no matter who asks; everything else relies on
// ParkingLot for serialization.
type TicketStore struct {
	nextID atomic.Int64
	active map[int64]*Ticket
}

func NewTicketStore() *TicketStore {
	return &TicketStore{active: make(map[int64]*Ticket)}
}

// NextID hands out ticket IDs starting at 1. Closed tickets never release
// their ID back.
func (s *TicketStore) NextID() int64 {
	return s.nextID.Add(1)
}

func (s *TicketStore) Create(t *Ticket) {
	s.active[t.ID] = t
}

// Get returns a copy of an active ticket.
func (s *TicketStore) Get(id int64) (Ticket, bool) {
	t, ok := s.active[id]
	if !ok {
		return Ticket{}, false
	}
	return *t, true
}

// Close removes a ticket from the active set and returns it so the caller can
// stamp it and log it. Unknown or already-closed IDs report false.
func (s *TicketStore) Close(id int64) (*Ticket, bool) {
	t, ok := s.active[id]
	if !ok {
		return nil, false
	}
	delete(s.active, id)
	return t, true
}

// FindByRegistration matches active tickets by registration, ignoring case.
// Duplicate registrations are tolerated, so all matches come back, in ID order.
func (s *TicketStore) FindByRegistration(registration string) []Ticket {
	var matches []Ticket
	for _, t := range s.active {
		if strings.EqualFold(t.Vehicle.Registration, registration) {
			matches = append(matches, *t)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].ID < matches[j].ID
	})
	return matches
}

// ListActive returns copies of all active tickets in ascending ID order.
func (s *TicketStore) ListActive() []Ticket {
	out := make([]Ticket, 0, len(s.active))
	for _, t := range s.active {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *TicketStore) Len() int {
	return len(s.active)
}

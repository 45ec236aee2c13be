package parking

import (
	"fmt"
	"time"
)

// LogEntry is the immutable history record of one closed ticket.
type LogEntry struct {
	TicketID     int64
	Registration string
	Class        VehicleClass
	SlotNumber   int
	EntryTime    time.Time
	ExitTime     time.Time
	Fee          float64
}

func (e LogEntry) String() string {
	return fmt.Sprintf("Log - Ticket: %d, Vehicle: %s (%s), Slot: %d, Entry: %s, Exit: %s, Fee: Rs %.2f",
		e.TicketID, e.Registration, e.Class, e.SlotNumber,
		e.EntryTime.Format(timestampLayout), e.ExitTime.Format(timestampLayout), e.Fee)
}

// LogStore is the append-only entry/exit history, kept in closure order.
type LogStore struct {
	entries []LogEntry
}

func NewLogStore() *LogStore {
	return &LogStore{}
}

func (s *LogStore) Append(entry LogEntry) {
	s.entries = append(s.entries, entry)
}

// All returns the full history as a copy.
func (s *LogStore) All() []LogEntry {
	out := make([]LogEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *LogStore) Len() int {
	return len(s.entries)
}

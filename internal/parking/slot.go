package parking

import "fmt"

// Slot is a single parking bay. Occupancy is the only mutable field; the
// vehicle occupying it is tracked on the ticket, not here.
type Slot struct {
	Number     int
	Class      VehicleClass
	IsOccupied bool
}

func NewSlot(number int, class VehicleClass) *Slot {
	return &Slot{
		Number:     number,
		Class:      class,
		IsOccupied: false,
	}
}

func (s Slot) String() string {
	state := "Free"
	if s.IsOccupied {
		state = "Occupied"
	}
	return fmt.Sprintf("Slot %2d (%s) - %s", s.Number, s.Class, state)
}

// SlotRegistry holds the fixed slot layout in ascending number order. It does
// no locking of its own; ParkingLot serializes all access.
type SlotRegistry struct {
	slots []*Slot
}

// NewSlotRegistry numbers carSlots car bays from 1 and bikeSlots bike bays
// directly after them.
func NewSlotRegistry(carSlots, bikeSlots int) *SlotRegistry {
	slots := make([]*Slot, 0, carSlots+bikeSlots)
	for i := 1; i <= carSlots; i++ {
		slots = append(slots, NewSlot(i, Car))
	}
	for i := carSlots + 1; i <= carSlots+bikeSlots; i++ {
		slots = append(slots, NewSlot(i, Bike))
	}
	return &SlotRegistry{slots: slots}
}

// FindFree returns the lowest-numbered free slot of the given class.
func (r *SlotRegistry) FindFree(class VehicleClass) (*Slot, bool) {
	for _, slot := range r.slots {
		if slot.Class == class && !slot.IsOccupied {
			return slot, true
		}
	}
	return nil, false
}

// SetOccupied flips the occupancy of a slot. Unknown numbers are ignored.
func (r *SlotRegistry) SetOccupied(number int, occupied bool) {
	for _, slot := range r.slots {
		if slot.Number == number {
			slot.IsOccupied = occupied
			return
		}
	}
}

func (r *SlotRegistry) FreeCount(class VehicleClass) int {
	count := 0
	for _, slot := range r.slots {
		if slot.Class == class && !slot.IsOccupied {
			count++
		}
	}
	return count
}

// Snapshot copies the slot set, in number order, for display.
func (r *SlotRegistry) Snapshot() []Slot {
	out := make([]Slot, len(r.slots))
	for i, slot := range r.slots {
		out[i] = *slot
	}
	return out
}

func (r *SlotRegistry) Len() int {
	return len(r.slots)
}

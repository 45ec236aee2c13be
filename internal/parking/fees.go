package parking

import "time"

// Flat-rate schedule: a first-hour rate plus a per-extra-hour rate for each
// vehicle class. Partial hours always bill as full hours.
const (
	carFirstHourFee  = 30.0
	carExtraHourFee  = 20.0
	bikeFirstHourFee = 20.0
	bikeExtraHourFee = 10.0
)

// BilledHours converts a stay to whole billed hours. Elapsed minutes are
// floored at one, so a zero or negative stay still bills a minimum hour, and
// any started hour counts in full.
func BilledHours(entry, exit time.Time) int64 {
	minutes := int64(exit.Sub(entry).Minutes())
	if minutes < 1 {
		minutes = 1
	}
	return (minutes + 59) / 60
}

// CalculateFee prices a stay for the given vehicle class.
func CalculateFee(entry, exit time.Time, class VehicleClass) float64 {
	hours := BilledHours(entry, exit)

	first, extra := bikeFirstHourFee, bikeExtraHourFee
	if class == Car {
		first, extra = carFirstHourFee, carExtraHourFee
	}

	if hours <= 1 {
		return first
	}
	return first + float64(hours-1)*extra
}

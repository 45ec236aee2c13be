package parking

import "fmt"

// VehicleClass is the closed set of vehicle types the lot admits.
type VehicleClass int

const (
	Car VehicleClass = iota + 1
	Bike
)

// ParseVehicleClass maps the console's numeric type choice (1 = Car, 2 = Bike)
// to a class. Any other value is a validation error.
func ParseVehicleClass(choice int) (VehicleClass, error) {
	switch choice {
	case 1:
		return Car, nil
	case 2:
		return Bike, nil
	default:
		return 0, fmt.Errorf("%w: unknown vehicle type %d", ErrValidation, choice)
	}
}

func (c VehicleClass) Valid() bool {
	return c == Car || c == Bike
}

func (c VehicleClass) String() string {
	switch c {
	case Car:
		return "CAR"
	case Bike:
		return "BIKE"
	default:
		return fmt.Sprintf("VehicleClass(%d)", int(c))
	}
}

type Vehicle struct {
	Registration string
	Class        VehicleClass
}

func NewVehicle(registration string, class VehicleClass) Vehicle {
	return Vehicle{
		Registration: registration,
		Class:        class,
	}
}

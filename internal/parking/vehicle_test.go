package parking

import (
	"errors"
	"testing"
)

func TestParseVehicleClass(t *testing.T) {
	class, err := ParseVehicleClass(1)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if class != Car {
		t.Errorf("Expected choice 1 to parse as Car, got %s", class)
	}

	class, err = ParseVehicleClass(2)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if class != Bike {
		t.Errorf("Expected choice 2 to parse as Bike, got %s", class)
	}
}

func TestParseVehicleClassRejectsUnknownChoices(t *testing.T) {
	for _, choice := range []int{0, 3, -1, 99} {
		if _, err := ParseVehicleClass(choice); !errors.Is(err, ErrValidation) {
			t.Errorf("Expected validation error for choice %d, got %v", choice, err)
		}
	}
}

func TestVehicleClassString(t *testing.T) {
	if got := Car.String(); got != "CAR" {
		t.Errorf("Expected CAR, got %s", got)
	}
	if got := Bike.String(); got != "BIKE" {
		t.Errorf("Expected BIKE, got %s", got)
	}
}

func TestVehicleClassValid(t *testing.T) {
	if !Car.Valid() || !Bike.Valid() {
		t.Error("Expected Car and Bike to be valid classes")
	}
	if VehicleClass(0).Valid() || VehicleClass(3).Valid() {
		t.Error("Expected out-of-range values to be invalid")
	}
}

func TestNewVehicle(t *testing.T) {
	vehicle := NewVehicle("KA01HH1234", Car)

	if vehicle.Registration != "KA01HH1234" {
		t.Errorf("Expected registration KA01HH1234, got %s", vehicle.Registration)
	}
	if vehicle.Class != Car {
		t.Errorf("Expected class Car, got %s", vehicle.Class)
	}
}

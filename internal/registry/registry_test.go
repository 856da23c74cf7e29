package registry

import "testing"

func TestRegisterUser_Duplicate(t *testing.T) {
	reg := New()

	if err := reg.RegisterUser("Amit", 36); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if err := reg.RegisterUser("Amit", 40); err != ErrDuplicateUser {
		t.Errorf("expected ErrDuplicateUser, got %v", err)
	}
}

func TestRegisterVehicle_UnknownUser(t *testing.T) {
	reg := New()

	if err := reg.RegisterVehicle("Ghost", "Swift", "KA-01-12345"); err != ErrUnknownUser {
		t.Errorf("expected ErrUnknownUser, got %v", err)
	}
}

func TestFindVehicle(t *testing.T) {
	reg := New()
	mustRegister(t, reg, "Ritu", 27)
	mustAddVehicle(t, reg, "Ritu", "Polo", "KA-05-41491")
	mustAddVehicle(t, reg, "Ritu", "Activa", "KA-12-12332")

	v, err := reg.FindVehicle("Ritu", "Activa")
	if err != nil {
		t.Fatalf("expected vehicle, got error: %v", err)
	}
	if v.Number != "KA-12-12332" || v.Owner != "Ritu" {
		t.Errorf("unexpected vehicle: %+v", v)
	}

	if _, err := reg.FindVehicle("Ritu", "XUV"); err != ErrUnknownVehicle {
		t.Errorf("expected ErrUnknownVehicle, got %v", err)
	}
	if _, err := reg.FindVehicle("Ghost", "Polo"); err != ErrUnknownUser {
		t.Errorf("expected ErrUnknownUser, got %v", err)
	}
}

func TestOfferRide_Validation(t *testing.T) {
	reg := New()
	mustRegister(t, reg, "Amit", 36)
	mustAddVehicle(t, reg, "Amit", "Swift", "KA-01-12345")

	testCases := []struct {
		name    string
		user    string
		seats   int
		vehicle string
		wantErr error
	}{
		{"unknown user", "Ghost", 2, "Swift", ErrUnknownUser},
		{"unknown vehicle", "Amit", 2, "Baleno", ErrUnknownVehicle},
		{"zero seats", "Amit", 0, "Swift", ErrInvalidCapacity},
		{"negative seats", "Amit", -3, "Swift", ErrInvalidCapacity},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := reg.OfferRide(tc.user, "Hyderabad", "Bangalore", tc.seats, tc.vehicle)
			if err != tc.wantErr {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	if rides := reg.Rides(); len(rides) != 0 {
		t.Errorf("failed offers must not create rides, found %d", len(rides))
	}
}

func TestOfferRide_AssignsSequentialIDs(t *testing.T) {
	reg := New()
	mustRegister(t, reg, "Ritu", 27)
	mustAddVehicle(t, reg, "Ritu", "Polo", "KA-05-41491")
	mustAddVehicle(t, reg, "Ritu", "Activa", "KA-12-12332")

	first, err := reg.OfferRide("Ritu", "Bangalore", "Mysore", 2, "Polo")
	if err != nil {
		t.Fatalf("offer failed: %v", err)
	}
	second, err := reg.OfferRide("Ritu", "Bangalore", "Mysore", 1, "Activa")
	if err != nil {
		t.Fatalf("offer failed: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
	if first.AvailableSeats != first.TotalSeats {
		t.Errorf("new ride should start full, got %d/%d", first.AvailableSeats, first.TotalSeats)
	}
	if !first.Active {
		t.Error("new ride should be active")
	}
}

func TestOfferRide_VehicleAlreadyActive(t *testing.T) {
	reg := New()
	mustRegister(t, reg, "Amit", 36)
	mustAddVehicle(t, reg, "Amit", "Swift", "KA-01-12345")

	if _, err := reg.OfferRide("Amit", "Hyderabad", "Bangalore", 2, "Swift"); err != nil {
		t.Fatalf("offer failed: %v", err)
	}

	// Same vehicle, different route and seat count: still rejected.
	if _, err := reg.OfferRide("Amit", "Pune", "Goa", 4, "Swift"); err != ErrVehicleAlreadyActive {
		t.Errorf("expected ErrVehicleAlreadyActive, got %v", err)
	}

	// After the ride ends the vehicle is free again.
	if _, err := reg.EndRide("Swift"); err != nil {
		t.Fatalf("end failed: %v", err)
	}
	ride, err := reg.OfferRide("Amit", "Pune", "Goa", 4, "Swift")
	if err != nil {
		t.Fatalf("re-offer after end failed: %v", err)
	}
	if ride.ID != 2 {
		t.Errorf("ride ids must not be reused, expected 2, got %d", ride.ID)
	}
}

func TestOfferRide_SameNameDifferentNumber(t *testing.T) {
	reg := New()
	mustRegister(t, reg, "Ritu", 27)
	mustRegister(t, reg, "Vikas", 35)
	mustAddVehicle(t, reg, "Ritu", "Polo", "KA-05-41491")
	mustAddVehicle(t, reg, "Vikas", "Polo", "MH-02-99887")

	if _, err := reg.OfferRide("Ritu", "Bangalore", "Mysore", 2, "Polo"); err != nil {
		t.Fatalf("offer failed: %v", err)
	}
	// Same display name but different registration number: both may be active.
	if _, err := reg.OfferRide("Vikas", "Bangalore", "Mysore", 3, "Polo"); err != nil {
		t.Errorf("expected offer to succeed for distinct vehicle, got %v", err)
	}
}

func mustRegister(t *testing.T, reg *Registry, name string, age int) {
	t.Helper()
	if err := reg.RegisterUser(name, age); err != nil {
		t.Fatalf("failed to register user %s: %v", name, err)
	}
}

func mustAddVehicle(t *testing.T, reg *Registry, owner, name, number string) {
	t.Helper()
	if err := reg.RegisterVehicle(owner, name, number); err != nil {
		t.Fatalf("failed to register vehicle %s for %s: %v", name, owner, err)
	}
}

func mustOffer(t *testing.T, reg *Registry, user, origin, destination string, seats int, vehicle string) RideSnapshot {
	t.Helper()
	ride, err := reg.OfferRide(user, origin, destination, seats, vehicle)
	if err != nil {
		t.Fatalf("failed to offer ride for %s on %s: %v", user, vehicle, err)
	}
	return ride
}

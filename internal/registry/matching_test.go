package registry

import (
	"sync"
	"testing"
)

func bookingReq(rider string, seats int, strategy, preferred string) BookingRequest {
	return BookingRequest{
		Rider:            rider,
		Source:           "Bangalore",
		Destination:      "Mysore",
		Seats:            seats,
		Strategy:         strategy,
		PreferredVehicle: preferred,
	}
}

// newMatchingFixture builds a registry with three Bangalore->Mysore rides:
// Baleno (1 seat), Polo (2 seats), Activa (1 seat), plus a rider Sneha.
func newMatchingFixture(t *testing.T) *Registry {
	t.Helper()
	reg := New()
	mustRegister(t, reg, "Neeraj", 29)
	mustRegister(t, reg, "Ritu", 27)
	mustRegister(t, reg, "Sneha", 29)
	mustAddVehicle(t, reg, "Neeraj", "Baleno", "TS-05-62395")
	mustAddVehicle(t, reg, "Ritu", "Polo", "KA-05-41491")
	mustAddVehicle(t, reg, "Ritu", "Activa", "KA-12-12332")
	mustOffer(t, reg, "Neeraj", "Bangalore", "Mysore", 1, "Baleno")
	mustOffer(t, reg, "Ritu", "Bangalore", "Mysore", 2, "Polo")
	mustOffer(t, reg, "Ritu", "Bangalore", "Mysore", 1, "Activa")
	return reg
}

func TestSelectRide_NoMatchingRide(t *testing.T) {
	reg := newMatchingFixture(t)

	testCases := []struct {
		name string
		req  BookingRequest
	}{
		{"wrong origin", BookingRequest{Rider: "Sneha", Source: "Mumbai", Destination: "Mysore", Seats: 1, Strategy: "MostVacant"}},
		{"wrong destination", BookingRequest{Rider: "Sneha", Source: "Bangalore", Destination: "Goa", Seats: 1, Strategy: "MostVacant"}},
		{"too many seats", bookingReq("Sneha", 3, "MostVacant", "")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := reg.SelectRide(tc.req); err != ErrNoMatchingRide {
				t.Errorf("expected ErrNoMatchingRide, got %v", err)
			}
		})
	}
}

func TestSelectRide_ExcludesEndedRides(t *testing.T) {
	reg := newMatchingFixture(t)

	// End everything on the route.
	for _, vehicle := range []string{"Baleno", "Polo", "Activa"} {
		if _, err := reg.EndRide(vehicle); err != nil {
			t.Fatalf("end failed for %s: %v", vehicle, err)
		}
	}

	if _, err := reg.SelectRide(bookingReq("Sneha", 1, "MostVacant", "")); err != ErrNoMatchingRide {
		t.Errorf("expected ErrNoMatchingRide after all rides ended, got %v", err)
	}
}

func TestSelectRide_UnknownUser(t *testing.T) {
	reg := newMatchingFixture(t)

	if _, err := reg.SelectRide(bookingReq("Ghost", 1, "MostVacant", "")); err != ErrUnknownUser {
		t.Errorf("expected ErrUnknownUser, got %v", err)
	}
}

func TestSelectRide_InvalidSeatCount(t *testing.T) {
	reg := newMatchingFixture(t)

	for _, seats := range []int{0, -1} {
		if _, err := reg.SelectRide(bookingReq("Sneha", seats, "MostVacant", "")); err != ErrInvalidCapacity {
			t.Errorf("seats=%d: expected ErrInvalidCapacity, got %v", seats, err)
		}
	}
}

func TestSelectRide_UnknownStrategy(t *testing.T) {
	reg := newMatchingFixture(t)

	if _, err := reg.SelectRide(bookingReq("Sneha", 1, "Fastest", "")); err != ErrUnknownStrategy {
		t.Errorf("expected ErrUnknownStrategy, got %v", err)
	}
}

func TestSelectRide_MostVacantPicksMaxSeats(t *testing.T) {
	reg := newMatchingFixture(t)

	booking, err := reg.SelectRide(bookingReq("Sneha", 1, "MostVacant", ""))
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if booking.Vehicle != "Polo" {
		t.Errorf("expected Polo (2 free seats), got %s", booking.Vehicle)
	}
	if booking.SeatsBooked != 1 {
		t.Errorf("expected 1 seat booked, got %d", booking.SeatsBooked)
	}
}

func TestSelectRide_MostVacantTieGoesToLowestID(t *testing.T) {
	reg := New()
	mustRegister(t, reg, "Neeraj", 29)
	mustRegister(t, reg, "Ritu", 27)
	mustRegister(t, reg, "Sneha", 29)
	mustAddVehicle(t, reg, "Neeraj", "Baleno", "TS-05-62395")
	mustAddVehicle(t, reg, "Ritu", "Polo", "KA-05-41491")
	mustOffer(t, reg, "Neeraj", "Bangalore", "Mysore", 2, "Baleno")
	mustOffer(t, reg, "Ritu", "Bangalore", "Mysore", 2, "Polo")

	booking, err := reg.SelectRide(bookingReq("Sneha", 1, "MostVacant", ""))
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if booking.RideID != 1 {
		t.Errorf("tie must go to the earliest-created ride, got id %d", booking.RideID)
	}
}

func TestSelectRide_PreferredVehicle(t *testing.T) {
	reg := newMatchingFixture(t)

	booking, err := reg.SelectRide(bookingReq("Sneha", 1, "PreferredVehicle", "Activa"))
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if booking.Vehicle != "Activa" {
		t.Errorf("expected Activa, got %s", booking.Vehicle)
	}
}

func TestSelectRide_PreferredVehicleNoSuitable(t *testing.T) {
	reg := newMatchingFixture(t)

	// Candidates exist on the route, but none on the requested vehicle.
	if _, err := reg.SelectRide(bookingReq("Sneha", 1, "PreferredVehicle", "XUV")); err != ErrNoSuitableRide {
		t.Errorf("expected ErrNoSuitableRide, got %v", err)
	}

	// An absent preferred name never matches.
	if _, err := reg.SelectRide(bookingReq("Sneha", 1, "PreferredVehicle", "")); err != ErrNoSuitableRide {
		t.Errorf("expected ErrNoSuitableRide for empty name, got %v", err)
	}
}

func TestSelectRide_DecrementsSeatsAndRecordsBooking(t *testing.T) {
	reg := newMatchingFixture(t)

	booking, err := reg.SelectRide(bookingReq("Sneha", 2, "MostVacant", ""))
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}

	var found bool
	for _, ride := range reg.Rides() {
		if ride.ID == booking.RideID {
			found = true
			if ride.AvailableSeats != 0 {
				t.Errorf("expected 0 available seats, got %d", ride.AvailableSeats)
			}
			if ride.TotalSeats != 2 {
				t.Errorf("total seats must not change, got %d", ride.TotalSeats)
			}
		}
	}
	if !found {
		t.Fatalf("booked ride %d not in ledger", booking.RideID)
	}

	for _, row := range reg.Stats() {
		if row.Name == "Sneha" {
			if row.RidesTaken != 1 {
				t.Errorf("expected 1 ride taken, got %d", row.RidesTaken)
			}
			if row.InProgress != 1 {
				t.Errorf("expected 1 in-progress booking, got %d", row.InProgress)
			}
		}
	}
}

func TestSelectRide_NeverOverbooks(t *testing.T) {
	reg := New()
	mustRegister(t, reg, "Ritu", 27)
	mustRegister(t, reg, "Sneha", 29)
	mustAddVehicle(t, reg, "Ritu", "Polo", "KA-05-41491")
	mustOffer(t, reg, "Ritu", "Bangalore", "Mysore", 2, "Polo")

	for i := 0; i < 2; i++ {
		if _, err := reg.SelectRide(bookingReq("Sneha", 1, "MostVacant", "")); err != nil {
			t.Fatalf("booking %d failed: %v", i+1, err)
		}
	}

	// The ride is full; it no longer passes the capacity filter.
	if _, err := reg.SelectRide(bookingReq("Sneha", 1, "MostVacant", "")); err != ErrNoMatchingRide {
		t.Errorf("expected ErrNoMatchingRide on a full ride, got %v", err)
	}

	ride := reg.Rides()[0]
	if ride.AvailableSeats != 0 {
		t.Errorf("expected 0 available seats, got %d", ride.AvailableSeats)
	}
}

func TestSelectRide_ConcurrentBookingsRespectCapacity(t *testing.T) {
	const totalSeats = 8
	const attempts = 2 * totalSeats

	reg := New()
	mustRegister(t, reg, "Ritu", 27)
	mustRegister(t, reg, "Sneha", 29)
	mustAddVehicle(t, reg, "Ritu", "Bus", "KA-99-00001")
	mustOffer(t, reg, "Ritu", "Bangalore", "Mysore", totalSeats, "Bus")

	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := reg.SelectRide(bookingReq("Sneha", 1, "MostVacant", "")); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if successes != totalSeats {
		t.Errorf("expected exactly %d successful bookings, got %d", totalSeats, successes)
	}
	if available := reg.Rides()[0].AvailableSeats; available != 0 {
		t.Errorf("expected 0 available seats, got %d", available)
	}
}

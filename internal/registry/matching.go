package registry

import "rideshare/internal/domain"

// BookingRequest contains the parameters for selecting a ride.
type BookingRequest struct {
	Rider            string
	Source           string
	Destination      string
	Seats            int
	Strategy         string
	PreferredVehicle string // required by the PreferredVehicle strategy
}

// Booking is the result of a successful selection.
type Booking struct {
	RideID      int64
	SeatsBooked int
	Driver      string
	Vehicle     string
}

// SelectRide books seats on the ride the strategy picks from the candidate
// set: active rides whose origin and destination equal the request's (exact
// string match) and which still have enough seats.
//
// Candidate filtering, the strategy pick, and the seat decrement all run
// under the ledger lock, so the capacity check can never go stale and the
// seats booked across concurrent requests never exceed a ride's total.
func (r *Registry) SelectRide(req BookingRequest) (Booking, error) {
	if req.Seats < 1 {
		return Booking{}, ErrInvalidCapacity
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[req.Rider]
	if !ok {
		return Booking{}, ErrUnknownUser
	}

	candidates := r.candidatesLocked(req)
	if len(candidates) == 0 {
		return Booking{}, ErrNoMatchingRide
	}

	strategy, err := strategyFor(req.Strategy)
	if err != nil {
		return Booking{}, err
	}

	selected := strategy.Pick(candidates, req)
	if selected == nil {
		return Booking{}, ErrNoSuitableRide
	}

	selected.AvailableSeats -= req.Seats
	user.RidesTaken++
	// Hold a reference, not a snapshot: the in-progress stat follows the
	// ride's current active flag until EndRide flips it.
	user.TakenRides = append(user.TakenRides, selected)

	return Booking{
		RideID:      selected.ID,
		SeatsBooked: req.Seats,
		Driver:      selected.Driver.Name,
		Vehicle:     selected.Vehicle.Name,
	}, nil
}

// candidatesLocked filters the ledger in insertion order. Caller holds r.mu.
func (r *Registry) candidatesLocked(req BookingRequest) []*domain.Ride {
	var candidates []*domain.Ride
	for _, ride := range r.rides {
		if ride.Active &&
			ride.Origin == req.Source &&
			ride.Destination == req.Destination &&
			ride.AvailableSeats >= req.Seats {
			candidates = append(candidates, ride)
		}
	}
	return candidates
}

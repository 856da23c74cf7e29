package registry

import (
	"time"

	"rideshare/internal/domain"
)

// OfferRide publishes a new ride on one of the user's vehicles.
//
// A vehicle identified by its (name, registration number) pair may appear in
// at most one active ride at a time, regardless of driver or route. The scan
// for a conflicting active ride, the id assignment, and the insert all happen
// under the ledger lock, so two concurrent offers for the same vehicle can
// never both succeed.
func (r *Registry) OfferRide(userName, origin, destination string, seats int, vehicleName string) (RideSnapshot, error) {
	if seats < 1 {
		return RideSnapshot{}, ErrInvalidCapacity
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userName]
	if !ok {
		return RideSnapshot{}, ErrUnknownUser
	}

	var vehicle *domain.Vehicle
	for _, v := range user.Vehicles {
		if v.Name == vehicleName {
			vehicle = v
			break
		}
	}
	if vehicle == nil {
		return RideSnapshot{}, ErrUnknownVehicle
	}

	for _, ride := range r.rides {
		if ride.Active && ride.Vehicle.Name == vehicle.Name && ride.Vehicle.Number == vehicle.Number {
			return RideSnapshot{}, ErrVehicleAlreadyActive
		}
	}

	ride := &domain.Ride{
		ID:             r.nextID,
		Driver:         user,
		Vehicle:        vehicle,
		Origin:         origin,
		Destination:    destination,
		TotalSeats:     seats,
		AvailableSeats: seats,
		Active:         true,
		CreatedAt:      time.Now(),
	}
	r.nextID++
	r.rides = append(r.rides, ride)
	user.RidesOffered++

	return snapshotRide(ride), nil
}

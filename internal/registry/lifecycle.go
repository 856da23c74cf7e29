package registry

// EndRide closes the first active ride, in ledger insertion order, whose
// vehicle name matches. Ending is one-way; the ride stays in the ledger with
// its statistics frozen.
//
// Matching is by display name only, so two same-named vehicles under
// different owners are ambiguous and the earliest active ride wins.
func (r *Registry) EndRide(vehicleName string) (RideSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ride := range r.rides {
		if ride.Active && ride.Vehicle.Name == vehicleName {
			ride.Active = false
			return snapshotRide(ride), nil
		}
	}
	return RideSnapshot{}, ErrNoActiveRideForVehicle
}

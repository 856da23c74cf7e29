package registry

// UserStats is one row of the per-user report.
type UserStats struct {
	Name         string
	RidesOffered int
	RidesTaken   int
	InProgress   int
}

// Stats reports offered/taken/in-progress counts for every user in
// registration order. Offered and taken are counters maintained by OfferRide
// and SelectRide; in-progress is computed fresh from current active flags:
// active rides the user drives plus active rides in their booking history.
// A user who booked their own offering is counted twice; that matches the
// reference counting behavior.
//
// The whole report is one consistent snapshot taken under the ledger lock.
func (r *Registry) Stats() []UserStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]UserStats, 0, len(r.userOrder))
	for _, user := range r.userOrder {
		inProgress := 0
		for _, ride := range r.rides {
			if ride.Active && ride.Driver == user {
				inProgress++
			}
		}
		for _, ride := range user.TakenRides {
			if ride.Active {
				inProgress++
			}
		}
		out = append(out, UserStats{
			Name:         user.Name,
			RidesOffered: user.RidesOffered,
			RidesTaken:   user.RidesTaken,
			InProgress:   inProgress,
		})
	}
	return out
}

package registry

import "rideshare/internal/domain"

// Strategy picks one ride from a non-empty candidate set, or nil if none of
// the candidates suits the request. Strategies are pure: filtering already
// happened, and the pick mutates nothing.
type Strategy interface {
	Pick(candidates []*domain.Ride, req BookingRequest) *domain.Ride
}

// mostVacant picks the candidate with the strictly greatest number of
// available seats. Ties go to the earliest-created ride, since candidates
// arrive in ledger insertion order.
type mostVacant struct{}

func (mostVacant) Pick(candidates []*domain.Ride, _ BookingRequest) *domain.Ride {
	best := candidates[0]
	for _, ride := range candidates[1:] {
		if ride.AvailableSeats > best.AvailableSeats {
			best = ride
		}
	}
	return best
}

// preferredVehicle picks the first candidate whose vehicle name equals the
// requested one. An empty preferred name matches nothing.
type preferredVehicle struct{}

func (preferredVehicle) Pick(candidates []*domain.Ride, req BookingRequest) *domain.Ride {
	if req.PreferredVehicle == "" {
		return nil
	}
	for _, ride := range candidates {
		if ride.Vehicle.Name == req.PreferredVehicle {
			return ride
		}
	}
	return nil
}

// strategyFor resolves a strategy token. The set is closed; new strategies
// are added here without touching the matching filter.
func strategyFor(name string) (Strategy, error) {
	switch domain.MatchStrategy(name) {
	case domain.StrategyMostVacant:
		return mostVacant{}, nil
	case domain.StrategyPreferredVehicle:
		return preferredVehicle{}, nil
	default:
		return nil, ErrUnknownStrategy
	}
}

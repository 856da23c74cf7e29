package domain

import "time"

// MatchStrategy selects which candidate ride a booking request lands on.
type MatchStrategy string

const (
	StrategyMostVacant       MatchStrategy = "MostVacant"
	StrategyPreferredVehicle MatchStrategy = "PreferredVehicle"
)

// Ride is a published ride offer. Rides are never deleted; an ended ride
// stays in the ledger with Active=false so historical stats keep working.
type Ride struct {
	ID             int64
	Driver         *User
	Vehicle        *Vehicle
	Origin         string
	Destination    string
	TotalSeats     int
	AvailableSeats int
	Active         bool
	CreatedAt      time.Time
}

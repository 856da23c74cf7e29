package domain

import "time"

// User represents a registered participant. A user can own vehicles,
// offer rides as a driver, and book seats on other users' rides.
type User struct {
	Name         string
	Age          int
	Vehicles     []*Vehicle
	RidesOffered int
	RidesTaken   int
	TakenRides   []*Ride // booking history, in booking order
	CreatedAt    time.Time
}

// Vehicle is owned by exactly one user. The name is unique per owner;
// the registration number is used together with the name to detect a
// vehicle already committed to an active ride.
type Vehicle struct {
	Owner  string
	Name   string
	Number string
}

package registry

import "errors"

var (
	// ErrDuplicateUser is returned when registering a user name that already exists.
	ErrDuplicateUser = errors.New("user already exists")

	// ErrUnknownUser is returned when the named user is not registered.
	ErrUnknownUser = errors.New("user not found")

	// ErrUnknownVehicle is returned when the user owns no vehicle with that name.
	ErrUnknownVehicle = errors.New("vehicle not found for user")

	// ErrVehicleAlreadyActive is returned when offering a ride on a vehicle
	// that is already committed to an active ride.
	ErrVehicleAlreadyActive = errors.New("vehicle is already in an active ride")

	// ErrInvalidCapacity is returned when a seat count is zero or negative.
	ErrInvalidCapacity = errors.New("seat count must be positive")

	// ErrNoMatchingRide is returned when no active ride matches the requested
	// route and seat count. A normal outcome, not a fault.
	ErrNoMatchingRide = errors.New("no matching rides found")

	// ErrNoSuitableRide is returned when candidates exist but the strategy
	// picks none of them.
	ErrNoSuitableRide = errors.New("no suitable ride found for strategy")

	// ErrUnknownStrategy is returned for a strategy token outside the closed set.
	ErrUnknownStrategy = errors.New("unknown matching strategy")

	// ErrNoActiveRideForVehicle is returned when ending a ride for a vehicle
	// with no active ride. A normal outcome, not a fault.
	ErrNoActiveRideForVehicle = errors.New("no active ride found for vehicle")
)

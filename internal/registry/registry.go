package registry

import (
	"sync"
	"time"

	"rideshare/internal/domain"
)

// Registry owns the full ride-sharing state: the user directory, the ride
// ledger, and the ride id counter. All operations take the registry's lock,
// so every mutation commits fully or not at all and concurrent bookings can
// never overbook a ride.
//
// One Registry instance is created per process (or per test); there is no
// ambient global state.
type Registry struct {
	mu        sync.RWMutex
	users     map[string]*domain.User
	userOrder []*domain.User // registration order, for deterministic reporting
	rides     []*domain.Ride // insertion order, never shrinks
	nextID    int64
}

// New creates an empty Registry. Ride ids start at 1 and are never reused.
func New() *Registry {
	return &Registry{
		users:  make(map[string]*domain.User),
		nextID: 1,
	}
}

// RegisterUser adds a user with zero counters and no vehicles.
func (r *Registry) RegisterUser(name string, age int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[name]; ok {
		return ErrDuplicateUser
	}

	user := &domain.User{
		Name:      name,
		Age:       age,
		CreatedAt: time.Now(),
	}
	r.users[name] = user
	r.userOrder = append(r.userOrder, user)
	return nil
}

// RegisterVehicle appends a vehicle to the owner's list. Vehicle names and
// numbers are not checked for uniqueness here; the single-active-ride rule
// is enforced by OfferRide instead.
func (r *Registry) RegisterVehicle(owner, name, number string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[owner]
	if !ok {
		return ErrUnknownUser
	}

	user.Vehicles = append(user.Vehicles, &domain.Vehicle{
		Owner:  owner,
		Name:   name,
		Number: number,
	})
	return nil
}

// FindVehicle returns a copy of the first vehicle on the owner matching by name.
func (r *Registry) FindVehicle(owner, name string) (domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[owner]
	if !ok {
		return domain.Vehicle{}, ErrUnknownUser
	}
	for _, v := range user.Vehicles {
		if v.Name == name {
			return *v, nil
		}
	}
	return domain.Vehicle{}, ErrUnknownVehicle
}

// UserSnapshot is a read-only view of a user for reporting and transport.
type UserSnapshot struct {
	Name         string
	Age          int
	Vehicles     []domain.Vehicle
	RidesOffered int
	RidesTaken   int
}

// Users returns all users in registration order.
func (r *Registry) Users() []UserSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]UserSnapshot, 0, len(r.userOrder))
	for _, user := range r.userOrder {
		s := UserSnapshot{
			Name:         user.Name,
			Age:          user.Age,
			RidesOffered: user.RidesOffered,
			RidesTaken:   user.RidesTaken,
		}
		for _, v := range user.Vehicles {
			s.Vehicles = append(s.Vehicles, *v)
		}
		out = append(out, s)
	}
	return out
}

// RideSnapshot is a read-only view of a ride, detached from the ledger so
// callers never touch shared state outside the lock.
type RideSnapshot struct {
	ID             int64
	Driver         string
	Vehicle        string
	VehicleNumber  string
	Origin         string
	Destination    string
	TotalSeats     int
	AvailableSeats int
	Active         bool
	CreatedAt      time.Time
}

// Rides returns the full ledger, active and ended, in insertion order.
func (r *Registry) Rides() []RideSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]RideSnapshot, 0, len(r.rides))
	for _, ride := range r.rides {
		out = append(out, snapshotRide(ride))
	}
	return out
}

func snapshotRide(ride *domain.Ride) RideSnapshot {
	return RideSnapshot{
		ID:             ride.ID,
		Driver:         ride.Driver.Name,
		Vehicle:        ride.Vehicle.Name,
		VehicleNumber:  ride.Vehicle.Number,
		Origin:         ride.Origin,
		Destination:    ride.Destination,
		TotalSeats:     ride.TotalSeats,
		AvailableSeats: ride.AvailableSeats,
		Active:         ride.Active,
		CreatedAt:      ride.CreatedAt,
	}
}

// Command demo drives the registry through a scripted scenario in-process
// and prints the resulting ride stats.
package main

import (
	"fmt"

	"rideshare/internal/registry"
)

func main() {
	reg := registry.New()

	mustRegisterUser(reg, "Amit", 36)
	mustRegisterVehicle(reg, "Amit", "Swift", "KA-01-12345")

	mustRegisterUser(reg, "Neeraj", 29)
	mustRegisterVehicle(reg, "Neeraj", "Baleno", "TS-05-62395")

	mustRegisterUser(reg, "Sneha", 29)

	mustRegisterUser(reg, "Ritu", 27)
	mustRegisterVehicle(reg, "Ritu", "Polo", "KA-05-41491")
	mustRegisterVehicle(reg, "Ritu", "Activa", "KA-12-12332")

	mustRegisterUser(reg, "Vikas", 35)
	mustRegisterVehicle(reg, "Vikas", "XUV", "KA-05-1234")

	offer(reg, "Amit", "Hyderabad", "Bangalore", 2, "Swift")
	offer(reg, "Neeraj", "Bangalore", "Mysore", 1, "Baleno")
	offer(reg, "Ritu", "Bangalore", "Mysore", 2, "Polo")
	offer(reg, "Ritu", "Bangalore", "Mysore", 1, "Activa")

	selectRide(reg, "Sneha", "Bangalore", "Mysore", 1, "MostVacant", "")
	selectRide(reg, "Vikas", "Bangalore", "Mysore", 1, "PreferredVehicle", "Activa")
	selectRide(reg, "Neeraj", "Mumbai", "Bangalore", 1, "MostVacant", "")
	selectRide(reg, "Amit", "Hyderabad", "Bangalore", 1, "PreferredVehicle", "Baleno")

	endRide(reg, "Polo")
	endRide(reg, "Activa")

	fmt.Println()
	for _, row := range reg.Stats() {
		fmt.Printf("%s: Rides Offered - %d, Rides Taken - %d, In-Progress - %d\n",
			row.Name, row.RidesOffered, row.RidesTaken, row.InProgress)
	}
}

func mustRegisterUser(reg *registry.Registry, name string, age int) {
	if err := reg.RegisterUser(name, age); err != nil {
		panic(err)
	}
}

func mustRegisterVehicle(reg *registry.Registry, owner, name, number string) {
	if err := reg.RegisterVehicle(owner, name, number); err != nil {
		panic(err)
	}
}

func offer(reg *registry.Registry, user, origin, destination string, seats int, vehicle string) {
	ride, err := reg.OfferRide(user, origin, destination, seats, vehicle)
	if err != nil {
		fmt.Printf("offer by %s on %s failed: %v\n", user, vehicle, err)
		return
	}
	fmt.Printf("Ride %d offered by %s with vehicle %s from %s to %s with %d seats.\n",
		ride.ID, user, vehicle, origin, destination, seats)
}

func selectRide(reg *registry.Registry, user, source, destination string, seats int, strategy, preferred string) {
	booking, err := reg.SelectRide(registry.BookingRequest{
		Rider:            user,
		Source:           source,
		Destination:      destination,
		Seats:            seats,
		Strategy:         strategy,
		PreferredVehicle: preferred,
	})
	if err != nil {
		fmt.Printf("booking by %s failed: %v\n", user, err)
		return
	}
	fmt.Printf("%s booked ride %d (%d seat(s) on %s).\n",
		user, booking.RideID, booking.SeatsBooked, booking.Vehicle)
}

func endRide(reg *registry.Registry, vehicle string) {
	if _, err := reg.EndRide(vehicle); err != nil {
		fmt.Printf("end ride for %s failed: %v\n", vehicle, err)
		return
	}
	fmt.Printf("Ride for vehicle %s has ended.\n", vehicle)
}

package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rideshare/internal/archive"
	"rideshare/internal/redis"
	"rideshare/internal/registry"
)

// RideHandler handles HTTP requests for ride offer, selection and lifecycle.
type RideHandler struct {
	reg        *registry.Registry
	archiver   archive.Archiver
	statsCache *redis.StatsCache // optional
}

// NewRideHandler creates a new RideHandler.
func NewRideHandler(reg *registry.Registry, archiver archive.Archiver, statsCache *redis.StatsCache) *RideHandler {
	return &RideHandler{
		reg:        reg,
		archiver:   archiver,
		statsCache: statsCache,
	}
}

// OfferRideRequest is the HTTP request body for offering a ride.
type OfferRideRequest struct {
	User        string `json:"user"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Seats       int    `json:"seats"`
	Vehicle     string `json:"vehicle"`
}

// SelectRideRequest is the HTTP request body for booking seats.
type SelectRideRequest struct {
	User             string `json:"user"`
	Source           string `json:"source"`
	Destination      string `json:"destination"`
	Seats            int    `json:"seats"`
	Strategy         string `json:"strategy"`
	PreferredVehicle string `json:"preferred_vehicle,omitempty"`
}

// EndRideRequest is the HTTP request body for ending a ride.
type EndRideRequest struct {
	Vehicle string `json:"vehicle"`
}

// RideResponse is the HTTP representation of a ride.
type RideResponse struct {
	ID             int64  `json:"id"`
	Driver         string `json:"driver"`
	Vehicle        string `json:"vehicle"`
	VehicleNumber  string `json:"vehicle_number"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	TotalSeats     int    `json:"total_seats"`
	AvailableSeats int    `json:"available_seats"`
	Active         bool   `json:"active"`
}

// BookingResponse is the HTTP response for a successful selection.
type BookingResponse struct {
	RideID      int64  `json:"ride_id"`
	SeatsBooked int    `json:"seats_booked"`
	Driver      string `json:"driver"`
	Vehicle     string `json:"vehicle"`
}

// Offer handles POST /v1/rides/offer
func (h *RideHandler) Offer(c *gin.Context) {
	var req OfferRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ride, err := h.reg.OfferRide(req.User, req.Origin, req.Destination, req.Seats, req.Vehicle)
	if err != nil {
		respondError(c, err)
		return
	}

	log.Printf("[RIDE] offered: id=%d driver=%s vehicle=%s route=%s->%s seats=%d",
		ride.ID, ride.Driver, ride.Vehicle, ride.Origin, ride.Destination, ride.TotalSeats)
	h.invalidateStatsAsync()

	c.JSON(http.StatusCreated, rideResponse(ride))
}

// Select handles POST /v1/rides/select
func (h *RideHandler) Select(c *gin.Context) {
	var req SelectRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	booking, err := h.reg.SelectRide(registry.BookingRequest{
		Rider:            req.User,
		Source:           req.Source,
		Destination:      req.Destination,
		Seats:            req.Seats,
		Strategy:         req.Strategy,
		PreferredVehicle: req.PreferredVehicle,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	log.Printf("[RIDE] booked: ride=%d rider=%s seats=%d strategy=%s",
		booking.RideID, req.User, booking.SeatsBooked, req.Strategy)
	h.invalidateStatsAsync()

	c.JSON(http.StatusOK, BookingResponse{
		RideID:      booking.RideID,
		SeatsBooked: booking.SeatsBooked,
		Driver:      booking.Driver,
		Vehicle:     booking.Vehicle,
	})
}

// End handles POST /v1/rides/end
func (h *RideHandler) End(c *gin.Context) {
	var req EndRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ride, err := h.reg.EndRide(req.Vehicle)
	if err != nil {
		respondError(c, err)
		return
	}

	log.Printf("[RIDE] ended: id=%d vehicle=%s seats_booked=%d",
		ride.ID, ride.Vehicle, ride.TotalSeats-ride.AvailableSeats)
	h.invalidateStatsAsync()
	h.archiveAsync(ride)

	c.JSON(http.StatusOK, rideResponse(ride))
}

// GetAll handles GET /v1/rides
func (h *RideHandler) GetAll(c *gin.Context) {
	rides := h.reg.Rides()

	response := make([]RideResponse, 0, len(rides))
	for _, r := range rides {
		response = append(response, rideResponse(r))
	}

	c.JSON(http.StatusOK, response)
}

func rideResponse(r registry.RideSnapshot) RideResponse {
	return RideResponse{
		ID:             r.ID,
		Driver:         r.Driver,
		Vehicle:        r.Vehicle,
		VehicleNumber:  r.VehicleNumber,
		Origin:         r.Origin,
		Destination:    r.Destination,
		TotalSeats:     r.TotalSeats,
		AvailableSeats: r.AvailableSeats,
		Active:         r.Active,
	}
}

// invalidateStatsAsync drops the cached stats snapshot after a mutation
// (fire and forget).
func (h *RideHandler) invalidateStatsAsync() {
	if h.statsCache == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = h.statsCache.Invalidate(ctx)
	}()
}

// archiveAsync appends a closed ride to the archive (fire and forget).
func (h *RideHandler) archiveAsync(ride registry.RideSnapshot) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.archiver.ArchiveRide(ctx, ride); err != nil {
			log.Printf("[ARCHIVE] failed to archive ride %d: %v", ride.ID, err)
		}
	}()
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rideshare/internal/registry"
)

// VehicleHandler handles HTTP requests for vehicles.
type VehicleHandler struct {
	reg *registry.Registry
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(reg *registry.Registry) *VehicleHandler {
	return &VehicleHandler{reg: reg}
}

// RegisterVehicleRequest is the HTTP request body for vehicle registration.
type RegisterVehicleRequest struct {
	Owner  string `json:"owner"`
	Name   string `json:"name"`
	Number string `json:"number"`
}

// Register handles POST /v1/vehicles/register
func (h *VehicleHandler) Register(c *gin.Context) {
	var req RegisterVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Owner == "" || req.Name == "" || req.Number == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "owner, name and number are required"})
		return
	}

	if err := h.reg.RegisterVehicle(req.Owner, req.Name, req.Number); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, VehicleResponse{
		Owner:  req.Owner,
		Name:   req.Name,
		Number: req.Number,
	})
}

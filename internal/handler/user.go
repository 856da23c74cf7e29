package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rideshare/internal/registry"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	reg *registry.Registry
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(reg *registry.Registry) *UserHandler {
	return &UserHandler{reg: reg}
}

// RegisterUserRequest is the HTTP request body for user registration.
type RegisterUserRequest struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// UserResponse is the HTTP response for user data.
type UserResponse struct {
	Name         string            `json:"name"`
	Age          int               `json:"age"`
	Vehicles     []VehicleResponse `json:"vehicles,omitempty"`
	RidesOffered int               `json:"rides_offered"`
	RidesTaken   int               `json:"rides_taken"`
}

// VehicleResponse is the HTTP representation of a vehicle.
type VehicleResponse struct {
	Owner  string `json:"owner"`
	Name   string `json:"name"`
	Number string `json:"number"`
}

// Register handles POST /v1/users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name is required"})
		return
	}

	if err := h.reg.RegisterUser(req.Name, req.Age); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, UserResponse{Name: req.Name, Age: req.Age})
}

// GetAll handles GET /v1/users
func (h *UserHandler) GetAll(c *gin.Context) {
	users := h.reg.Users()

	response := make([]UserResponse, 0, len(users))
	for _, u := range users {
		ur := UserResponse{
			Name:         u.Name,
			Age:          u.Age,
			RidesOffered: u.RidesOffered,
			RidesTaken:   u.RidesTaken,
		}
		for _, v := range u.Vehicles {
			ur.Vehicles = append(ur.Vehicles, VehicleResponse{
				Owner:  v.Owner,
				Name:   v.Name,
				Number: v.Number,
			})
		}
		response = append(response, ur)
	}

	c.JSON(http.StatusOK, response)
}

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rideshare/internal/redis"
	"rideshare/internal/registry"
)

// StatsHandler handles HTTP requests for the per-user ride stats report.
type StatsHandler struct {
	reg        *registry.Registry
	statsCache *redis.StatsCache // optional
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(reg *registry.Registry, statsCache *redis.StatsCache) *StatsHandler {
	return &StatsHandler{reg: reg, statsCache: statsCache}
}

// StatsRow is one user's row in the report.
type StatsRow struct {
	Name         string `json:"name"`
	RidesOffered int    `json:"rides_offered"`
	RidesTaken   int    `json:"rides_taken"`
	InProgress   int    `json:"in_progress"`
}

// Get handles GET /v1/stats
//
// With a cache configured, the served report may lag mutations by up to
// redis.StatsTTL; the underlying registry snapshot is always consistent.
func (h *StatsHandler) Get(c *gin.Context) {
	if h.statsCache != nil {
		if rows, err := h.statsCache.Get(c.Request.Context()); err == nil && rows != nil {
			c.JSON(http.StatusOK, toStatsRows(rows))
			return
		}
	}

	stats := h.reg.Stats()

	if h.statsCache != nil {
		go func(rows []registry.UserStats) {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = h.statsCache.Set(ctx, rows)
		}(stats)
	}

	c.JSON(http.StatusOK, toStatsRows(stats))
}

func toStatsRows(stats []registry.UserStats) []StatsRow {
	rows := make([]StatsRow, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, StatsRow{
			Name:         s.Name,
			RidesOffered: s.RidesOffered,
			RidesTaken:   s.RidesTaken,
			InProgress:   s.InProgress,
		})
	}
	return rows
}

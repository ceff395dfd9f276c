package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ucrconnect/dashboard-api/internal/logger"
	"github.com/ucrconnect/dashboard-api/internal/models"
)

// OverviewReader defines the interface that the stats service must implement.
type OverviewReader interface {
	GetOverview(ctx context.Context) ([]models.StatCard, error)
}

// StatsResponse represents the dashboard overview cards
// swagger:model StatsResponse
type StatsResponse struct {
	// Overview stat cards
	Stats []models.StatCard `json:"stats"`
}

// StatsErrorResponse represents an error response for the stats endpoint
// swagger:model StatsErrorResponse
type StatsErrorResponse struct {
	// Error message
	// example: Internal server error
	Message string `json:"message"`
}

// NewStatsHandler returns an HTTP handler for the dashboard overview cards.
// @Summary Dashboard overview statistics
// @Tags dashboard
// @Produce json
// @Success 200 {object} handlers.StatsResponse "Overview cards"
// @Failure 500 {object} handlers.StatsErrorResponse "Internal server error"
// @Router /api/admin/stats [get]
func NewStatsHandler(svc OverviewReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.GetOverview(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to serve overview stats", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(StatsErrorResponse{
				Message: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StatsResponse{
			Stats: stats,
		})
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ucrconnect/dashboard-api/internal/logger"
	"github.com/ucrconnect/dashboard-api/internal/models"
)

// ChartsReader defines the interface that the stats service must implement.
type ChartsReader interface {
	GetCharts(ctx context.Context) (*models.ChartData, error)
}

// ChartsErrorResponse represents an error response for the charts endpoint
// swagger:model ChartsErrorResponse
type ChartsErrorResponse struct {
	// Error message
	// example: Internal server error
	Message string `json:"message"`
}

// NewChartsHandler returns an HTTP handler for the analytics chart series.
// @Summary Analytics chart series
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.ChartData "Chart series"
// @Failure 500 {object} handlers.ChartsErrorResponse "Internal server error"
// @Router /api/admin/charts [get]
func NewChartsHandler(svc ChartsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		charts, err := svc.GetCharts(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to serve chart series", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ChartsErrorResponse{
				Message: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(charts)
	}
}

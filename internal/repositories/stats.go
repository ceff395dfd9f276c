package repositories

import (
	"context"
	"embed"
	"encoding/json"

	"github.com/ucrconnect/dashboard-api/internal/logger"
	"github.com/ucrconnect/dashboard-api/internal/models"
)

//go:embed fixtures/statsData.json fixtures/chartsData.json
var fixtureFS embed.FS

// StatsFixtureRepository serves dashboard statistics and chart series
// from JSON fixtures shipped with the binary. The dashboard has no live
// aggregation pipeline yet; the fixtures mirror what the frontend
// fetched from /data/*.json.
type StatsFixtureRepository struct{}

func NewStatsFixtureRepository() *StatsFixtureRepository {
	return &StatsFixtureRepository{}
}

// GetStats returns the overview stat cards.
func (r *StatsFixtureRepository) GetStats(ctx context.Context) ([]models.StatCard, error) {
	raw, err := fixtureFS.ReadFile("fixtures/statsData.json")
	if err != nil {
		logger.Log.Errorw("failed to read stats fixture", "error", err)
		return nil, err
	}

	var payload struct {
		Stats []models.StatCard `json:"stats"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		logger.Log.Errorw("failed to decode stats fixture", "error", err)
		return nil, err
	}

	return payload.Stats, nil
}

// GetCharts returns every chart series of the analytics page.
func (r *StatsFixtureRepository) GetCharts(ctx context.Context) (*models.ChartData, error) {
	raw, err := fixtureFS.ReadFile("fixtures/chartsData.json")
	if err != nil {
		logger.Log.Errorw("failed to read charts fixture", "error", err)
		return nil, err
	}

	var charts models.ChartData
	if err := json.Unmarshal(raw, &charts); err != nil {
		logger.Log.Errorw("failed to decode charts fixture", "error", err)
		return nil, err
	}

	return &charts, nil
}

package services

import (
	"context"

	"github.com/ucrconnect/dashboard-api/internal/logger"
	"github.com/ucrconnect/dashboard-api/internal/models"
)

// StatsReader serves dashboard statistics and chart series.
type StatsReader interface {
	GetStats(ctx context.Context) ([]models.StatCard, error)
	GetCharts(ctx context.Context) (*models.ChartData, error)
}

// StatsService exposes the dashboard's overview cards and analytics
// chart series.
type StatsService struct {
	reader StatsReader
}

// NewStatsService creates a new StatsService instance.
func NewStatsService(reader StatsReader) *StatsService {
	return &StatsService{reader: reader}
}

// GetOverview returns the landing-page stat cards.
func (svc *StatsService) GetOverview(ctx context.Context) ([]models.StatCard, error) {
	stats, err := svc.reader.GetStats(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load overview stats", "err", err)
		return nil, err
	}
	return stats, nil
}

// GetCharts returns the analytics chart series.
func (svc *StatsService) GetCharts(ctx context.Context) (*models.ChartData, error) {
	charts, err := svc.reader.GetCharts(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load chart series", "err", err)
		return nil, err
	}
	return charts, nil
}

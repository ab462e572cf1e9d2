package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/pkordes/mileage-logbook/internal/domain"
	"github.com/pkordes/mileage-logbook/internal/metrics"
	"github.com/pkordes/mileage-logbook/internal/repo"
)

// ExportService assembles a full flat export of every journey.
type ExportService struct {
	repo repo.JourneyRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(r repo.JourneyRepo) *ExportService {
	return &ExportService{repo: r}
}

// Export returns one ExportRow per journey in saved order.
// Always returns a non-nil slice.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	journeys, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(journeys))
	for _, j := range journeys {
		rows = append(rows, domain.ExportRow{
			ID:              j.ID.String(),
			Date:            j.Date.Format(time.DateOnly),
			StartedAt:       j.StartedAt.UTC().Format(time.RFC3339),
			StartReading:    j.StartReading,
			EndReading:      j.EndReading,
			Distance:        j.Distance,
			Purpose:         j.Purpose,
			Category:        string(j.Category),
			Tags:            j.Tags,
			FuelConsumption: j.FuelConsumption,
			FuelPrice:       j.FuelPrice,
			Cost:            j.Cost,
			CO2:             math.Round(metrics.JourneyCO2(j)*100) / 100,
		})
	}
	return rows, nil
}

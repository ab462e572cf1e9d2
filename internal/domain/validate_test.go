package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/mileage-logbook/internal/domain"
)

func TestValidate(t *testing.T) {
	today := time.Date(2026, time.October, 17, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		start, end float64
		date       time.Time
		wantErr    error
	}{
		{"valid", 1000, 1050, today.AddDate(0, 0, -1), nil},
		{"zero distance", 1000, 1000, today, nil},
		{"later today is still today", 1000, 1001, time.Date(2026, time.October, 17, 23, 0, 0, 0, time.UTC), nil},
		{"end before start", 1050, 1000, today, domain.ErrInvalidRange},
		{"tomorrow", 1000, 1050, today.AddDate(0, 0, 1), domain.ErrFutureDate},
		{"range checked first", 1050, 1000, today.AddDate(0, 0, 1), domain.ErrInvalidRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := domain.Validate(tc.start, tc.end, tc.date, today)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

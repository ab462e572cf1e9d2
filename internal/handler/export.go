package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"github.com/pkordes/mileage-logbook/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"id", "date", "started_at", "start_reading", "end_reading", "distance",
	"purpose", "category", "tags", "fuel_consumption", "fuel_price", "cost", "co2",
}

// GetExport handles GET /export.
// It returns every journey as a flat table.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.export.Export(r.Context())
	if err != nil {
		s.serviceError(w, r, err, "")
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "csv":
		writeCSV(w, rows)
	case "", "json":
		out := make([]ExportRow, 0, len(rows))
		for _, row := range rows {
			out = append(out, exportRowToResponse(row))
		}
		writeJSON(w, http.StatusOK, out)
	default:
		badRequest(w, "format must be csv or json")
	}
}

// writeCSV encodes rows as CSV and sends them as an attachment.
// Tags within a row are pipe-separated ("|") to keep each journey on a single CSV line.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	// bytes.Buffer.Write never returns an error.
	_ = cw.Write(csvHeaders)
	for _, row := range rows {
		_ = cw.Write(exportRowToCSVRecord(row))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="journeys.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// exportRowToCSVRecord encodes a domain.ExportRow as a flat string slice.
// Absent fuel is encoded as an empty string.
func exportRowToCSVRecord(r domain.ExportRow) []string {
	fuel := ""
	if r.FuelConsumption != nil {
		fuel = formatFloat(*r.FuelConsumption)
	}
	return []string{
		r.ID,
		r.Date,
		r.StartedAt,
		formatFloat(r.StartReading),
		formatFloat(r.EndReading),
		formatFloat(r.Distance),
		r.Purpose,
		r.Category,
		strings.Join(r.Tags, "|"),
		fuel,
		formatFloat(r.FuelPrice),
		formatFloat(r.Cost),
		formatFloat(r.CO2),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

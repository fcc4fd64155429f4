package surface

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"testing"

	"option-surface/internal/model"
)

func TestWriteCSV(t *testing.T) {
	axisX := model.AxisSpec{Parameter: model.ParameterSpot, Min: 80, Max: 120, Steps: 3}
	axisY := model.AxisSpec{Parameter: model.ParameterVolatility, Min: 0.1, Max: 0.3, Steps: 4}

	s, err := Build(baseInputs(), axisX, axisY)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := s.WriteCSV(&buf, SideCall); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}

	// Header row plus one row per x value; each row labels with the x value
	// followed by one cell per y value.
	if len(records) != 4 {
		t.Fatalf("row count: got %d, want 4", len(records))
	}
	if got := records[0][0]; got != `spot\volatility` {
		t.Fatalf("corner label: got %q", got)
	}
	for r, rec := range records {
		if len(rec) != 5 {
			t.Fatalf("row %d: got %d columns, want 5", r, len(rec))
		}
	}

	// Data rows round-trip the call grid.
	for i := range s.XValues {
		for j := range s.YValues {
			v, err := strconv.ParseFloat(records[i+1][j+1], 64)
			if err != nil {
				t.Fatalf("cell [%d][%d]: %v", i, j, err)
			}
			if diff := v - s.Calls[i][j]; diff > 1e-6 || diff < -1e-6 {
				t.Fatalf("cell [%d][%d]: got %f, want %f", i, j, v, s.Calls[i][j])
			}
		}
	}
}

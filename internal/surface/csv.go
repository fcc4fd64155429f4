package surface

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Side selects which price grid a CSV export contains.
type Side string

const (
	SideCall Side = "call"
	SidePut  Side = "put"
)

// WriteCSV writes one price grid with axis labels: the header row carries
// the y-axis values, the first column the x-axis values.
func (s *Surface) WriteCSV(w io.Writer, side Side) error {
	grid := s.Calls
	if side == SidePut {
		grid = s.Puts
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := make([]string, 0, len(s.YValues)+1)
	header = append(header, fmt.Sprintf("%s\\%s", s.XParameter, s.YParameter))
	for _, y := range s.YValues {
		header = append(header, fmtFloat(y))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, x := range s.XValues {
		row := make([]string, 0, len(s.YValues)+1)
		row = append(row, fmtFloat(x))
		for _, v := range grid[i] {
			row = append(row, fmtFloat(v))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}

// WriteCSVFile writes one price grid to path, creating or truncating it.
func (s *Surface) WriteCSVFile(path string, side Side) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.WriteCSV(f, side)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

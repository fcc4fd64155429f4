package surface

// Range is the min/max of one price grid. Renderers use it to pin a
// heatmap color scale without rescanning the grid.
type Range struct {
	Min float64
	Max float64
}

// Summary reports the value ranges of the call and put grids.
type Summary struct {
	Call Range
	Put  Range
}

// Summarize scans both grids once. An empty surface yields a zero Summary.
func (s *Surface) Summarize() Summary {
	var sum Summary
	first := true
	for i := range s.Calls {
		for j := range s.Calls[i] {
			c, p := s.Calls[i][j], s.Puts[i][j]
			if first {
				sum.Call = Range{Min: c, Max: c}
				sum.Put = Range{Min: p, Max: p}
				first = false
				continue
			}
			if c < sum.Call.Min {
				sum.Call.Min = c
			}
			if c > sum.Call.Max {
				sum.Call.Max = c
			}
			if p < sum.Put.Min {
				sum.Put.Min = p
			}
			if p > sum.Put.Max {
				sum.Put.Max = p
			}
		}
	}
	return sum
}

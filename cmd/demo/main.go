package main

import (
	"flag"
	"fmt"

	"option-surface/internal/config"
	"option-surface/internal/pricing"
	"option-surface/internal/surface"
)

// Demo:
// - Price a single at-the-money option from the default inputs
// - Build the default spot x volatility sensitivity surface
// - Print both grids the way the heatmap UI would consume them
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		cfg = loaded
	}

	inputs := cfg.Defaults.Inputs.ToModel()
	res, err := pricing.Price(inputs)
	if err != nil {
		panic(err)
	}
	fmt.Printf("spot=%.2f strike=%.2f maturity=%.2fy rate=%.2f%% vol=%.2f%%\n",
		inputs.Spot, inputs.Strike, inputs.TimeToMaturity,
		inputs.RiskFreeRate*100, inputs.Volatility*100)
	fmt.Printf("CALL %.4f   PUT %.4f\n\n", res.CallPrice, res.PutPrice)

	axisX, err := cfg.Defaults.XAxis.ToModel()
	if err != nil {
		panic(err)
	}
	axisY, err := cfg.Defaults.YAxis.ToModel()
	if err != nil {
		panic(err)
	}

	s, err := surface.Build(inputs, axisX, axisY)
	if err != nil {
		panic(err)
	}

	sum := s.Summarize()
	fmt.Printf("%s x %s call surface (%d x %d), range [%.4f, %.4f]:\n",
		s.XParameter, s.YParameter, axisX.Steps, axisY.Steps, sum.Call.Min, sum.Call.Max)
	printGrid(s.XValues, s.YValues, s.Calls)

	fmt.Printf("\nput surface, range [%.4f, %.4f]:\n", sum.Put.Min, sum.Put.Max)
	printGrid(s.XValues, s.YValues, s.Puts)
}

func printGrid(xValues, yValues []float64, grid [][]float64) {
	fmt.Printf("%8s", "")
	for _, y := range yValues {
		fmt.Printf("%8.2f", y)
	}
	fmt.Println()
	for i, x := range xValues {
		fmt.Printf("%8.2f", x)
		for _, v := range grid[i] {
			fmt.Printf("%8.2f", v)
		}
		fmt.Println()
	}
}

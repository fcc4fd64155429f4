package main

import (
	"flag"
	"fmt"
	"os"

	"option-surface/internal/config"
	"option-surface/internal/model"
	"option-surface/internal/pricing"
	"option-surface/internal/surface"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "price":
		cmdPrice(os.Args[2:])
	case "surface":
		cmdSurface(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli price --spot 100 --strike 100 --maturity 1 --rate 0.05 --vol 0.2")
	fmt.Println("  cli surface --x spot --x-min 80 --x-max 120 --y volatility --y-min 0.1 --y-max 0.3 --out results/calls.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - price prints the Black-Scholes call and put value for one input set")
	fmt.Println("  - surface sweeps two parameters and writes the price grid as CSV")
	fmt.Println("  - unset flags fall back to the configured defaults (--config)")
}

// inputFlags registers the five scalar input flags, defaulted from cfg.
func inputFlags(fs *flag.FlagSet, cfg *config.Config) *model.PricingInputs {
	d := cfg.Defaults.Inputs
	in := &model.PricingInputs{}
	fs.Float64Var(&in.Spot, "spot", d.Spot, "Spot price of the underlying")
	fs.Float64Var(&in.Strike, "strike", d.Strike, "Strike price")
	fs.Float64Var(&in.TimeToMaturity, "maturity", d.TimeToMaturity, "Time to maturity in years")
	fs.Float64Var(&in.RiskFreeRate, "rate", d.RiskFreeRate, "Risk-free rate (0.05 = 5%)")
	fs.Float64Var(&in.Volatility, "vol", d.Volatility, "Volatility (0.2 = 20%)")
	return in
}

// loadConfig resolves --config; an empty path means built-in defaults.
// The flag has to be parsed before the other flags are registered, so it
// is peeked from the raw args.
func loadConfig(args []string) *config.Config {
	for i, a := range args {
		if (a == "--config" || a == "-config") && i+1 < len(args) {
			cfg, err := config.Load(args[i+1])
			if err != nil {
				fatalf("load config: %v", err)
			}
			return cfg
		}
	}
	return config.Default()
}

func cmdPrice(args []string) {
	cfg := loadConfig(args)

	fs := flag.NewFlagSet("price", flag.ExitOnError)
	fs.String("config", "", "Path to YAML config")
	in := inputFlags(fs, cfg)
	_ = fs.Parse(args)

	res, err := pricing.Price(*in)
	if err != nil {
		fatalf("price: %v", err)
	}

	fmt.Printf("inputs: spot=%.4f strike=%.4f maturity=%.4fy rate=%.4f vol=%.4f\n",
		in.Spot, in.Strike, in.TimeToMaturity, in.RiskFreeRate, in.Volatility)
	fmt.Printf("call:   %.4f\n", res.CallPrice)
	fmt.Printf("put:    %.4f\n", res.PutPrice)
}

func cmdSurface(args []string) {
	cfg := loadConfig(args)

	fs := flag.NewFlagSet("surface", flag.ExitOnError)
	fs.String("config", "", "Path to YAML config")
	in := inputFlags(fs, cfg)

	dx, dy := cfg.Defaults.XAxis, cfg.Defaults.YAxis
	xParam := fs.String("x", dx.Parameter, "X axis parameter (spot, strike, time_to_maturity, risk_free_rate, volatility)")
	xMin := fs.Float64("x-min", dx.Min, "X axis minimum")
	xMax := fs.Float64("x-max", dx.Max, "X axis maximum")
	xSteps := fs.Int("x-steps", dx.Steps, "X axis resolution")
	yParam := fs.String("y", dy.Parameter, "Y axis parameter")
	yMin := fs.Float64("y-min", dy.Min, "Y axis minimum")
	yMax := fs.Float64("y-max", dy.Max, "Y axis maximum")
	ySteps := fs.Int("y-steps", dy.Steps, "Y axis resolution")
	outPath := fs.String("out", "", "Output CSV path (stdout if empty)")
	put := fs.Bool("put", false, "Export the put surface instead of the call surface")
	_ = fs.Parse(args)

	axisX, err := axisFromFlags(*xParam, *xMin, *xMax, *xSteps)
	if err != nil {
		fatalf("x axis: %v", err)
	}
	axisY, err := axisFromFlags(*yParam, *yMin, *yMax, *ySteps)
	if err != nil {
		fatalf("y axis: %v", err)
	}

	s, err := surface.Build(*in, axisX, axisY)
	if err != nil {
		fatalf("build surface: %v", err)
	}

	side := surface.SideCall
	if *put {
		side = surface.SidePut
	}

	if *outPath == "" {
		if err := s.WriteCSV(os.Stdout, side); err != nil {
			fatalf("write csv: %v", err)
		}
		return
	}
	if err := s.WriteCSVFile(*outPath, side); err != nil {
		fatalf("write %s: %v", *outPath, err)
	}
	fmt.Printf("wrote %d x %d %s surface to %s\n", axisX.Steps, axisY.Steps, side, *outPath)
}

func axisFromFlags(param string, min, max float64, steps int) (model.AxisSpec, error) {
	p, err := model.ParseParameter(param)
	if err != nil {
		return model.AxisSpec{}, err
	}
	return model.AxisSpec{Parameter: p, Min: min, Max: max, Steps: steps}, nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

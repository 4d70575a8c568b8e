package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sherbie/spot-risk-assessment/internal/analysis"
	"github.com/sherbie/spot-risk-assessment/internal/config"
	"github.com/sherbie/spot-risk-assessment/internal/cost"
	"github.com/sherbie/spot-risk-assessment/internal/data"
	"github.com/sherbie/spot-risk-assessment/internal/model"
	"github.com/sherbie/spot-risk-assessment/internal/simulate"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "estimate":
		cmdEstimate(os.Args[2:])
	case "prices":
		cmdPrices(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	case "stats":
		cmdStats(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli estimate --seed 42 --transfer_price 5 --fixed_rate 20 --consumption_file consumption.json")
	fmt.Println("  cli prices --seed 42 --out results/prices.csv")
	fmt.Println("  cli rank --seed 42 --transfer_price 5 --consumption_file consumption.json")
	fmt.Println("  cli stats --seed 42")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - estimate prints the annual cost summary (spot vs fixed) as indented JSON")
	fmt.Println("  - rates and prices are euro cents per kWh; totals are euros")
	fmt.Println("  - a zero --fixed_rate/--fixed_total counts as not supplied; at least one is required")
}

func cmdEstimate(args []string) {
	fs := flag.NewFlagSet("estimate", flag.ExitOnError)
	seed := fs.Int64("seed", 0, "Seed for the price simulator")
	fixedRate := fs.Float64("fixed_rate", 0, "Fixed rate in euro cents per kWh")
	fixedTotal := fs.Float64("fixed_total", 0, "Fixed annual total in euros")
	transferPrice := fs.Float64("transfer_price", 0, "Transfer price in euro cents per kWh")
	consumptionFile := fs.String("consumption_file", "", "JSON file with consumption data")
	hours := fs.Int("hours", 0, "Hours in the simulated year (0 = 8760)")
	cfgPath := fs.String("config", "", "Optional YAML run config; explicit flags override it")
	outPath := fs.String("out", "", "Optional path to also write the JSON summary to")
	_ = fs.Parse(args)

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	run := config.Config{
		Seed:            *seed,
		Hours:           *hours,
		FixedRate:       *fixedRate,
		FixedTotal:      *fixedTotal,
		TransferPrice:   *transferPrice,
		ConsumptionFile: *consumptionFile,
	}
	if *cfgPath != "" {
		base, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		run = config.Merge(*base, run)
	} else {
		if !set["seed"] {
			fmt.Println("--seed is required")
			os.Exit(2)
		}
		if !set["transfer_price"] {
			fmt.Println("--transfer_price is required")
			os.Exit(2)
		}
	}
	if run.Hours <= 0 {
		run.Hours = model.HoursPerYear
	}
	if run.ConsumptionFile == "" {
		fmt.Println("--consumption_file is required")
		os.Exit(2)
	}
	if run.FixedRate == 0 && run.FixedTotal == 0 {
		fmt.Println("either --fixed_rate or --fixed_total must be provided")
		os.Exit(2)
	}

	prices := simulate.New(run.Seed).SpotPrices(run.Hours)

	entries, err := data.LoadConsumptionJSON(run.ConsumptionFile)
	if err != nil {
		fmt.Printf("loading consumption data: %v\n", err)
		os.Exit(1)
	}

	summary, err := cost.Calculate(entries, prices, cost.Params{
		FixedRate:     run.FixedRate,
		FixedTotal:    run.FixedTotal,
		TransferPrice: run.TransferPrice,
	})
	if err != nil {
		fmt.Printf("calculating costs: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(summary, "", "    ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(out))

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := os.WriteFile(*outPath, append(out, '\n'), 0o644); err != nil {
			panic(err)
		}
	}
}

func cmdPrices(args []string) {
	fs := flag.NewFlagSet("prices", flag.ExitOnError)
	seed := fs.Int64("seed", 0, "Seed for the price simulator")
	hours := fs.Int("hours", model.HoursPerYear, "Hours in the simulated year")
	outPath := fs.String("out", "results/prices.csv", "Output CSV path")
	_ = fs.Parse(args)

	requireFlag(fs, "seed")

	prices := simulate.New(*seed).SpotPrices(*hours)

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := simulate.WritePricesCSV(*outPath, prices); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(prices), *outPath)
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	seed := fs.Int64("seed", 0, "Seed for the price simulator")
	transferPrice := fs.Float64("transfer_price", 0, "Transfer price in euro cents per kWh")
	consumptionFile := fs.String("consumption_file", "", "JSON file with consumption data")
	hours := fs.Int("hours", model.HoursPerYear, "Hours in the simulated year")
	_ = fs.Parse(args)

	requireFlag(fs, "seed")
	if *consumptionFile == "" {
		fmt.Println("--consumption_file is required")
		os.Exit(2)
	}

	entries, err := data.LoadConsumptionJSON(*consumptionFile)
	if err != nil {
		fmt.Printf("loading consumption data: %v\n", err)
		os.Exit(1)
	}

	prices := simulate.New(*seed).SpotPrices(*hours)
	ranked := analysis.RankEntriesByCost(entries, prices, *transferPrice)

	fmt.Printf("%-4s %-24s %-8s %-8s %-9s %-12s\n", "rank", "name", "hours", "peak", "off-peak", "spot EUR")
	for i, r := range ranked {
		fmt.Printf("%-4d %-24s %-8d %-8d %-9d %-12.2f\n",
			i+1,
			r.Name,
			r.ActiveHours,
			r.PeakHours,
			r.OffPeakHours,
			r.VariableCost,
		)
	}
}

func cmdStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	seed := fs.Int64("seed", 0, "Seed for the price simulator")
	hours := fs.Int("hours", model.HoursPerYear, "Hours in the simulated year")
	_ = fs.Parse(args)

	requireFlag(fs, "seed")

	stats := analysis.ComputePriceStats(simulate.New(*seed).SpotPrices(*hours))

	fmt.Printf("%-8s %-5s %-7s %-8s %-8s %-8s %-8s %-8s\n", "season", "peak", "count", "min", "max", "mean", "p05", "p95")
	fmt.Printf("%-8s %-5s %-7d %-8.2f %-8.2f %-8.2f %-8.2f %-8.2f\n",
		"ALL", "-", stats.Count, stats.Min, stats.Max, stats.Mean, stats.P05, stats.P95)
	for _, b := range stats.Buckets {
		fmt.Printf("%-8s %-5t %-7d %-8.2f %-8.2f %-8.2f %-8.2f %-8.2f\n",
			b.Season, b.Peak, b.Count, b.Min, b.Max, b.Mean, b.P05, b.P95)
	}
}

func requireFlag(fs *flag.FlagSet, name string) {
	seen := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			seen = true
		}
	})
	if !seen {
		fmt.Printf("--%s is required\n", name)
		os.Exit(2)
	}
}

// Command sample-data writes a synthetic Athlete Report Card CSV so the
// label pipeline can be exercised without a real Swimtopia export.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/flowerhill/swimreports/internal/sampledata"
	"github.com/flowerhill/swimreports/pkg/logger"
)

// Default configuration constants.
const (
	defaultAthletes = 40
	defaultMeets    = 5
	defaultSeed     = 42
)

func main() {
	var (
		athletes = flag.Int("athletes", defaultAthletes, "Number of athletes to generate")
		meets    = flag.Int("meets", defaultMeets, "Number of meets in the season")
		seed     = flag.Int64("seed", defaultSeed, "Random seed (same seed, same file)")
		output   = flag.String("output", "sample_report_card.csv", "Output CSV path")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	cfg := sampledata.Config{
		Athletes: *athletes,
		Meets:    *meets,
		Seed:     *seed,
		Output:   *output,
	}

	if err := sampledata.Run(context.Background(), cfg); err != nil {
		os.Stderr.WriteString("sample generation failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}

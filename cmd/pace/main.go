// Command pace prints a bounded integer sequence, one value per
// interval.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/adamwoolhether/pace"
	"github.com/adamwoolhether/pace/internal/validate"
)

type config struct {
	Interval time.Duration `flag:"interval" validate:"interval"`
	Count    int           `flag:"count" validate:"required,min=1"`
}

func main() {
	interval := flag.Duration("interval", time.Second, "minimum spacing between emissions")
	count := flag.Int("count", 10, "number of values to emit")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("run_id", uuid.NewString())

	cfg := config{
		Interval: *interval,
		Count:    *count,
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("pace", "run", err)
		os.Exit(1)
	}
}

func run(cfg config, logger *slog.Logger) error {
	if err := validate.Check(cfg); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	vals := make([]int, cfg.Count)
	for i := range vals {
		vals[i] = i
	}

	p, err := pace.New(pace.FromSlice(vals), cfg.Interval,
		pace.WithLogger(func() *slog.Logger { return logger }),
	)
	if err != nil {
		return fmt.Errorf("building pacer: %w", err)
	}

	logger.Info("emitting", "count", cfg.Count, "interval", cfg.Interval.String())

	start := time.Now()
	for v := range p.All() {
		fmt.Println(v)
	}

	logger.Info("done", "elapsed", time.Since(start).String())

	return nil
}

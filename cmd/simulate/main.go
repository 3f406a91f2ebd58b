// Command simulate plays batches of bot games and prints how each strategy
// fared.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/osse101/AquaponicsSim_Go/internal/catalog"
	"github.com/osse101/AquaponicsSim_Go/internal/game"
	"github.com/osse101/AquaponicsSim_Go/internal/logger"
	"github.com/osse101/AquaponicsSim_Go/internal/report"
	"github.com/osse101/AquaponicsSim_Go/internal/simulation"
)

const (
	defaultCount      = 10
	defaultStrategies = "balanced"
	defaultMaxTurns   = 365
)

type options struct {
	count      int
	strategies string
	maxTurns   int
	verbose    bool
	output     string
	seed       int64
	batchSize  int
	workers    int
	configPath string
	s3Bucket   string
	s3Region   string
	s3Endpoint string

	// explicit records the flags given on the command line
	explicit map[string]bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Simulation failed: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.IntVar(&o.count, "count", defaultCount, "Number of games to simulate")
	fs.IntVar(&o.count, "c", defaultCount, "Shorthand for -count")
	fs.StringVar(&o.strategies, "strategies", defaultStrategies, "Comma separated strategies: conservative, aggressive, balanced, random")
	fs.StringVar(&o.strategies, "s", defaultStrategies, "Shorthand for -strategies")
	fs.IntVar(&o.maxTurns, "max-turns", defaultMaxTurns, "Maximum days per game")
	fs.IntVar(&o.maxTurns, "t", defaultMaxTurns, "Shorthand for -max-turns")
	fs.BoolVar(&o.verbose, "verbose", false, "Log every game")
	fs.BoolVar(&o.verbose, "v", false, "Shorthand for -verbose")
	fs.StringVar(&o.output, "output", "", "Write detailed results as JSON to this file")
	fs.StringVar(&o.output, "o", "", "Shorthand for -output")
	fs.Int64Var(&o.seed, "seed", simulation.DefaultSeed, "Base seed; game i uses seed+i")
	fs.IntVar(&o.batchSize, "batch", 0, "Games dispatched per batch (0 keeps the configured value)")
	fs.IntVar(&o.workers, "workers", 0, "Concurrent games (0 keeps the configured value)")
	fs.StringVar(&o.configPath, "config", "", "TOML file with simulation settings")
	fs.StringVar(&o.s3Bucket, "s3-bucket", "", "Also upload results to this S3 bucket")
	fs.StringVar(&o.s3Region, "s3-region", "", "Region for -s3-bucket")
	fs.StringVar(&o.s3Endpoint, "s3-endpoint", "", "Endpoint for S3-compatible stores")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	o.explicit = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.explicit[f.Name] = true })
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return o, nil
}

// buildConfig layers the flags over the TOML file, or the defaults when
// no file is given. Over a file, only flags given explicitly apply.
func buildConfig(o options) (simulation.Config, error) {
	cfg := simulation.DefaultConfig()
	if o.configPath != "" {
		loaded, err := simulation.LoadConfig(o.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	set := func(long, short string) bool { return o.explicit[long] || o.explicit[short] }
	if o.configPath == "" || set("strategies", "s") {
		cfg.Strategies = splitList(o.strategies)
	}
	if o.configPath == "" || set("max-turns", "t") {
		cfg.MaxTurns = o.maxTurns
	}
	if o.explicit["seed"] {
		cfg.Seed = o.seed
	}
	if o.batchSize > 0 {
		cfg.BatchSize = o.batchSize
	}
	if o.workers > 0 {
		cfg.Workers = o.workers
	}
	return cfg, cfg.Validate()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if o.count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", o.count)
	}

	cfg, err := buildConfig(o)
	if err != nil {
		return err
	}

	logger.InitLoggerWithWriter(logger.CLIConfig(o.verbose), stderr)

	fmt.Fprintf(stdout, "Running %d games (strategies: %s, max turns: %d, seed: %d)\n",
		o.count, strings.Join(cfg.Strategies, ", "), cfg.MaxTurns, cfg.Seed)

	cat, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	runner, err := simulation.NewRunner(game.NewEngine(cat), cfg)
	if err != nil {
		return err
	}

	batch, err := runner.RunBatch(ctx, o.count)
	if err != nil {
		return err
	}

	exporters := []report.Exporter{report.NewSummaryWriter(stdout)}
	if o.output != "" {
		exporters = append(exporters, report.NewFileExporter(o.output))
	}
	if o.s3Bucket != "" {
		s3Exporter, err := report.NewS3Exporter(ctx, report.S3Config{
			Bucket:    o.s3Bucket,
			Region:    o.s3Region,
			Endpoint:  o.s3Endpoint,
			PathStyle: o.s3Endpoint != "",
		})
		if err != nil {
			return err
		}
		exporters = append(exporters, s3Exporter)
	}
	if err := report.ExportAll(ctx, batch, exporters...); err != nil {
		return err
	}

	if o.output != "" {
		fmt.Fprintf(stdout, "\nDetailed results saved to: %s\n", o.output)
	}
	return nil
}

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mihir1708/mapreduce/internal/shared/config"
	"github.com/mihir1708/mapreduce/internal/shared/logging"
	"github.com/mihir1708/mapreduce/pkg/engine"
	"github.com/mihir1708/mapreduce/pkg/jobs"

	_ "github.com/mihir1708/mapreduce/examples/grep"
	_ "github.com/mihir1708/mapreduce/examples/wordcount"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to config file")
		input      = flag.String("input", "", "input files glob pattern")
		output     = flag.String("output", "", "output directory (overrides config)")
		jobName    = flag.String("job", "", "job to run (e.g., wordcount, grep)")
		workers    = flag.Int("workers", 0, "number of workers (overrides config)")
		partitions = flag.Int("partitions", -1, "number of partitions (overrides config)")
	)

	options := make(map[string]string)
	flag.Func("opt", "job option as key=value (can be repeated)", func(s string) error {
		key, value, found := strings.Cut(s, "=")
		if !found {
			return fmt.Errorf("expected key=value, got %q", s)
		}
		options[key] = value
		return nil
	})

	flag.Parse()

	cfg, err := config.LoadRunner(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level, cfg.Logging.Format)

	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *partitions >= 0 {
		cfg.Partitions = *partitions
	}
	if *output != "" {
		cfg.Output = *output
	}

	if *input == "" {
		logger.Fatal("Input pattern must be specified using the -input flag")
	}
	if *jobName == "" {
		logger.Fatal("Job must be specified using the -job flag", "available", jobs.List())
	}

	files, err := engine.FindInputFiles(*input)
	if err != nil {
		logger.Fatal("Failed to expand input pattern", "pattern", *input, "error", err)
	}
	if len(files) == 0 {
		logger.Fatal("No files matched the input pattern", "pattern", *input)
	}

	job, err := jobs.Get(*jobName)
	if err != nil {
		logger.Fatal("Unknown job", "job", *jobName, "available", jobs.List())
	}

	if cfg.Output != "" {
		if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
			logger.Fatal("Failed to create output directory", "dir", cfg.Output, "error", err)
		}
		if _, ok := options["output"]; !ok {
			options["output"] = cfg.Output
		}
	}

	if err := job.Configure(options); err != nil {
		logger.Fatal("Failed to configure job", "job", job.Name(), "error", err)
	}
	if err := job.Validate(); err != nil {
		logger.Fatal("Job configuration invalid", "job", job.Name(), "error", err)
	}

	e := engine.NewEngine(engine.Config{
		Inputs:     files,
		Workers:    cfg.Workers,
		Partitions: cfg.Partitions,
		Map:        job.Map,
		Reduce:     job.Reduce,
		Logger:     logger.Slog(),
	})

	logger.Info("Starting job",
		"job", job.Name(),
		"input", *input,
		"files", len(files),
		"output", cfg.Output,
		"workers", cfg.Workers,
		"partitions", cfg.Partitions,
	)

	if err := e.Run(); err != nil {
		logger.Fatal("Job failed", "job", job.Name(), "error", err)
	}

	logger.Info("Job completed successfully", "job", job.Name())
}

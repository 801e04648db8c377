// Command pathfinder answers fastest-route requests over a levada network.
//
// Usage:
//
//	pathfinder [flags] NETWORK_FILE REQUESTS_FILE RESULTS_FILE
//
// Settings are read from the environment (seeded from .env when present) and
// may be overridden by flags. The report is written to <results-dir>/RESULTS_FILE.
//
// Exit codes: 0 success, 1 load/search/write failure, 2 usage error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathfinder/internal/config"
	"github.com/katalvlaran/pathfinder/internal/logger"
	"github.com/katalvlaran/pathfinder/internal/netfile"
	"github.com/katalvlaran/pathfinder/internal/report"
	"github.com/katalvlaran/pathfinder/search"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one CLI invocation and returns the process exit code.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	fs := flag.NewFlagSet("pathfinder", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: pathfinder [flags] NETWORK_FILE REQUESTS_FILE RESULTS_FILE")
		fs.PrintDefaults()
	}
	cfg.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if err := validateArgs(fs, cfg); err != nil {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return exitUsage
	}

	level, err := logger.ParseLevel(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	writers := []io.Writer{logger.ConsoleWriter(stderr)}
	if cfg.Logging.FilePath != "" {
		fw := logger.FileWriter(cfg.Logging.FilePath)
		if c, ok := fw.(io.Closer); ok {
			defer c.Close()
		}
		writers = append(writers, fw)
	}
	log := logger.New(level, writers...).With("run_id", uuid.NewString())

	path, err := execute(ctx, cfg, fs.Arg(0), fs.Arg(1), fs.Arg(2), log)
	if err != nil {
		log.Error("pathfinder failed", "error", err)
		return exitFailure
	}
	log.Info("results written", "path", path)

	return exitOK
}

// validateArgs checks the positional arguments and the merged settings.
func validateArgs(fs *flag.FlagSet, cfg *config.Config) error {
	if fs.NArg() != 3 {
		return fmt.Errorf("expected 3 arguments, got %d", fs.NArg())
	}
	for i, what := range []string{"network file", "requests file", "results file"} {
		if fs.Arg(i) == "" {
			return fmt.Errorf("%s must not be empty", what)
		}
	}

	return cfg.Validate()
}

// execute loads the inputs, answers every request and writes the report.
func execute(ctx context.Context, cfg *config.Config, networkPath, requestsPath, resultsName string, log logger.Logger) (string, error) {
	net, err := netfile.LoadNetwork(networkPath)
	if err != nil {
		return "", err
	}
	log.Info("network loaded",
		"file", networkPath,
		"stations", net.Len(),
		"connections", net.ConnectionCount(),
	)

	queries, err := netfile.LoadRequests(requestsPath)
	if err != nil {
		return "", err
	}
	log.Info("requests loaded", "file", requestsPath, "requests", len(queries))

	runner, err := search.New(net,
		search.WithK(cfg.Search.TopK),
		search.WithWorkers(cfg.Search.Workers),
		search.WithCache(cfg.Search.CacheTTL),
		search.WithLogger(log),
	)
	if err != nil {
		return "", err
	}
	outcomes, err := runner.Run(ctx, queries)
	if err != nil {
		return "", err
	}

	var ropts []report.Option
	if cfg.Results.BOM {
		ropts = append(ropts, report.WithBOM())
	}

	return report.WriteFile(cfg.Results.Dir, resultsName, outcomes, ropts...)
}

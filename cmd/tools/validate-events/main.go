package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	pkgconfig "github.com/Vodeneev/sofacheck/internal/pkg/config"
	"github.com/Vodeneev/sofacheck/internal/pkg/logging"
	"github.com/Vodeneev/sofacheck/internal/pkg/metrics"
	"github.com/Vodeneev/sofacheck/internal/pkg/validation"
)

type config struct {
	configPath string
	metrics    bool
}

func main() {
	os.Exit(exitCode(run(os.Args[1:], os.Stdout)))
}

// exitCode is 0 once the cases ran, even if some of them failed to load.
// Only bad flags or an unusable config give 1.
func exitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	default:
		slog.Error("validate-events failed", "error", err)
		return 1
	}
}

func run(args []string, stdout io.Writer) error {
	cfg, err := parseFlags(args, stdout)
	if err != nil {
		return err
	}

	appConfig, err := pkgconfig.LoadOrDefault(cfg.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if _, err := logging.SetupLogger(&appConfig.Logging, "validate-events"); err != nil {
		slog.Warn("Failed to setup logging, continuing with default logger", "error", err)
	}

	var observers []validation.Observer
	findings := metrics.NewFindings()
	if cfg.metrics {
		observers = append(observers, findings)
	}

	summary := validation.NewRunner(appConfig.Validator, observers...).Run(stdout)
	slog.Debug("Validation finished", "cases", summary.Cases, "failed", summary.Failed)

	if cfg.metrics {
		fmt.Fprintln(stdout)
		if err := findings.WriteText(stdout); err != nil {
			return err
		}
	}
	return nil
}

func parseFlags(args []string, stdout io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("validate-events", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.StringVar(&cfg.configPath, "config", "", "Path to YAML config with cases (optional, built-in cases otherwise)")
	fs.BoolVar(&cfg.metrics, "metrics", false, "Print finding counters in Prometheus text format after the summary")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}

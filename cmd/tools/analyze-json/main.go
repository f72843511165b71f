package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	pkgconfig "github.com/Vodeneev/sofacheck/internal/pkg/config"
	"github.com/Vodeneev/sofacheck/internal/pkg/inspect"
	"github.com/Vodeneev/sofacheck/internal/pkg/logging"
)

var errUsage = errors.New("no arguments")

type config struct {
	configPath string
	files      []string
}

func main() {
	os.Exit(exitCode(run(os.Args[1:], os.Stdout), os.Stdout))
}

// exitCode reports err to w and maps it to the process status: 1 for usage
// errors, no matched files and load failures, 0 otherwise.
func exitCode(err error, w io.Writer) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		printUsage(w)
	case errors.Is(err, inspect.ErrNoFiles):
		fmt.Fprintln(w, "No files found!")
	case errors.Is(err, flag.ErrHelp):
		return 0
	default:
		slog.Error("analyze-json failed", "error", err)
	}
	return 1
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

	if _, err := logging.SetupLogger(&appConfig.Logging, "analyze-json"); err != nil {
		slog.Warn("Failed to setup logging, continuing with default logger", "error", err)
	}

	if len(cfg.files) == 0 {
		return errUsage
	}

	n, err := inspect.New(appConfig.Inspector).Run(stdout, cfg.files)
	if err != nil {
		return err
	}
	slog.Debug("Analysis finished", "files", n)
	return nil
}

func parseFlags(args []string, stdout io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("analyze-json", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.StringVar(&cfg.configPath, "config", "", "Path to YAML config (optional)")
	fs.Usage = func() { printUsage(stdout) }
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	cfg.files = fs.Args()
	return cfg, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: analyze-json [-config path] <json_file> [json_file2 ...]")
	fmt.Fprintln(w, "Example: analyze-json 'test_data/sofascore/*.json'")
}

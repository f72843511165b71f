package inspect

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Vodeneev/sofacheck/internal/pkg/config"
	"github.com/Vodeneev/sofacheck/internal/pkg/jsonvalue"
)

var ErrNoFiles = errors.New("no files found")

const banner = "============================================================"

// Inspector prints shape summaries and structure outlines for JSON files.
type Inspector struct {
	structure StructureOptions
	limits    SummaryLimits
}

func New(cfg config.InspectorConfig) *Inspector {
	return &Inspector{
		structure: StructureOptions{MaxDepth: cfg.MaxDepth, MaxKeys: cfg.MaxKeys},
		limits:    limitsFromConfig(cfg),
	}
}

// ExpandPaths expands arguments containing * or ? and keeps other paths as
// given. The result keeps argument order and drops repeated paths. A
// malformed pattern is logged and matches nothing.
func ExpandPaths(args []string) []string {
	seen := make(map[string]struct{})
	var paths []string
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		paths = append(paths, p)
	}

	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?") {
			add(arg)
			continue
		}
		matches, err := filepath.Glob(arg)
		if err != nil {
			slog.Warn("Skipping bad pattern", "pattern", arg, "error", err)
			continue
		}
		for _, m := range matches {
			add(m)
		}
	}
	return paths
}

// Run analyzes every file matched by args. Per-file problems are printed and
// do not stop the batch; only an empty file list is an error.
func (in *Inspector) Run(w io.Writer, args []string) (int, error) {
	paths := ExpandPaths(args)
	if len(paths) == 0 {
		return 0, ErrNoFiles
	}

	for _, path := range paths {
		if err := in.AnalyzeFile(w, path); err != nil {
			slog.Debug("File skipped", "path", path, "error", err)
		}
	}

	fmt.Fprintf(w, "\n%s\n", banner)
	fmt.Fprintf(w, "Analysis complete! Processed %d file(s).\n", len(paths))
	fmt.Fprintln(w, banner)

	return len(paths), nil
}

// AnalyzeFile prints the report for one file. The returned error has already
// been written to w.
func (in *Inspector) AnalyzeFile(w io.Writer, path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(w, "ERROR: File not found: %s\n", path)
		return err
	}

	fmt.Fprintf(w, "\n%s\n", banner)
	fmt.Fprintf(w, "Analyzing: %s\n", path)
	fmt.Fprintf(w, "%s\n", banner)

	doc, err := jsonvalue.DecodeFile(path)
	var syntaxErr *jsonvalue.SyntaxError
	switch {
	case errors.As(err, &syntaxErr):
		fmt.Fprintf(w, "ERROR: Invalid JSON - %v\n", syntaxErr.Err)
		return err
	case err != nil:
		fmt.Fprintf(w, "ERROR: %v\n", err)
		return err
	}

	in.Analyze(w, doc)
	return nil
}

// Analyze prints the detected type, its summary and the structure outline.
func (in *Inspector) Analyze(w io.Writer, doc *jsonvalue.Value) Shape {
	shape := Classify(doc)
	fmt.Fprintf(w, "Detected Type: %s\n", shape.Label())

	PrintSummary(w, shape, doc, in.limits)

	fmt.Fprintln(w, "\n=== JSON STRUCTURE ===")
	PrintStructure(w, doc, in.structure)

	return shape
}

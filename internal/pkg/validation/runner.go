package validation

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Vodeneev/sofacheck/internal/pkg/config"
	"github.com/Vodeneev/sofacheck/internal/pkg/jsonvalue"
	"github.com/Vodeneev/sofacheck/internal/pkg/models"
	"github.com/Vodeneev/sofacheck/internal/pkg/timeconv"
)

// Observer receives the result of every case that loaded successfully.
type Observer interface {
	ObserveCase(c config.Case, res Result)
}

// Summary aggregates all cases of a run.
type Summary struct {
	Cases  int
	Failed int
	Counts map[models.FindingKind]int
}

// Runner replays the configured (file, date) cases.
type Runner struct {
	cfg       config.ValidatorConfig
	conv      *timeconv.Converter
	filter    *WindowFilter
	observers []Observer
}

func NewRunner(cfg config.ValidatorConfig, observers ...Observer) *Runner {
	conv := timeconv.NewFixedOffset(cfg.UTCOffsetHours)
	return &Runner{
		cfg:       cfg,
		conv:      conv,
		filter:    NewWindowFilter(conv, NewValidator(), cfg.Tournaments),
		observers: observers,
	}
}

// RunCase loads the case file and filters it. The file is closed before
// RunCase returns.
func (r *Runner) RunCase(c config.Case) (Result, error) {
	date, err := timeconv.ParseDate(c.Date)
	if err != nil {
		return Result{}, err
	}

	doc, err := jsonvalue.DecodeFile(c.File)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load events: %w", err)
	}

	events := models.EventsFromDocument(doc)
	slog.Debug("Loaded events", "file", c.File, "events", len(events))

	return r.filter.Apply(events, date), nil
}

// Run prints a report per case followed by the summary table. A failing case
// is reported and the run continues with the next one.
func (r *Runner) Run(w io.Writer) Summary {
	summary := Summary{Counts: make(map[models.FindingKind]int)}
	limits := ReportLimits{MaxRows: r.cfg.MaxRows, MaxFindings: r.cfg.MaxFindings}

	for _, c := range r.cfg.Cases {
		summary.Cases++
		WriteCaseHeader(w, c.File, c.Date, r.conv)

		res, err := r.RunCase(c)
		if err != nil {
			summary.Failed++
			slog.Warn("Case failed", "file", c.File, "date", c.Date, "error", err)
			fmt.Fprintf(w, "ERROR processing %s: %v\n", c.File, err)
			continue
		}

		WriteCaseReport(w, res, limits)
		for kind, n := range res.CountByKind() {
			summary.Counts[kind] += n
		}
		for _, o := range r.observers {
			o.ObserveCase(c, res)
		}
	}

	WriteSummary(w, summary.Counts)
	return summary
}

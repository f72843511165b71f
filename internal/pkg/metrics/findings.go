package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/Vodeneev/sofacheck/internal/pkg/config"
	"github.com/Vodeneev/sofacheck/internal/pkg/models"
	"github.com/Vodeneev/sofacheck/internal/pkg/validation"
)

// Findings counts validator results per case. It implements
// validation.Observer and uses its own registry, nothing is served over HTTP.
type Findings struct {
	registry *prometheus.Registry

	findingsTotal *prometheus.CounterVec
	eventsTotal   *prometheus.CounterVec
	matchedEvents *prometheus.GaugeVec
}

func NewFindings() *Findings {
	f := &Findings{registry: prometheus.NewRegistry()}

	f.findingsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sofascore",
		Subsystem: "validator",
		Name:      "findings_total",
		Help:      "Data-quality findings by category",
	}, []string{"category"})
	f.eventsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sofascore",
		Subsystem: "validator",
		Name:      "events_total",
		Help:      "Events seen by the validator, by filter outcome",
	}, []string{"outcome"})
	f.matchedEvents = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "sofascore",
		Subsystem: "validator",
		Name:      "matched_events",
		Help:      "Events on the target date per case",
	}, []string{"file", "date"})

	f.registry.MustRegister(f.findingsTotal, f.eventsTotal, f.matchedEvents)

	// Categories show up with 0 even when nothing was found.
	for _, kind := range models.Categories {
		f.findingsTotal.WithLabelValues(kind.Category())
	}

	return f
}

func (f *Findings) ObserveCase(c config.Case, res validation.Result) {
	for kind, n := range res.CountByKind() {
		f.findingsTotal.WithLabelValues(kind.Category()).Add(float64(n))
	}

	f.eventsTotal.WithLabelValues("matched").Add(float64(len(res.Matches)))
	f.eventsTotal.WithLabelValues("no_timestamp").Add(float64(res.SkippedNoTimestamp))
	f.eventsTotal.WithLabelValues("other_day").Add(float64(res.SkippedOtherDay))
	f.eventsTotal.WithLabelValues("tournament_filtered").Add(float64(res.SkippedTournament))

	f.matchedEvents.WithLabelValues(c.File, c.Date).Set(float64(len(res.Matches)))
}

// WriteText writes all metrics in the Prometheus text exposition format.
func (f *Findings) WriteText(w io.Writer) error {
	families, err := f.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

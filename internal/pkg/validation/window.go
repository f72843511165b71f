package validation

import (
	"time"

	"github.com/Vodeneev/sofacheck/internal/pkg/interfaces"
	"github.com/Vodeneev/sofacheck/internal/pkg/models"
	"github.com/Vodeneev/sofacheck/internal/pkg/timeconv"
)

// Match is an event that passed the date window, with resolved names.
type Match struct {
	Event models.Event
	UTC   time.Time
	Local time.Time
	Home  string
	Away  string
}

func (m Match) Status() string { return m.Event.Status.Or("unknown") }

func (m Match) Tournament() string { return m.Event.Tournament.Name.Or(models.UnknownName) }

// Result of replaying one event list against a target date.
type Result struct {
	Date     timeconv.Date
	Total    int
	Matches  []Match // input order
	Findings []models.Finding

	SkippedNoTimestamp int
	SkippedOtherDay    int
	SkippedTournament  int
}

// CountByKind counts findings per kind.
func (r Result) CountByKind() map[models.FindingKind]int {
	counts := make(map[models.FindingKind]int)
	for _, f := range r.Findings {
		counts[f.Kind]++
	}
	return counts
}

// Phases counts matched events by live/finished/scheduled.
func (r Result) Phases() map[models.Phase]int {
	phases := make(map[models.Phase]int)
	for _, m := range r.Matches {
		phases[m.Event.Phase()]++
	}
	return phases
}

// WindowFilter keeps events whose local calendar date equals the target date.
type WindowFilter struct {
	conv        *timeconv.Converter
	validator   interfaces.EventValidator
	tournaments map[string]struct{}
}

// NewWindowFilter creates a filter. An empty tournaments list disables the
// tournament slug filter.
func NewWindowFilter(conv *timeconv.Converter, validator interfaces.EventValidator, tournaments []string) *WindowFilter {
	f := &WindowFilter{conv: conv, validator: validator}
	if len(tournaments) > 0 {
		f.tournaments = make(map[string]struct{}, len(tournaments))
		for _, slug := range tournaments {
			f.tournaments[slug] = struct{}{}
		}
	}
	return f
}

// Apply validates every event and returns those on the target date.
// Events without a start timestamp are validated but never matched.
func (f *WindowFilter) Apply(events []models.Event, date timeconv.Date) Result {
	res := Result{Date: date, Total: len(events)}

	for i := range events {
		event := &events[i]
		res.Findings = append(res.Findings, f.validator.ValidateEvent(event)...)

		ts := event.StartTimestamp.Or(0)
		if ts == 0 {
			res.SkippedNoTimestamp++
			continue
		}
		if !f.conv.OnDate(ts, date) {
			res.SkippedOtherDay++
			continue
		}
		if !f.tournamentEnabled(event.Tournament) {
			res.SkippedTournament++
			continue
		}

		res.Matches = append(res.Matches, Match{
			Event: *event,
			UTC:   time.Unix(ts, 0).UTC(),
			Local: f.conv.ToLocal(ts),
			Home:  event.HomeTeam.DisplayName(),
			Away:  event.AwayTeam.DisplayName(),
		})
	}

	return res
}

// tournamentEnabled matches either the season slug or the unique tournament slug.
func (f *WindowFilter) tournamentEnabled(t models.Tournament) bool {
	if f.tournaments == nil {
		return true
	}
	for _, slug := range []models.Optional[string]{t.Slug, t.UniqueSlug} {
		if s, ok := slug.Get(); ok {
			if _, enabled := f.tournaments[s]; enabled {
				return true
			}
		}
	}
	return false
}

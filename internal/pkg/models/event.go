package models

import (
	"fmt"

	"github.com/Vodeneev/sofacheck/internal/pkg/jsonvalue"
)

// UnknownName is shown when a team has neither shortName nor name.
const UnknownName = "Unknown"

// Phase is the coarse match state derived from status.type.
type Phase string

const (
	PhaseScheduled Phase = "scheduled"
	PhaseLive      Phase = "live"
	PhaseFinished  Phase = "finished"
)

// Team is homeTeam/awayTeam of a SofaScore event.
type Team struct {
	Name      Optional[string]
	ShortName Optional[string]
	Country   Optional[string]

	// shortName was sent with a non-null value that is not a string
	shortNameOther bool
}

// ShortNameNull reports a shortName that is absent or null. A value of
// another type counts as present.
func (t Team) ShortNameNull() bool {
	return !t.ShortName.IsSet() && !t.shortNameOther
}

// DisplayName prefers a non-empty shortName, then a non-empty name.
func (t Team) DisplayName() string {
	if s, ok := t.ShortName.Get(); ok && s != "" {
		return s
	}
	if s, ok := t.Name.Get(); ok && s != "" {
		return s
	}
	return UnknownName
}

// Score is homeScore/awayScore. SofaScore sends {} before a match starts.
type Score struct {
	Fields  int
	Current Optional[int64]
	periods map[int]int64
}

func (s Score) IsEmpty() bool { return s.Fields == 0 }

// Legs returns the highest periodN value present (N from 7 down to 1).
// For darts this is the leg count of the current set.
func (s Score) Legs() Optional[int64] {
	for p := 7; p >= 1; p-- {
		if v, ok := s.periods[p]; ok {
			return Some(v)
		}
	}
	return None[int64]()
}

func (s Score) Period(n int) Optional[int64] {
	if v, ok := s.periods[n]; ok {
		return Some(v)
	}
	return None[int64]()
}

type Tournament struct {
	ID         Optional[int64]
	Name       Optional[string]
	Slug       Optional[string]
	UniqueSlug Optional[string]
}

// Event is a typed view over one entry of the "events" array.
type Event struct {
	ID                Optional[int64]
	StartTimestamp    Optional[int64]
	HomeTeam          Team
	AwayTeam          Team
	HomeScore         Score
	AwayScore         Score
	Status            Optional[string]
	StatusDescription Optional[string]
	Tournament        Tournament
}

// EventID returns the id or 0 when it is missing.
func (e Event) EventID() int64 { return e.ID.Or(0) }

// Phase maps status.type: "inprogress" is live, "finished" is finished,
// everything else (including a missing status) is scheduled.
func (e Event) Phase() Phase {
	switch e.Status.Or("") {
	case "inprogress":
		return PhaseLive
	case "finished":
		return PhaseFinished
	default:
		return PhaseScheduled
	}
}

// ScoreLine renders "home:away" using current scores, "-" when either is missing.
func (e Event) ScoreLine() string {
	h, hok := e.HomeScore.Current.Get()
	a, aok := e.AwayScore.Current.Get()
	if !hok || !aok {
		return "-"
	}
	return fmt.Sprintf("%d:%d", h, a)
}

// EventFromValue builds an Event from a decoded event object. It never fails:
// members that are missing, null or of the wrong type are left absent.
func EventFromValue(v *jsonvalue.Value) Event {
	return Event{
		ID:                optionalInt(v.Field("id")),
		StartTimestamp:    optionalInt(v.Field("startTimestamp")),
		HomeTeam:          teamFromValue(v.Field("homeTeam")),
		AwayTeam:          teamFromValue(v.Field("awayTeam")),
		HomeScore:         scoreFromValue(v.Field("homeScore")),
		AwayScore:         scoreFromValue(v.Field("awayScore")),
		Status:            optionalString(v.Path("status", "type")),
		StatusDescription: optionalString(v.Path("status", "description")),
		Tournament: Tournament{
			ID:         optionalInt(v.Path("tournament", "id")),
			Name:       optionalString(v.Path("tournament", "name")),
			Slug:       optionalString(v.Path("tournament", "slug")),
			UniqueSlug: optionalString(v.Path("tournament", "uniqueTournament", "slug")),
		},
	}
}

// EventsFromDocument reads the "events" array of a daily events document.
func EventsFromDocument(doc *jsonvalue.Value) []Event {
	items := doc.Field("events").Items()
	events := make([]Event, 0, len(items))
	for _, item := range items {
		events = append(events, EventFromValue(item))
	}
	return events
}

func teamFromValue(v *jsonvalue.Value) Team {
	shortName := v.Field("shortName")
	t := Team{
		Name:      optionalString(v.Field("name")),
		ShortName: optionalString(shortName),
		Country:   optionalString(v.Path("country", "name")),
	}
	t.shortNameOther = shortName != nil && !t.ShortName.IsSet()
	return t
}

func scoreFromValue(v *jsonvalue.Value) Score {
	if !v.IsObject() {
		return Score{}
	}
	s := Score{
		Fields:  v.Len(),
		Current: optionalInt(v.Field("current")),
	}
	for p := 1; p <= 7; p++ {
		if n, ok := v.Field(fmt.Sprintf("period%d", p)).Int64(); ok {
			if s.periods == nil {
				s.periods = make(map[int]int64)
			}
			s.periods[p] = n
		}
	}
	return s
}

func optionalString(v *jsonvalue.Value) Optional[string] {
	if s, ok := v.Str(); ok {
		return Some(s)
	}
	return None[string]()
}

func optionalInt(v *jsonvalue.Value) Optional[int64] {
	if n, ok := v.Int64(); ok {
		return Some(n)
	}
	return None[int64]()
}

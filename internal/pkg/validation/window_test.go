package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vodeneev/sofacheck/internal/pkg/jsonvalue"
	"github.com/Vodeneev/sofacheck/internal/pkg/models"
	"github.com/Vodeneev/sofacheck/internal/pkg/timeconv"
)

func loadFixture(t *testing.T) []models.Event {
	t.Helper()
	doc, err := jsonvalue.DecodeFile("testdata/2025-12-13.json")
	require.NoError(t, err)
	return models.EventsFromDocument(doc)
}

func mustDate(t *testing.T, s string) timeconv.Date {
	t.Helper()
	d, err := timeconv.ParseDate(s)
	require.NoError(t, err)
	return d
}

func matchIDs(res Result) []int64 {
	ids := make([]int64, 0, len(res.Matches))
	for _, m := range res.Matches {
		ids = append(ids, m.Event.EventID())
	}
	return ids
}

func TestWindowFilterTargetDate(t *testing.T) {
	events := loadFixture(t)
	filter := NewWindowFilter(timeconv.NewFixedOffset(1), NewValidator(), nil)

	res := filter.Apply(events, mustDate(t, "2025-12-13"))

	assert.Equal(t, 5, res.Total)
	assert.Equal(t, []int64{101, 102, 0}, matchIDs(res))
	assert.Equal(t, 1, res.SkippedNoTimestamp)
	assert.Equal(t, 1, res.SkippedOtherDay)
	assert.Equal(t, 0, res.SkippedTournament)

	first := res.Matches[0]
	assert.Equal(t, "2025-12-13 09:00:00", first.Local.Format("2006-01-02 15:04:05"))
	assert.Equal(t, "2025-12-13 08:00:00 UTC", first.UTC.Format("2006-01-02 15:04:05 MST"))
	assert.Equal(t, "L. Littler", first.Home)
	assert.Equal(t, "G. Price", first.Away)
	assert.Equal(t, "finished", first.Status())
	assert.Equal(t, "PDC World Championship", first.Tournament())

	// 23:00 UTC on the 12th is midnight on the 13th at UTC+1.
	assert.Equal(t, "2025-12-13 00:00:00", res.Matches[1].Local.Format("2006-01-02 15:04:05"))
	assert.Equal(t, "Stephen Bunting", res.Matches[1].Home)
	assert.Equal(t, models.UnknownName, res.Matches[2].Home)
}

func TestWindowFilterFindingsDoNotExclude(t *testing.T) {
	events := loadFixture(t)
	filter := NewWindowFilter(timeconv.NewFixedOffset(1), NewValidator(), nil)

	res := filter.Apply(events, mustDate(t, "2025-12-13"))

	var got []string
	for _, f := range res.Findings {
		got = append(got, f.String())
	}
	assert.Equal(t, []string{
		"Event 102: homeTeam shortName is NULL",
		"Event 102: homeScore is empty",
		"Event 103: awayScore is empty",
		"Event 0: homeTeam shortName is NULL",
	}, got)

	// 102 has an empty homeScore and is still matched.
	assert.Contains(t, matchIDs(res), int64(102))

	counts := res.CountByKind()
	assert.Equal(t, 2, counts[models.FindingNullShortName])
	assert.Equal(t, 2, counts[models.FindingEmptyScore])
}

func TestWindowFilterOffsets(t *testing.T) {
	events := loadFixture(t)

	tests := []struct {
		name   string
		offset int
		date   string
		want   []int64
	}{
		{"previous day at UTC+1", 1, "2025-12-12", []int64{103}},
		{"previous day at UTC", 0, "2025-12-12", []int64{102, 103}},
		{"target day at UTC", 0, "2025-12-13", []int64{101, 0}},
		{"a day ahead", 25, "2025-12-14", []int64{101, 102, 0}},
		{"unrelated day", 1, "2025-11-01", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := NewWindowFilter(timeconv.NewFixedOffset(tt.offset), NewValidator(), nil)
			res := filter.Apply(events, mustDate(t, tt.date))
			assert.Equal(t, tt.want, matchIDs(res))
			// findings are independent of the date window
			assert.Len(t, res.Findings, 4)
		})
	}
}

func TestWindowFilterTournamentSlugs(t *testing.T) {
	events := loadFixture(t)
	filter := NewWindowFilter(timeconv.NewFixedOffset(1), NewValidator(), []string{"pdc-world-championship"})

	res := filter.Apply(events, mustDate(t, "2025-12-13"))

	assert.Equal(t, []int64{101, 0}, matchIDs(res))
	assert.Equal(t, 1, res.SkippedTournament)
}

func TestWindowFilterIsIdempotent(t *testing.T) {
	events := loadFixture(t)
	filter := NewWindowFilter(timeconv.NewFixedOffset(1), NewValidator(), nil)
	date := mustDate(t, "2025-12-13")

	first := filter.Apply(events, date)
	second := filter.Apply(events, date)

	assert.Equal(t, first, second)
}

func TestResultPhases(t *testing.T) {
	events := loadFixture(t)
	filter := NewWindowFilter(timeconv.NewFixedOffset(1), NewValidator(), nil)

	phases := filter.Apply(events, mustDate(t, "2025-12-13")).Phases()

	assert.Equal(t, 1, phases[models.PhaseFinished])
	assert.Equal(t, 1, phases[models.PhaseScheduled])
	assert.Equal(t, 1, phases[models.PhaseLive])
}

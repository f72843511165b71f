package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/Vodeneev/sofacheck/internal/pkg/config"
	"github.com/Vodeneev/sofacheck/internal/pkg/jsonvalue"
)

const na = "N/A"

// SummaryLimits caps the number of groups, events and items shown per shape.
type SummaryLimits struct {
	MaxGroups      int
	MaxTournaments int
	MaxEvents      int
	MaxStatItems   int
}

func limitsFromConfig(cfg config.InspectorConfig) SummaryLimits {
	return SummaryLimits{
		MaxGroups:      cfg.MaxGroups,
		MaxTournaments: cfg.MaxTournaments,
		MaxEvents:      cfg.MaxEvents,
		MaxStatItems:   cfg.MaxStatItems,
	}
}

// PrintSummary prints the shape-specific summary of doc.
func PrintSummary(w io.Writer, shape Shape, doc *jsonvalue.Value, limits SummaryLimits) {
	switch shape {
	case ShapeTournaments:
		printTournaments(w, doc, limits)
	case ShapeDailyEvents:
		printDailyEvents(w, doc, limits)
	case ShapeStatistics:
		printStatistics(w, doc, limits)
	case ShapeSingleEvent:
		printSingleEvent(w, doc)
	default:
		fmt.Fprintln(w, "WARNING: Could not detect JSON type!")
		if doc.IsObject() {
			fmt.Fprintf(w, "Root keys: [%s]\n", strings.Join(doc.Keys(), ", "))
		} else {
			fmt.Fprintf(w, "Root type: %s\n", doc.TypeName())
		}
	}
}

func head(items []*jsonvalue.Value, n int) []*jsonvalue.Value {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func printTournaments(w io.Writer, doc *jsonvalue.Value, limits SummaryLimits) {
	fmt.Fprintln(w, "\n=== TOURNAMENT LIST ANALYSIS ===")

	groups := doc.Field("groups")
	fmt.Fprintf(w, "Found %d groups\n", groups.Len())
	for i, group := range head(groups.Items(), limits.MaxGroups) {
		fmt.Fprintf(w, "\nGroup %d:\n", i)
		if !group.Has("uniqueTournaments") {
			continue
		}
		tournaments := group.Field("uniqueTournaments")
		fmt.Fprintf(w, "  Tournaments: %d\n", tournaments.Len())
		for j, t := range head(tournaments.Items(), limits.MaxTournaments) {
			fmt.Fprintf(w, "    Tournament %d:\n", j)
			fmt.Fprintf(w, "      ID: %s\n", t.Field("id").Display(na))
			fmt.Fprintf(w, "      Name: %s\n", t.Field("name").Display(na))
			fmt.Fprintf(w, "      Slug: %s\n", t.Field("slug").Display(na))
			fmt.Fprintf(w, "      Category: %s\n", t.Path("category", "name").Display(na))
		}
	}
}

func printDailyEvents(w io.Writer, doc *jsonvalue.Value, limits SummaryLimits) {
	fmt.Fprintln(w, "\n=== DAILY EVENTS ANALYSIS ===")

	events := doc.Field("events")
	fmt.Fprintf(w, "Found %d events\n", events.Len())
	for i, event := range head(events.Items(), limits.MaxEvents) {
		fmt.Fprintf(w, "\nEvent %d:\n", i)
		fmt.Fprintf(w, "  ID: %s\n", event.Field("id").Display(na))
		fmt.Fprintf(w, "  Status: %s\n", event.Path("status", "type").Display(na))
		fmt.Fprintf(w, "  Home: %s\n", event.Path("homeTeam", "name").Display(na))
		fmt.Fprintf(w, "  Away: %s\n", event.Path("awayTeam", "name").Display(na))

		if event.Has("homeScore") {
			fmt.Fprintf(w, "  Home Score: %s\n", event.Path("homeScore", "current").Display("0"))
		}
		if event.Has("awayScore") {
			fmt.Fprintf(w, "  Away Score: %s\n", event.Path("awayScore", "current").Display("0"))
		}
		if event.Has("tournament") {
			fmt.Fprintf(w, "  Tournament: %s\n", event.Path("tournament", "name").Display(na))
			fmt.Fprintf(w, "  Tournament ID: %s\n", event.Path("tournament", "id").Display(na))
		}

		fmt.Fprintf(w, "  Start Timestamp: %s\n", event.Field("startTimestamp").Display(na))
	}
}

func printStatistics(w io.Writer, doc *jsonvalue.Value, limits SummaryLimits) {
	fmt.Fprintln(w, "\n=== MATCH STATISTICS ANALYSIS ===")

	periods := doc.Field("statistics")
	fmt.Fprintf(w, "Found %d statistic periods\n", periods.Len())
	for i, period := range periods.Items() {
		fmt.Fprintf(w, "\nPeriod %d (%s):\n", i, period.Field("period").Display(na))
		for j, group := range period.Field("groups").Items() {
			fmt.Fprintf(w, "  Group %d (%s):\n", j, group.Field("groupName").Display(na))
			if !group.Has("statisticsItems") {
				continue
			}
			items := group.Field("statisticsItems")
			fmt.Fprintf(w, "    Items: %d\n", items.Len())
			for _, item := range head(items.Items(), limits.MaxStatItems) {
				fmt.Fprintf(w, "      %s: %s | %s\n",
					item.Field("name").Display(na), item.Field("home").Display(na), item.Field("away").Display(na))
			}
		}
	}
}

func printSingleEvent(w io.Writer, doc *jsonvalue.Value) {
	fmt.Fprintln(w, "\n=== EVENT DETAILS ANALYSIS ===")

	event := doc.Field("event")
	fmt.Fprintf(w, "Event ID: %s\n", event.Field("id").Display(na))
	fmt.Fprintf(w, "Status: %s\n", event.Path("status", "type").Display(na))
	fmt.Fprintf(w, "Status Description: %s\n", event.Path("status", "description").Display(na))
	fmt.Fprintf(w, "Home Team: %s\n", event.Path("homeTeam", "name").Display(na))
	fmt.Fprintf(w, "Away Team: %s\n", event.Path("awayTeam", "name").Display(na))

	if event.Has("homeScore") {
		fmt.Fprintf(w, "Home Score - Current: %s\n", event.Path("homeScore", "current").Display(na))
		fmt.Fprintf(w, "Home Score - Period1: %s\n", event.Path("homeScore", "period1").Display(na))
	}
	if event.Has("awayScore") {
		fmt.Fprintf(w, "Away Score - Current: %s\n", event.Path("awayScore", "current").Display(na))
		fmt.Fprintf(w, "Away Score - Period1: %s\n", event.Path("awayScore", "period1").Display(na))
	}
	if event.Has("tournament") {
		fmt.Fprintf(w, "Tournament: %s\n", event.Path("tournament", "name").Display(na))
		fmt.Fprintf(w, "Tournament ID: %s\n", event.Path("tournament", "id").Display(na))
	}
}

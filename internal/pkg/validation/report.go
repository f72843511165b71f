package validation

import (
	"fmt"
	"io"
	"strings"

	"github.com/Vodeneev/sofacheck/internal/pkg/models"
	"github.com/Vodeneev/sofacheck/internal/pkg/timeconv"
)

const (
	banner    = "================================================================================"
	rowLayout = "%-25s %-20s %-20s %-12s %-7s %s\n"
)

// ReportLimits caps how many rows and findings are printed per case.
type ReportLimits struct {
	MaxRows     int
	MaxFindings int
}

// WriteCaseHeader prints the banner that opens a case.
func WriteCaseHeader(w io.Writer, file string, date string, conv *timeconv.Converter) {
	fmt.Fprintf(w, "\n%s\n", banner)
	fmt.Fprintf(w, "Testing with file: %s\n", file)
	fmt.Fprintf(w, "Considering 'today' as: %s\n", date)
	fmt.Fprintf(w, "Timezone offset: %s\n", conv.Name())
	fmt.Fprintf(w, "%s\n\n", banner)
}

// WriteCaseReport prints the filtered matches and findings of one case.
func WriteCaseReport(w io.Writer, res Result, limits ReportLimits) {
	fmt.Fprintf(w, "Total events in file: %d\n", res.Total)
	fmt.Fprintf(w, "\nMatches on %s (after filtering): %d\n", res.Date, len(res.Matches))
	fmt.Fprintf(w, "Skipped: %d without timestamp, %d on other days, %d by tournament filter\n",
		res.SkippedNoTimestamp, res.SkippedOtherDay, res.SkippedTournament)

	fmt.Fprintf(w, "\n"+rowLayout, "Match Time", "Home", "Away", "Status", "Score", "Tournament")
	fmt.Fprintln(w, strings.Repeat("-", 108))

	for i, m := range res.Matches {
		if i >= limits.MaxRows {
			break
		}
		fmt.Fprintf(w, rowLayout,
			m.Local.Format("2006-01-02 15:04:05"), m.Home, m.Away, m.Status(), m.Event.ScoreLine(), m.Tournament())
	}
	if len(res.Matches) > limits.MaxRows {
		fmt.Fprintf(w, "... and %d more\n", len(res.Matches)-limits.MaxRows)
	}

	if len(res.Matches) > 0 {
		phases := res.Phases()
		fmt.Fprintf(w, "\nPhases: %d live, %d finished, %d scheduled\n",
			phases[models.PhaseLive], phases[models.PhaseFinished], phases[models.PhaseScheduled])
	}

	if len(res.Findings) > 0 {
		fmt.Fprintf(w, "\n⚠️  Issues found: %d\n", len(res.Findings))
		for i, f := range res.Findings {
			if i >= limits.MaxFindings {
				break
			}
			fmt.Fprintf(w, "  - %s\n", f)
		}
		if len(res.Findings) > limits.MaxFindings {
			fmt.Fprintf(w, "  ... and %d more\n", len(res.Findings)-limits.MaxFindings)
		}
	}
}

// WriteSummary prints the aggregate finding counts by category.
func WriteSummary(w io.Writer, counts map[models.FindingKind]int) {
	fmt.Fprintf(w, "\n%s\n", banner)
	fmt.Fprintln(w, "SUMMARY OF ALL ISSUES")
	fmt.Fprintln(w, banner)

	total := 0
	for _, kind := range models.Categories {
		if n := counts[kind]; n > 0 {
			fmt.Fprintf(w, "  %s: %d occurrences\n", kind.Category(), n)
			total += n
		}
	}
	if total == 0 {
		fmt.Fprintln(w, "✅ No issues found!")
	}

	fmt.Fprintf(w, "\n%s\n", banner)
	fmt.Fprintln(w, "VALIDATION COMPLETE")
	fmt.Fprintln(w, banner)
}

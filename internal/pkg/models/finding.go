package models

import "fmt"

// FindingKind is a data-quality problem spotted in an event record.
type FindingKind int

const (
	FindingNullShortName FindingKind = iota
	FindingEmptyScore
)

// Category is the label used in the summary table.
func (k FindingKind) Category() string {
	switch k {
	case FindingNullShortName:
		return "NULL shortName"
	case FindingEmptyScore:
		return "Empty score object"
	default:
		return "Unknown"
	}
}

// Categories lists all finding kinds in summary order.
var Categories = []FindingKind{FindingNullShortName, FindingEmptyScore}

type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// Finding never excludes an event from filtering, it is only reported.
type Finding struct {
	EventID int64
	Kind    FindingKind
	Side    Side
}

func (f Finding) String() string {
	switch f.Kind {
	case FindingNullShortName:
		return fmt.Sprintf("Event %d: %sTeam shortName is NULL", f.EventID, f.Side)
	case FindingEmptyScore:
		return fmt.Sprintf("Event %d: %sScore is empty", f.EventID, f.Side)
	default:
		return fmt.Sprintf("Event %d: unknown finding", f.EventID)
	}
}

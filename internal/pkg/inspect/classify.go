package inspect

import (
	"strings"

	"github.com/Vodeneev/sofacheck/internal/pkg/jsonvalue"
)

// Shape is the detected layout of a SofaScore document.
type Shape string

const (
	ShapeTournaments Shape = "tournaments"
	ShapeDailyEvents Shape = "daily_events"
	ShapeStatistics  Shape = "statistics"
	ShapeSingleEvent Shape = "single_event"
	ShapeUnknown     Shape = "unknown"
)

// Label is the upper-case form printed as "Detected Type".
func (s Shape) Label() string { return strings.ToUpper(string(s)) }

// Classify inspects top-level keys only. Rules are checked in a fixed order
// and the first match wins.
func Classify(doc *jsonvalue.Value) Shape {
	if !doc.IsObject() {
		return ShapeUnknown
	}

	if groups := doc.Field("groups"); groups.IsArray() && groups.Index(0).Has("uniqueTournaments") {
		return ShapeTournaments
	}
	if doc.Field("events").IsArray() {
		return ShapeDailyEvents
	}
	if doc.Field("statistics").IsArray() {
		return ShapeStatistics
	}
	if doc.Field("event").IsObject() {
		return ShapeSingleEvent
	}
	return ShapeUnknown
}

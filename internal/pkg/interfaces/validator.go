package interfaces

import "github.com/Vodeneev/sofacheck/internal/pkg/models"

// EventValidator interface for event data-quality checks
type EventValidator interface {
	// ValidateEvent returns every finding for the event. It never fails and
	// findings never exclude the event from filtering.
	ValidateEvent(event *models.Event) []models.Finding
}

package validation

import (
	"github.com/Vodeneev/sofacheck/internal/pkg/interfaces"
	"github.com/Vodeneev/sofacheck/internal/pkg/models"
)

// Validator implements event data-quality checks
type Validator struct{}

// NewValidator creates a new validator
func NewValidator() interfaces.EventValidator {
	return &Validator{}
}

// ValidateEvent records absent or null short names and empty score objects. The
// order is fixed: home shortName, away shortName, homeScore, awayScore.
func (v *Validator) ValidateEvent(event *models.Event) []models.Finding {
	if event == nil {
		return nil
	}

	id := event.EventID()
	var findings []models.Finding

	if event.HomeTeam.ShortNameNull() {
		findings = append(findings, models.Finding{EventID: id, Kind: models.FindingNullShortName, Side: models.SideHome})
	}
	if event.AwayTeam.ShortNameNull() {
		findings = append(findings, models.Finding{EventID: id, Kind: models.FindingNullShortName, Side: models.SideAway})
	}

	if event.HomeScore.IsEmpty() {
		findings = append(findings, models.Finding{EventID: id, Kind: models.FindingEmptyScore, Side: models.SideHome})
	}
	if event.AwayScore.IsEmpty() {
		findings = append(findings, models.Finding{EventID: id, Kind: models.FindingEmptyScore, Side: models.SideAway})
	}

	return findings
}

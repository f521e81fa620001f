package tables

import "github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"

// Characterization is the verdict attached to an inhalation or dermal score
type Characterization struct {
	Level          entities.RiskLevel `json:"level"`
	PriorityAction int                `json:"priority_action"`
	Label          string             `json:"label"`
	Recommendation string             `json:"recommendation,omitempty"`
}

const (
	veryHighThreshold = 1000
	moderateThreshold = 100
)

// CharacterizeInhalation grades an inhalation score (PRI)
func CharacterizeInhalation(score float64) Characterization {
	switch {
	case score > veryHighThreshold:
		return Characterization{
			Level:          entities.RiskLevelVeryHigh,
			PriorityAction: 1,
			Label:          "RIESGO PROBABLEMENTE MUY ELEVADO",
			Recommendation: "Se requieren medidas correctoras inmediatas. Consultar NTP 872 para medidas preventivas aplicables.",
		}
	case score > moderateThreshold:
		return Characterization{
			Level:          entities.RiskLevelModerate,
			PriorityAction: 2,
			Label:          "RIESGO MODERADO",
			Recommendation: "Necesita probablemente medidas correctoras y/o evaluación más detallada (mediciones según UNE-EN 689).",
		}
	default:
		return Characterization{
			Level:          entities.RiskLevelLow,
			PriorityAction: 3,
			Label:          "RIESGO A PRIORI BAJO",
			Recommendation: "Sin necesidad de modificaciones. Mantener condiciones actuales y reevaluar periódicamente.",
		}
	}
}

// CharacterizeDermal grades a dermal score (PRD). Dermal verdicts carry no recommendation.
func CharacterizeDermal(score float64) Characterization {
	switch {
	case score > veryHighThreshold:
		return Characterization{Level: entities.RiskLevelVeryHigh, PriorityAction: 1, Label: "RIESGO DÉRMICO MUY ELEVADO"}
	case score > moderateThreshold:
		return Characterization{Level: entities.RiskLevelModerate, PriorityAction: 2, Label: "RIESGO DÉRMICO MODERADO"}
	default:
		return Characterization{Level: entities.RiskLevelLow, PriorityAction: 3, Label: "RIESGO DÉRMICO A PRIORI BAJO"}
	}
}

package engine

import "github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"

// Summarize aggregates detailed results. Dermal statistics only cover agents
// the dermal pathway applies to, so a missing dermal result never pulls the
// mean down.
func Summarize(inhalation []entities.InhalationResult, dermal []entities.DermalResult, alerts []entities.Alert) entities.Summary {
	s := entities.Summary{
		AgentsEvaluated:     len(inhalation),
		InhalationEvaluated: len(inhalation),
		DermalApplicable:    len(dermal),
	}

	for _, r := range inhalation {
		switch r.RiskLevel {
		case entities.RiskLevelVeryHigh:
			s.InhalationVeryHigh++
		case entities.RiskLevelModerate:
			s.InhalationModerate++
		default:
			s.InhalationLow++
		}
		s.MaxInhalationScore = max(s.MaxInhalationScore, r.RiskScore)
	}

	total := 0.0
	for _, r := range dermal {
		switch r.RiskLevel {
		case entities.RiskLevelVeryHigh:
			s.DermalVeryHigh++
		case entities.RiskLevelModerate:
			s.DermalModerate++
		default:
			s.DermalLow++
		}
		total += r.RiskScore
	}
	if len(dermal) > 0 {
		s.MeanDermalScore = total / float64(len(dermal))
	}

	for _, a := range alerts {
		switch a.Severity {
		case entities.AlertSeverityCritical:
			s.CriticalAlerts++
		case entities.AlertSeverityWarning:
			s.WarningAlerts++
		}
	}
	return s
}

package engine

import (
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/tables"
)

// EvaluateInhalationRisk scores the inhalation pathway of one agent:
// PRI = danger × volatility × procedure × protection × VLA correction.
func EvaluateInhalationRisk(agent entities.ChemicalAgent) entities.InhalationResult {
	cp := DetermineDangerClass(agent)
	pp := tables.DangerScore(cp)

	cv := DetermineVolatilityClass(agent)
	pv := tables.VolatilityScore(cv)

	procedure := tables.ProcedureClassOf(agent.ProcedureClass)
	ppr := tables.ProcedureScore(procedure)
	protection := tables.VentilationClassOf(agent.VentilationClass)
	ppc := tables.VentilationScore(protection)
	fc := tables.VLACorrectionFactor(agent)

	score := pp * pv * ppr * ppc * fc
	verdict := tables.CharacterizeInhalation(score)

	return entities.InhalationResult{
		AgentID:             agent.ID,
		AgentName:           agent.DisplayName(),
		DangerClass:         cp,
		DangerScore:         pp,
		VolatilityClass:     cv,
		VolatilityScore:     pv,
		ProcedureClass:      procedure,
		ProcedureScore:      ppr,
		ProtectionClass:     protection,
		ProtectionScore:     ppc,
		VLACorrectionFactor: fc,
		RiskScore:           score,
		RiskLevel:           verdict.Level,
		PriorityAction:      verdict.PriorityAction,
		Characterization:    verdict.Label,
		Recommendation:      verdict.Recommendation,
	}
}

// EvaluateAllInhalation evaluates every agent in input order
func EvaluateAllInhalation(agents []entities.ChemicalAgent) []entities.InhalationResult {
	results := make([]entities.InhalationResult, len(agents))
	for i, agent := range agents {
		results[i] = EvaluateInhalationRisk(agent)
	}
	return results
}

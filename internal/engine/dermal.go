package engine

import (
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/tables"
)

// DermalApplies reports whether the dermal pathway is relevant for the agent
func DermalApplies(agent entities.ChemicalAgent) bool {
	return agent.HasDermalToxicity && agent.HasSkinContact
}

// EvaluateDermalRisk scores the dermal pathway: PRD = danger × surface × frequency.
// ok is false when the pathway does not apply; such agents have no dermal
// score at all, which is different from a low one.
func EvaluateDermalRisk(agent entities.ChemicalAgent) (result entities.DermalResult, ok bool) {
	if !DermalApplies(agent) {
		return entities.DermalResult{}, false
	}

	cp := DetermineDangerClass(agent)
	pp := tables.DangerScore(cp)
	ps := tables.DermalSurfaceScore(agent.DermalSurface)
	pfd := tables.DermalFrequencyScore(agent.DermalFrequency)

	score := pp * ps * pfd
	verdict := tables.CharacterizeDermal(score)

	return entities.DermalResult{
		AgentID:          agent.ID,
		AgentName:        agent.DisplayName(),
		DangerClass:      cp,
		DangerScore:      pp,
		SurfaceScore:     ps,
		FrequencyScore:   pfd,
		RiskScore:        score,
		RiskLevel:        verdict.Level,
		PriorityAction:   verdict.PriorityAction,
		Characterization: verdict.Label,
	}, true
}

// EvaluateAllDermal returns results for the agents the dermal pathway applies to, in input order
func EvaluateAllDermal(agents []entities.ChemicalAgent) []entities.DermalResult {
	results := make([]entities.DermalResult, 0, len(agents))
	for _, agent := range agents {
		if r, ok := EvaluateDermalRisk(agent); ok {
			results = append(results, r)
		}
	}
	return results
}

package engine

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/tables"
)

const (
	highPriorityScore   = 10000
	mediumPriorityScore = 100
)

// NormalizeQuantity converts an agent's quantity to kg equivalents.
// Litres count as kilograms; negative or NaN quantities count as zero and
// quantities beyond float64 range count as the largest finite value.
func NormalizeQuantity(agent entities.ChemicalAgent) float64 {
	q := agent.Quantity
	switch strings.ToLower(strings.TrimSpace(agent.QuantityUnit)) {
	case "g", "ml":
		q /= 1000
	case "ton", "t":
		q *= 1000
	}
	if math.IsNaN(q) || q < 0 {
		return 0
	}
	return min(q, math.MaxFloat64)
}

// ComputeHierarchy ranks agents by potential risk. The result has one row per
// agent, sorted by priority, then danger class and risk score descending.
//
// Quantity indexes and IPA percentages depend on the whole inventory, so the
// result must be recomputed whenever any agent changes.
func ComputeHierarchy(agents []entities.ChemicalAgent) []entities.HierarchyResult {
	if len(agents) == 0 {
		return []entities.HierarchyResult{}
	}

	quantities := make([]float64, len(agents))
	qMax := 0.0
	for i, agent := range agents {
		quantities[i] = NormalizeQuantity(agent)
		qMax = max(qMax, quantities[i])
	}

	results := make([]entities.HierarchyResult, len(agents))
	total := 0.0
	for i, agent := range agents {
		cp := DetermineDangerClass(agent)

		// no usable quantities: assume every agent is the largest
		qIndex := 100.0
		if qMax > 0 {
			qIndex = quantities[i] / qMax * 100
		}
		cc := tables.QuantityClass(qIndex)
		cf := tables.FrequencyClass(agent.FrequencyLevel)
		cep := tables.ExposureClass(cc, cf)
		crp := tables.PotentialRiskClass(cp, cep)
		score := tables.RiskScore(crp)
		total += score

		results[i] = entities.HierarchyResult{
			AgentID:                agent.ID,
			AgentName:              agent.DisplayName(),
			DangerClass:            cp,
			QuantityIndex:          qIndex,
			QuantityClass:          cc,
			FrequencyClass:         cf,
			PotentialExposureClass: cep,
			PotentialRiskClass:     crp,
			RiskScore:              score,
		}
	}

	for i := range results {
		if total > 0 {
			results[i].IPAPercent = results[i].RiskScore / total * 100
		}
		results[i].Priority = priorityFor(results[i])
	}

	slices.SortStableFunc(results, compareHierarchy)
	return results
}

func priorityFor(r entities.HierarchyResult) entities.Priority {
	// The second clause is kept alongside the first in case the score table changes.
	if r.RiskScore > highPriorityScore || (r.DangerClass >= 4 && r.RiskScore >= highPriorityScore) {
		return entities.PriorityHigh
	}
	if r.RiskScore > mediumPriorityScore {
		return entities.PriorityMedium
	}
	return entities.PriorityLow
}

func compareHierarchy(a, b entities.HierarchyResult) int {
	if c := cmp.Compare(a.Priority.Rank(), b.Priority.Rank()); c != 0 {
		return c
	}
	if c := cmp.Compare(b.DangerClass, a.DangerClass); c != 0 {
		return c
	}
	return cmp.Compare(b.RiskScore, a.RiskScore)
}

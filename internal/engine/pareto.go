package engine

import "github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"

// DefaultParetoThreshold is the cumulative IPA share that defines the Pareto set
const DefaultParetoThreshold = 80.0

// ParetoSet returns the ids of the leading agents, in hierarchy order, whose
// cumulative IPA first reaches thresholdPercent. The agent that crosses the
// threshold is included. A non-positive threshold uses the default, and an
// inventory where nothing scores has an empty set.
func ParetoSet(results []entities.HierarchyResult, thresholdPercent float64) []string {
	if thresholdPercent <= 0 {
		thresholdPercent = DefaultParetoThreshold
	}

	total := 0.0
	for _, r := range results {
		total += r.IPAPercent
	}
	if total <= 0 {
		return []string{}
	}

	ids := make([]string, 0, len(results))
	cumulative := 0.0
	for _, r := range results {
		ids = append(ids, r.AgentID)
		cumulative += r.IPAPercent
		if cumulative >= thresholdPercent {
			break
		}
	}
	return ids
}

// MarkSelected returns a copy of results with Selected set for exactly the given ids
func MarkSelected(results []entities.HierarchyResult, ids []string) []entities.HierarchyResult {
	wanted := idSet(ids)
	out := make([]entities.HierarchyResult, len(results))
	for i, r := range results {
		_, r.Selected = wanted[r.AgentID]
		out[i] = r
	}
	return out
}

// SelectForDetailedEvaluation returns the agents that go on to inhalation and
// dermal evaluation, in input order. Agents named in selectedIDs or flagged
// Selected in the hierarchy are taken; when the selection is empty or matches
// no agent, every agent is taken.
func SelectForDetailedEvaluation(agents []entities.ChemicalAgent, results []entities.HierarchyResult, selectedIDs []string) []entities.ChemicalAgent {
	selected := idSet(selectedIDs)
	for _, r := range results {
		if r.Selected {
			selected[r.AgentID] = struct{}{}
		}
	}

	out := make([]entities.ChemicalAgent, 0, len(agents))
	for _, a := range agents {
		if _, ok := selected[a.ID]; ok {
			out = append(out, a)
		}
	}

	if len(out) == 0 {
		out = append(out, agents...)
	}
	return out
}

func idSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

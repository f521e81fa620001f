package entities

import "time"

// Assessment is the full derived view of an agent list. It is recomputed, never patched.
type Assessment struct {
	Hierarchy      []HierarchyResult  `json:"hierarchy"`
	ParetoAgentIDs []string           `json:"pareto_agent_ids"`
	Inhalation     []InhalationResult `json:"inhalation"`
	Dermal         []DermalResult     `json:"dermal"`
	Alerts         []Alert            `json:"alerts"`
	Summary        Summary            `json:"summary"`
	ComputedAt     time.Time          `json:"computed_at"`
}

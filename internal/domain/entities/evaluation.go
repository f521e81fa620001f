package entities

import "time"

// Project holds the identification data of an assessment campaign
type Project struct {
	CompanyName        string `json:"company_name" yaml:"company_name"`
	WorkCenter         string `json:"work_center" yaml:"work_center"`
	Area               string `json:"area" yaml:"area"`
	EvaluationDate     string `json:"evaluation_date" yaml:"evaluation_date"`
	EvaluatorName      string `json:"evaluator_name" yaml:"evaluator_name"`
	EvaluatorTitle     string `json:"evaluator_title" yaml:"evaluator_title"`
	ProcessDescription string `json:"process_description" yaml:"process_description"`
}

// EvaluationMode records how the agent data was collected
type EvaluationMode string

const (
	EvaluationModeManual EvaluationMode = "manual"
	EvaluationModeAuto   EvaluationMode = "auto"
)

// Evaluation is a stored assessment record. Derived results are regenerated on every save.
type Evaluation struct {
	ID                string             `json:"id" db:"id"`
	Project           Project            `json:"project" db:"project"`
	Agents            []ChemicalAgent    `json:"agents" db:"agents"`
	HierarchyResults  []HierarchyResult  `json:"hierarchy_results" db:"hierarchy_results"`
	InhalationResults []InhalationResult `json:"inhalation_results" db:"inhalation_results"`
	DermalResults     []DermalResult     `json:"dermal_results" db:"dermal_results"`
	Alerts            []Alert            `json:"alerts" db:"alerts"`
	CurrentStep       int                `json:"current_step" db:"current_step"`
	Mode              EvaluationMode     `json:"mode" db:"mode"`
	CreatedAt         time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at" db:"updated_at"`
}

// SelectedAgentIDs returns the agents flagged for detailed evaluation in the stored hierarchy
func (e *Evaluation) SelectedAgentIDs() []string {
	ids := make([]string, 0, len(e.HierarchyResults))
	for _, r := range e.HierarchyResults {
		if r.Selected {
			ids = append(ids, r.AgentID)
		}
	}
	return ids
}

// EvaluationEventType names what happened to a stored evaluation
type EvaluationEventType string

const (
	EvaluationEventCreated EvaluationEventType = "evaluation_created"
	EvaluationEventUpdated EvaluationEventType = "evaluation_updated"
	EvaluationEventDeleted EvaluationEventType = "evaluation_deleted"
)

// EvaluationEvent is published whenever a stored evaluation changes
type EvaluationEvent struct {
	ID           string              `json:"id"`
	EvaluationID string              `json:"evaluation_id"`
	EventType    EvaluationEventType `json:"event_type"`
	CompanyName  string              `json:"company_name,omitempty"`
	AgentCount   int                 `json:"agent_count"`
	HighPriority int                 `json:"high_priority"`
	Timestamp    time.Time           `json:"timestamp"`
}

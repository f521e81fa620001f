package entities

// DangerClass (CP) is the intrinsic hazard class of an agent, 1-5
type DangerClass int

// VolatilityClass (CV) is the volatility or pulverulence class of an agent, 1-3
type VolatilityClass int

// QuantityClass (CC) classifies relative quantity used, 1-5
type QuantityClass int

// ExposureClass (CEP) combines quantity and frequency, 0-5
type ExposureClass int

// RiskClass (CRP) combines danger and exposure, 1-5
type RiskClass int

const (
	MinDangerClass     DangerClass     = 1
	MaxDangerClass     DangerClass     = 5
	MinVolatilityClass VolatilityClass = 1
	MaxVolatilityClass VolatilityClass = 3
)

// RiskLevel is the characterization of an inhalation or dermal score
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelModerate RiskLevel = "moderate"
	RiskLevelVeryHigh RiskLevel = "very_high"
)

// Priority is the hierarchization tier of an agent
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank orders priorities for sorting: high < medium < low
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// HierarchyResult is the potential-risk ranking row of one agent
type HierarchyResult struct {
	AgentID                string        `json:"agent_id"`
	AgentName              string        `json:"agent_name"`
	DangerClass            DangerClass   `json:"danger_class"`
	QuantityIndex          float64       `json:"quantity_index"`
	QuantityClass          QuantityClass `json:"quantity_class"`
	FrequencyClass         int           `json:"frequency_class"`
	PotentialExposureClass ExposureClass `json:"potential_exposure_class"`
	PotentialRiskClass     RiskClass     `json:"potential_risk_class"`
	RiskScore              float64       `json:"risk_score"`  // PRP
	IPAPercent             float64       `json:"ipa_percent"` // share of total PRP
	Priority               Priority      `json:"priority"`
	Selected               bool          `json:"selected"`
}

// InhalationResult is the detailed inhalation risk of one agent
type InhalationResult struct {
	AgentID             string           `json:"agent_id"`
	AgentName           string           `json:"agent_name"`
	DangerClass         DangerClass      `json:"danger_class"`
	DangerScore         float64          `json:"danger_score"` // PP
	VolatilityClass     VolatilityClass  `json:"volatility_class"`
	VolatilityScore     float64          `json:"volatility_score"` // PV
	ProcedureClass      ProcedureClass   `json:"procedure_class"`
	ProcedureScore      float64          `json:"procedure_score"` // PPr
	ProtectionClass     VentilationClass `json:"protection_class"`
	ProtectionScore     float64          `json:"protection_score"` // PPC
	VLACorrectionFactor float64          `json:"vla_correction_factor"`
	RiskScore           float64          `json:"risk_score"` // PRI
	RiskLevel           RiskLevel        `json:"risk_level"`
	PriorityAction      int              `json:"priority_action"`
	Characterization    string           `json:"characterization"`
	Recommendation      string           `json:"recommendation"`
}

// DermalResult is the dermal risk of one agent for which the pathway applies
type DermalResult struct {
	AgentID          string      `json:"agent_id"`
	AgentName        string      `json:"agent_name"`
	DangerClass      DangerClass `json:"danger_class"`
	DangerScore      float64     `json:"danger_score"`    // PP
	SurfaceScore     float64     `json:"surface_score"`   // PS
	FrequencyScore   float64     `json:"frequency_score"` // PFD
	RiskScore        float64     `json:"risk_score"`      // PRD
	RiskLevel        RiskLevel   `json:"risk_level"`
	PriorityAction   int         `json:"priority_action"`
	Characterization string      `json:"characterization"`
}

// Summary aggregates detailed results. Dermal figures cover applicable agents only.
type Summary struct {
	AgentsEvaluated     int     `json:"agents_evaluated"`
	InhalationEvaluated int     `json:"inhalation_evaluated"`
	InhalationVeryHigh  int     `json:"inhalation_very_high"`
	InhalationModerate  int     `json:"inhalation_moderate"`
	InhalationLow       int     `json:"inhalation_low"`
	MaxInhalationScore  float64 `json:"max_inhalation_score"`
	DermalApplicable    int     `json:"dermal_applicable"`
	DermalVeryHigh      int     `json:"dermal_very_high"`
	DermalModerate      int     `json:"dermal_moderate"`
	DermalLow           int     `json:"dermal_low"`
	MeanDermalScore     float64 `json:"mean_dermal_score"`
	CriticalAlerts      int     `json:"critical_alerts"`
	WarningAlerts       int     `json:"warning_alerts"`
}

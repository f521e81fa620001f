package entities

// AlertType identifies the regulatory special case an alert reports
type AlertType string

const (
	AlertTypeAmianto       AlertType = "amianto"
	AlertTypeCarcinogenic  AlertType = "carcinogenic"
	AlertTypeFIV           AlertType = "fiv"
	AlertTypeLowVLA        AlertType = "low_vla"
	AlertTypeTempExceedsBP AlertType = "temp_exceeds_bp"
	AlertTypeConfinedSpace AlertType = "confined_space"
)

// AlertSeverity ranks how urgently an alert needs attention
type AlertSeverity string

const (
	AlertSeverityCritical AlertSeverity = "critical"
	AlertSeverityWarning  AlertSeverity = "warning"
	AlertSeverityInfo     AlertSeverity = "info"
)

// Alert is an advisory annotation on an agent. It never alters a score.
type Alert struct {
	ID        string        `json:"id"`
	AgentID   string        `json:"agent_id"`
	AgentName string        `json:"agent_name"`
	Type      AlertType     `json:"type"`
	Title     string        `json:"title"`
	Message   string        `json:"message"`
	Severity  AlertSeverity `json:"severity"`
}

package engine

import (
	"fmt"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/tables"
)

const lowVLAThreshold = 0.1

// GenerateAlerts returns the advisory alerts raised by one agent, in a fixed
// order. Alerts never change any score.
func GenerateAlerts(agent entities.ChemicalAgent) []entities.Alert {
	alerts := make([]entities.Alert, 0)
	add := func(suffix string, typ entities.AlertType, severity entities.AlertSeverity, title, message string) {
		alerts = append(alerts, entities.Alert{
			ID:        agent.ID + "-" + suffix,
			AgentID:   agent.ID,
			AgentName: agent.DisplayName(),
			Type:      typ,
			Title:     title,
			Message:   message,
			Severity:  severity,
		})
	}

	if agent.IsSpecialMaterial && agent.SpecialMaterialID == tables.AsbestosMaterialID {
		add("amianto", entities.AlertTypeAmianto, entities.AlertSeverityCritical,
			"⚠️ AMIANTO DETECTADO",
			"Este agente requiere evaluación cuantitativa obligatoria (RD 396/2006). Este método simplificado NO es aplicable.")
	}

	if IsCarcinogenic(agent) {
		add("carcinogenic", entities.AlertTypeCarcinogenic, entities.AlertSeverityCritical,
			"⚠️ CANCERÍGENO / MUTÁGENO",
			"Consultar Guía Técnica RD 665/97. Se recomienda evaluación cuantitativa detallada.")
	}

	if agent.HasFIV {
		add("fiv", entities.AlertTypeFIV, entities.AlertSeverityWarning,
			"⚠️ NOTACIÓN FIV",
			"Exposición simultánea vapor + partículas. Se calculan ambas volatilidades según Tabla 8.")
	}

	if agent.DeclaresVLA() {
		adjusted := tables.AdjustVLA(*agent.VLAED, agent.ParticulateMatter)
		if adjusted <= lowVLAThreshold {
			add("low-vla", entities.AlertTypeLowVLA, entities.AlertSeverityWarning,
				"⚠️ VLA MUY BAJO",
				fmt.Sprintf("VLA ajustado = %.4f mg/m³. Se ha aplicado Factor de Corrección FC = %v automáticamente.",
					adjusted, tables.VLACorrectionFactor(agent)))
		}
	}

	if agent.BoilingPoint != nil && agent.WorkingTemperature != nil && *agent.WorkingTemperature > *agent.BoilingPoint {
		add("temp", entities.AlertTypeTempExceedsBP, entities.AlertSeverityWarning,
			"⚠️ TEMPERATURA USO > PUNTO EBULLICIÓN",
			"Revisar datos: la temperatura de uso no puede superar el punto de ebullición en procesos normales.")
	}

	if agent.VentilationClass == entities.VentilationConfinedSpace {
		add("confined", entities.AlertTypeConfinedSpace, entities.AlertSeverityCritical,
			"⚠️ ESPACIO CONFINADO",
			"Situación de confinamiento peligrosa. Revisar medidas urgentemente. Factor PPC = 10 aplicado.")
	}

	return alerts
}

// GenerateAllAlerts concatenates the alerts of every agent, in input order
func GenerateAllAlerts(agents []entities.ChemicalAgent) []entities.Alert {
	alerts := make([]entities.Alert, 0, len(agents))
	for _, agent := range agents {
		alerts = append(alerts, GenerateAlerts(agent)...)
	}
	return alerts
}

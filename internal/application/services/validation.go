package services

import (
	"fmt"
	"strings"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
	apperrors "github.com/rgarciarojo76-ctrl/Metodo-INRS/pkg/errors"
)

// ValidateProject checks the mandatory identification fields of an evaluation
func ValidateProject(project entities.Project) error {
	var details []string
	if strings.TrimSpace(project.CompanyName) == "" {
		details = append(details, "El nombre de la empresa es obligatorio.")
	}
	if strings.TrimSpace(project.EvaluationDate) == "" {
		details = append(details, "La fecha de evaluación es obligatoria.")
	}
	if strings.TrimSpace(project.EvaluatorName) == "" {
		details = append(details, "El nombre del evaluador es obligatorio.")
	}
	return validationResult("invalid project data", details)
}

// ValidateInventory checks that there is at least one agent and each carries its minimum data
func ValidateInventory(agents []entities.ChemicalAgent) error {
	if len(agents) == 0 {
		return apperrors.NewValidationError("invalid inventory", "Añade al menos un agente químico.")
	}

	var details []string
	for i, a := range agents {
		label := a.CommercialName
		if label == "" {
			label = fmt.Sprintf("Agente %d", i+1)
		}

		if strings.TrimSpace(a.CommercialName) == "" {
			details = append(details, label+": nombre comercial obligatorio.")
		}
		if a.LabelingSystem != entities.LabelingSystemNone &&
			len(a.RPhrases) == 0 && len(a.HPhrases) == 0 && !a.IsSpecialMaterial {
			details = append(details, label+": indica al menos una frase R/H o un material especial.")
		}
		if a.Quantity <= 0 {
			details = append(details, label+": la cantidad debe ser mayor que 0.")
		}
		if a.PhysicalState == entities.PhysicalStateLiquid && a.BoilingPoint == nil {
			details = append(details, label+": el punto de ebullición es obligatorio para líquidos.")
		}
		if a.PhysicalState == entities.PhysicalStateSolid && a.SolidForm == "" {
			details = append(details, label+": selecciona la forma del sólido.")
		}
	}
	return validationResult("invalid inventory", details)
}

// ValidateSelection requires at least one agent flagged for detailed evaluation
func ValidateSelection(evaluation *entities.Evaluation) error {
	if len(evaluation.Agents) > 0 && len(evaluation.SelectedAgentIDs()) == 0 {
		return apperrors.NewValidationError("invalid selection", "Selecciona al menos un agente para la evaluación detallada.")
	}
	return nil
}

// ValidateStep runs the checks that gate leaving a wizard step. Steps without checks pass.
func ValidateStep(step int, evaluation *entities.Evaluation) error {
	switch step {
	case 1:
		return ValidateProject(evaluation.Project)
	case 2:
		return ValidateInventory(evaluation.Agents)
	case 3:
		return ValidateSelection(evaluation)
	default:
		return nil
	}
}

func validationResult(message string, details []string) error {
	if len(details) == 0 {
		return nil
	}
	return apperrors.NewValidationError(message, details...)
}

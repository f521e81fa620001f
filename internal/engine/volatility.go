package engine

import (
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/tables"
)

// DetermineVolatilityClass returns the volatility (liquids) or pulverulence
// (solids) class. Liquids without enough data fall back to the middle class.
func DetermineVolatilityClass(agent entities.ChemicalAgent) entities.VolatilityClass {
	switch agent.PhysicalState {
	case entities.PhysicalStateGas, entities.PhysicalStateAerosol:
		return entities.MaxVolatilityClass

	case entities.PhysicalStateSolid:
		switch agent.SolidForm {
		case entities.SolidFormFinePowder:
			return 3
		case entities.SolidFormGrainPowder:
			return 2
		default:
			return 1
		}

	case entities.PhysicalStateLiquid:
		switch {
		case agent.IsSpray:
			return 3
		case agent.HasFIV && agent.VaporPressure != nil:
			return tables.VolatilityFromVaporPressure(*agent.VaporPressure)
		case agent.BoilingPoint != nil && agent.WorkingTemperature != nil:
			return tables.VolatilityFromTemperatures(*agent.BoilingPoint, *agent.WorkingTemperature)
		default:
			return 2
		}
	}

	return 2
}

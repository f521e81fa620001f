package tables

import "github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"

// classScore is shared by danger (PP) and potential risk (PRP) scoring
var classScore = [...]float64{1, 10, 100, 1000, 10000}

var volatilityScore = map[entities.VolatilityClass]float64{1: 1, 2: 10, 3: 100}

var procedureScore = map[entities.ProcedureClass]float64{
	entities.ProcedureClosedPermanent:      0.001,
	entities.ProcedureClosedRegularOpening: 0.05,
	entities.ProcedureOpen:                 0.5,
	entities.ProcedureDispersive:           1,
}

var ventilationScore = map[entities.VentilationClass]float64{
	entities.VentilationEnclosing:        0.001,
	entities.VentilationPartialCapture:   0.1,
	entities.VentilationGeneralOrOutdoor: 0.7,
	entities.VentilationNone:             1,
	entities.VentilationConfinedSpace:    10,
}

// DangerScore (PP) of a danger class
func DangerScore(cp entities.DangerClass) float64 {
	return classScore[clamp(int(cp), 1, 5)-1]
}

// RiskScore (PRP) of a potential risk class
func RiskScore(crp entities.RiskClass) float64 {
	return classScore[clamp(int(crp), 1, 5)-1]
}

// VolatilityScore (PV) of a volatility class
func VolatilityScore(cv entities.VolatilityClass) float64 {
	return volatilityScore[entities.VolatilityClass(clamp(int(cv), 1, 3))]
}

// ProcedureScore (PPr) of a work procedure class
func ProcedureScore(p entities.ProcedureClass) float64 {
	return procedureScore[ProcedureClassOf(p)]
}

// VentilationScore (PPC) of a collective protection class
func VentilationScore(v entities.VentilationClass) float64 {
	return ventilationScore[VentilationClassOf(v)]
}

// FrequencyClass (CF) of a usage frequency, limited to 0-4
func FrequencyClass(f entities.FrequencyLevel) int {
	return clamp(int(f), 0, 4)
}

// ProcedureClassOf limits p to the published procedure classes 1-4
func ProcedureClassOf(p entities.ProcedureClass) entities.ProcedureClass {
	return entities.ProcedureClass(clamp(int(p), 1, 4))
}

// VentilationClassOf limits v to the published protection classes 1-5
func VentilationClassOf(v entities.VentilationClass) entities.VentilationClass {
	return entities.VentilationClass(clamp(int(v), 1, 5))
}

// DermalSurfaceScore (PS) of an exposed surface. Unset defaults to one hand;
// any other value snaps down to the nearest published ordinal.
func DermalSurfaceScore(s entities.DermalSurface) float64 {
	switch {
	case s >= entities.DermalSurfaceExtensive:
		return 10
	case s >= entities.DermalSurfaceTwoHandsPlusForearm:
		return 3
	case s >= entities.DermalSurfaceTwoHandsOrForearm:
		return 2
	default:
		return 1
	}
}

// DermalFrequencyScore (PFD) of a skin contact frequency, snapped like DermalSurfaceScore
func DermalFrequencyScore(f entities.DermalFrequency) float64 {
	switch {
	case f >= entities.DermalFrequencyPermanent:
		return 10
	case f >= entities.DermalFrequencyFrequent:
		return 5
	case f >= entities.DermalFrequencyIntermittent:
		return 2
	default:
		return 1
	}
}

// VLADangerClass maps a VLA-ED in mg/m³ to a danger class. Lower limits mean higher danger.
func VLADangerClass(vla float64) entities.DangerClass {
	switch {
	case vla >= 100:
		return 1
	case vla >= 10:
		return 2
	case vla >= 1:
		return 3
	case vla >= 0.1:
		return 4
	default:
		return 5
	}
}

// AdjustVLA divides the limit by 10 when it applies to a particulate fraction
func AdjustVLA(vla float64, pm entities.ParticulateMatter) float64 {
	if pm.IsParticulate() {
		return vla / 10
	}
	return vla
}

// VLACorrectionFactor (FC) applied to the inhalation score. It works on the
// adjusted VLA and is 1 when no VLA is declared.
func VLACorrectionFactor(agent entities.ChemicalAgent) float64 {
	if !agent.DeclaresVLA() {
		return 1
	}
	adjusted := AdjustVLA(*agent.VLAED, agent.ParticulateMatter)
	switch {
	case adjusted > 0.1:
		return 1
	case adjusted > 0.01:
		return 10
	case adjusted > 0.001:
		return 30
	default:
		return 100
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

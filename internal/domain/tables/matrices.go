package tables

import "github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"

// exposureMatrix[cc-1][cf] gives the potential exposure class
var exposureMatrix = [5][5]entities.ExposureClass{
	{0, 1, 1, 1, 1},
	{0, 1, 1, 2, 2},
	{0, 1, 2, 3, 3},
	{0, 2, 3, 3, 4},
	{0, 2, 3, 4, 5},
}

// riskMatrix[cp-1][cep-1] gives the potential risk class
var riskMatrix = [5][5]entities.RiskClass{
	{1, 1, 1, 2, 2},
	{1, 1, 2, 2, 3},
	{1, 2, 2, 3, 4},
	{2, 3, 3, 4, 5},
	{3, 4, 4, 5, 5},
}

// QuantityClass maps a quantity index (percent of the largest quantity) to CC
func QuantityClass(index float64) entities.QuantityClass {
	switch {
	case index < 1:
		return 1
	case index < 5:
		return 2
	case index < 12:
		return 3
	case index < 33:
		return 4
	default:
		return 5
	}
}

// ExposureClass combines quantity and frequency classes. A frequency of 0 (not used) always yields 0.
func ExposureClass(cc entities.QuantityClass, cf int) entities.ExposureClass {
	return exposureMatrix[clamp(int(cc), 1, 5)-1][clamp(cf, 0, 4)]
}

// PotentialRiskClass combines danger and exposure classes. An exposure of 0 yields the minimum class.
func PotentialRiskClass(cp entities.DangerClass, cep entities.ExposureClass) entities.RiskClass {
	if cep <= 0 {
		return 1
	}
	return riskMatrix[clamp(int(cp), 1, 5)-1][clamp(int(cep), 1, 5)-1]
}

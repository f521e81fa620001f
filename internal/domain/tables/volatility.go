package tables

import "github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"

// VolatilityFromVaporPressure classifies a liquid by vapor pressure in kPa
func VolatilityFromVaporPressure(kPa float64) entities.VolatilityClass {
	switch {
	case kPa < 0.5:
		return 1
	case kPa < 25:
		return 2
	default:
		return 3
	}
}

// VolatilityFromTemperatures classifies a liquid from its boiling point and the
// working temperature, both in °C. Bands narrow as the boiling point drops.
func VolatilityFromTemperatures(boilingPoint, workingTemp float64) entities.VolatilityClass {
	if workingTemp >= boilingPoint {
		return 3
	}
	delta := boilingPoint - workingTemp

	var high, medium float64
	switch {
	case boilingPoint <= 50:
		high, medium = 5, 20
	case boilingPoint <= 100:
		high, medium = 10, 40
	case boilingPoint <= 150:
		high, medium = 20, 60
	default:
		// relative gap for high boiling liquids
		delta, high, medium = delta/boilingPoint, 0.15, 0.45
	}

	switch {
	case delta < high:
		return 3
	case delta < medium:
		return 2
	default:
		return 1
	}
}

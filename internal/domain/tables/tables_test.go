package tables_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/tables"
)

func TestRPhraseDangerClass(t *testing.T) {
	tests := []struct {
		code  string
		class entities.DangerClass
		ok    bool
	}{
		{"R45", 5, true},
		{" r26/27 ", 5, true},
		{"R40", 4, true},
		{"R48/20/21/22", 3, true},
		{"R36/37/38", 2, true},
		{"R66", 1, true},
		{"R99", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			class, ok := tables.RPhraseDangerClass(tt.code)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.class, class)
		})
	}
}

func TestHPhraseDangerClass(t *testing.T) {
	t.Run("case sensitive codes", func(t *testing.T) {
		class, ok := tables.HPhraseDangerClass("H350i")
		assert.True(t, ok)
		assert.Equal(t, entities.DangerClass(5), class)

		_, ok = tables.HPhraseDangerClass("h350i")
		assert.False(t, ok)
	})

	t.Run("combined codes", func(t *testing.T) {
		class, ok := tables.HPhraseDangerClass("H300+H310+H330")
		assert.True(t, ok)
		assert.Equal(t, entities.DangerClass(4), class)

		class, ok = tables.HPhraseDangerClass("H315+H319")
		assert.True(t, ok)
		assert.Equal(t, entities.DangerClass(2), class)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		class, ok := tables.HPhraseDangerClass("  H333 ")
		assert.True(t, ok)
		assert.Equal(t, entities.DangerClass(1), class)
	})
}

func TestPhraseLists(t *testing.T) {
	assert.True(t, tables.IsDermalRPhrase("r43"))
	assert.False(t, tables.IsDermalRPhrase("R45"))
	assert.True(t, tables.IsDermalHPhrase("H314"))
	assert.False(t, tables.IsDermalHPhrase("H350"))
	assert.True(t, tables.IsCarcinogenicRPhrase("R49"))
	assert.True(t, tables.IsCarcinogenicHPhrase("H350i"))
	assert.False(t, tables.IsCarcinogenicHPhrase("H351"))
}

func TestSpecialMaterials(t *testing.T) {
	materials := tables.SpecialMaterials()
	require.Len(t, materials, 25)
	assert.Equal(t, "iron", materials[0].ID)

	asbestos, ok := tables.FindSpecialMaterial(tables.AsbestosMaterialID)
	require.True(t, ok)
	assert.Equal(t, entities.DangerClass(5), asbestos.DangerClass)
	assert.NotEmpty(t, asbestos.Notes)

	sand, ok := tables.FindSpecialMaterial("sand")
	require.True(t, ok)
	assert.Equal(t, entities.DangerClass(4), sand.DangerClass)

	_, ok = tables.FindSpecialMaterial("unobtainium")
	assert.False(t, ok)

	// callers cannot mutate the catalog
	materials[0].DangerClass = 5
	again, _ := tables.FindSpecialMaterial("iron")
	assert.Equal(t, entities.DangerClass(2), again.DangerClass)
}

func TestClassScores(t *testing.T) {
	want := []float64{1, 10, 100, 1000, 10000}
	for i, w := range want {
		assert.Equal(t, w, tables.DangerScore(entities.DangerClass(i+1)))
		assert.Equal(t, w, tables.RiskScore(entities.RiskClass(i+1)))
	}

	t.Run("clamps out of range", func(t *testing.T) {
		assert.Equal(t, 1.0, tables.DangerScore(0))
		assert.Equal(t, 1.0, tables.RiskScore(-3))
		assert.Equal(t, 10000.0, tables.DangerScore(9))
	})
}

func TestMultiplierTables(t *testing.T) {
	assert.Equal(t, 1.0, tables.VolatilityScore(1))
	assert.Equal(t, 10.0, tables.VolatilityScore(2))
	assert.Equal(t, 100.0, tables.VolatilityScore(3))
	assert.Equal(t, 100.0, tables.VolatilityScore(7))

	assert.Equal(t, 0.001, tables.ProcedureScore(entities.ProcedureClosedPermanent))
	assert.Equal(t, 0.05, tables.ProcedureScore(entities.ProcedureClosedRegularOpening))
	assert.Equal(t, 0.5, tables.ProcedureScore(entities.ProcedureOpen))
	assert.Equal(t, 1.0, tables.ProcedureScore(entities.ProcedureDispersive))
	assert.Equal(t, 0.001, tables.ProcedureScore(0))

	assert.Equal(t, 0.001, tables.VentilationScore(entities.VentilationEnclosing))
	assert.Equal(t, 0.1, tables.VentilationScore(entities.VentilationPartialCapture))
	assert.Equal(t, 0.7, tables.VentilationScore(entities.VentilationGeneralOrOutdoor))
	assert.Equal(t, 1.0, tables.VentilationScore(entities.VentilationNone))
	assert.Equal(t, 10.0, tables.VentilationScore(entities.VentilationConfinedSpace))
	assert.Equal(t, 10.0, tables.VentilationScore(6))
}

func TestDermalScores(t *testing.T) {
	assert.Equal(t, 1.0, tables.DermalSurfaceScore(0))
	assert.Equal(t, 2.0, tables.DermalSurfaceScore(entities.DermalSurfaceTwoHandsOrForearm))
	assert.Equal(t, 3.0, tables.DermalSurfaceScore(5))
	assert.Equal(t, 10.0, tables.DermalSurfaceScore(entities.DermalSurfaceExtensive))

	assert.Equal(t, 1.0, tables.DermalFrequencyScore(-1))
	assert.Equal(t, 2.0, tables.DermalFrequencyScore(3))
	assert.Equal(t, 5.0, tables.DermalFrequencyScore(entities.DermalFrequencyFrequent))
	assert.Equal(t, 10.0, tables.DermalFrequencyScore(40))
}

func TestVLADangerClass(t *testing.T) {
	tests := []struct {
		vla  float64
		want entities.DangerClass
	}{
		{500, 1}, {100, 1}, {99.9, 2}, {10, 2}, {1, 3}, {0.5, 4}, {0.1, 4}, {0.05, 5}, {0, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tables.VLADangerClass(tt.vla), "vla=%v", tt.vla)
	}
}

func TestVLACorrectionFactor(t *testing.T) {
	agent := func(vla float64, pm entities.ParticulateMatter) entities.ChemicalAgent {
		a := entities.NewChemicalAgent("a")
		a.HasVLA = true
		a.VLAED = entities.Float(vla)
		a.ParticulateMatter = pm
		return a
	}

	t.Run("no vla declared", func(t *testing.T) {
		a := entities.NewChemicalAgent("a")
		assert.Equal(t, 1.0, tables.VLACorrectionFactor(a))

		a.HasVLA = true
		assert.Equal(t, 1.0, tables.VLACorrectionFactor(a))
	})

	t.Run("bands on the adjusted value", func(t *testing.T) {
		assert.Equal(t, 1.0, tables.VLACorrectionFactor(agent(5, entities.ParticulateMatterNo)))
		assert.Equal(t, 10.0, tables.VLACorrectionFactor(agent(0.1, entities.ParticulateMatterNo)))
		assert.Equal(t, 30.0, tables.VLACorrectionFactor(agent(0.005, entities.ParticulateMatterNo)))
		assert.Equal(t, 100.0, tables.VLACorrectionFactor(agent(0.001, entities.ParticulateMatterNo)))
	})

	t.Run("particulate limits are divided by ten", func(t *testing.T) {
		assert.Equal(t, 1.0, tables.VLACorrectionFactor(agent(2, entities.ParticulateMatterInhalable)))
		assert.Equal(t, 10.0, tables.VLACorrectionFactor(agent(1, entities.ParticulateMatterRespirable)))
	})

	assert.InDelta(t, 0.05, tables.AdjustVLA(0.5, entities.ParticulateMatterInhalable), 1e-12)
	assert.Equal(t, 0.5, tables.AdjustVLA(0.5, entities.ParticulateMatterNo))
}

func TestQuantityClass(t *testing.T) {
	tests := []struct {
		index float64
		want  entities.QuantityClass
	}{
		{0, 1}, {0.99, 1}, {1, 2}, {4.9, 2}, {5, 3}, {11.9, 3}, {12, 4}, {32.9, 4}, {33, 5}, {100, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tables.QuantityClass(tt.index), "index=%v", tt.index)
	}
}

func TestExposureClass(t *testing.T) {
	assert.Equal(t, entities.ExposureClass(5), tables.ExposureClass(5, 4))
	assert.Equal(t, entities.ExposureClass(3), tables.ExposureClass(3, 3))
	assert.Equal(t, entities.ExposureClass(2), tables.ExposureClass(4, 1))
	assert.Equal(t, entities.ExposureClass(1), tables.ExposureClass(1, 4))

	t.Run("frequency zero yields zero", func(t *testing.T) {
		for cc := entities.QuantityClass(1); cc <= 5; cc++ {
			assert.Equal(t, entities.ExposureClass(0), tables.ExposureClass(cc, 0))
		}
	})

	t.Run("clamps inputs", func(t *testing.T) {
		assert.Equal(t, entities.ExposureClass(5), tables.ExposureClass(9, 9))
		assert.Equal(t, entities.ExposureClass(0), tables.ExposureClass(0, -1))
	})
}

func TestPotentialRiskClass(t *testing.T) {
	assert.Equal(t, entities.RiskClass(5), tables.PotentialRiskClass(5, 5))
	assert.Equal(t, entities.RiskClass(3), tables.PotentialRiskClass(5, 1))
	assert.Equal(t, entities.RiskClass(1), tables.PotentialRiskClass(1, 3))
	assert.Equal(t, entities.RiskClass(4), tables.PotentialRiskClass(3, 5))
	assert.Equal(t, entities.RiskClass(1), tables.PotentialRiskClass(5, 0))
	assert.Equal(t, entities.RiskClass(5), tables.PotentialRiskClass(8, 8))
}

func TestVolatilityFromVaporPressure(t *testing.T) {
	assert.Equal(t, entities.VolatilityClass(1), tables.VolatilityFromVaporPressure(0.1))
	assert.Equal(t, entities.VolatilityClass(2), tables.VolatilityFromVaporPressure(0.5))
	assert.Equal(t, entities.VolatilityClass(2), tables.VolatilityFromVaporPressure(24.9))
	assert.Equal(t, entities.VolatilityClass(3), tables.VolatilityFromVaporPressure(25))
}

func TestVolatilityFromTemperatures(t *testing.T) {
	tests := []struct {
		name        string
		bp, working float64
		want        entities.VolatilityClass
	}{
		{"working at boiling point", 80, 80, 3},
		{"working above boiling point", 80, 95, 3},
		{"low boiler close", 40, 37, 3},
		{"low boiler medium gap", 40, 25, 2},
		{"low boiler far", 40, 10, 1},
		{"acetone-like", 56, 20, 2},
		{"up to 100 close", 100, 95, 3},
		{"up to 100 far", 100, 20, 1},
		{"up to 150 close", 140, 125, 3},
		{"up to 150 medium", 140, 100, 2},
		{"up to 150 far", 140, 20, 1},
		{"high boiler small ratio", 200, 180, 3},
		{"high boiler medium ratio", 200, 150, 2},
		{"high boiler far", 200, 20, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tables.VolatilityFromTemperatures(tt.bp, tt.working))
		})
	}
}

func TestCharacterization(t *testing.T) {
	high := tables.CharacterizeInhalation(1000.1)
	assert.Equal(t, entities.RiskLevelVeryHigh, high.Level)
	assert.Equal(t, 1, high.PriorityAction)
	assert.Equal(t, "RIESGO PROBABLEMENTE MUY ELEVADO", high.Label)
	assert.NotEmpty(t, high.Recommendation)

	moderate := tables.CharacterizeInhalation(1000)
	assert.Equal(t, entities.RiskLevelModerate, moderate.Level)
	assert.Equal(t, 2, moderate.PriorityAction)

	low := tables.CharacterizeInhalation(100)
	assert.Equal(t, entities.RiskLevelLow, low.Level)
	assert.Equal(t, 3, low.PriorityAction)

	dermal := tables.CharacterizeDermal(5000)
	assert.Equal(t, entities.RiskLevelVeryHigh, dermal.Level)
	assert.Equal(t, "RIESGO DÉRMICO MUY ELEVADO", dermal.Label)
	assert.Empty(t, dermal.Recommendation)
	assert.Equal(t, "RIESGO DÉRMICO MODERADO", tables.CharacterizeDermal(101).Label)
	assert.Equal(t, "RIESGO DÉRMICO A PRIORI BAJO", tables.CharacterizeDermal(100).Label)
}

func TestFrequencyOptions(t *testing.T) {
	for _, ref := range tables.TimeReferences() {
		options, ok := tables.FrequencyOptions(ref)
		require.True(t, ok, string(ref))
		require.Len(t, options, 5)
		for i, opt := range options {
			assert.Equal(t, entities.FrequencyLevel(i), opt.Level)
		}
		assert.Equal(t, "Permanente", options[4].Label)
	}

	day, _ := tables.FrequencyOptions(entities.TimeReferenceDay)
	assert.Equal(t, "No usado", day[0].Label)
	assert.Equal(t, "2-6 h/día", day[3].Description)

	year, _ := tables.FrequencyOptions(entities.TimeReferenceYear)
	assert.Equal(t, "No usado en el último año (Clase 0)", year[0].Label)

	_, ok := tables.FrequencyOptions("decade")
	assert.False(t, ok)
}

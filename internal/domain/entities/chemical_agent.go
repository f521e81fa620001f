package entities

import "strings"

// PhysicalState is the physical form in which an agent is handled
type PhysicalState string

const (
	PhysicalStateSolid   PhysicalState = "solid"
	PhysicalStateLiquid  PhysicalState = "liquid"
	PhysicalStateGas     PhysicalState = "gas"
	PhysicalStateAerosol PhysicalState = "aerosol"
)

// LabelingSystem identifies which hazard phrase vocabulary labels the agent
type LabelingSystem string

const (
	LabelingSystemOldR   LabelingSystem = "old_r"
	LabelingSystemNewCLP LabelingSystem = "new_clp"
	LabelingSystemBoth   LabelingSystem = "both"
	LabelingSystemNone   LabelingSystem = "none"
)

// VLAType is the kind of occupational exposure limit declared
type VLAType string

const (
	VLATypeED   VLAType = "vla_ed"
	VLATypeEC   VLAType = "vla_ec"
	VLATypeBoth VLAType = "both"
)

// ParticulateMatter qualifies a VLA that applies to a dust fraction
type ParticulateMatter string

const (
	ParticulateMatterInhalable  ParticulateMatter = "inhalable"
	ParticulateMatterRespirable ParticulateMatter = "respirable"
	ParticulateMatterNo         ParticulateMatter = "no"
)

// IsParticulate reports whether the VLA refers to an inhalable or respirable fraction
func (p ParticulateMatter) IsParticulate() bool {
	return p == ParticulateMatterInhalable || p == ParticulateMatterRespirable
}

// TimeReference is the wall-clock scale a frequency level is expressed in
type TimeReference string

const (
	TimeReferenceDay   TimeReference = "day"
	TimeReferenceWeek  TimeReference = "week"
	TimeReferenceMonth TimeReference = "month"
	TimeReferenceYear  TimeReference = "year"
)

// FrequencyLevel is the ordinal usage frequency (0-4). Its value is the frequency class.
type FrequencyLevel int

const (
	FrequencyNotUsed      FrequencyLevel = 0
	FrequencyOccasional   FrequencyLevel = 1
	FrequencyIntermittent FrequencyLevel = 2
	FrequencyFrequent     FrequencyLevel = 3
	FrequencyPermanent    FrequencyLevel = 4
)

// SolidForm describes how finely divided a solid is
type SolidForm string

const (
	SolidFormFinePowder  SolidForm = "fine_powder"
	SolidFormGrainPowder SolidForm = "grain_powder"
	SolidFormPellets     SolidForm = "pellets"
)

// ProcedureClass is the work procedure containment class (1 closed .. 4 dispersive)
type ProcedureClass int

const (
	ProcedureClosedPermanent      ProcedureClass = 1
	ProcedureClosedRegularOpening ProcedureClass = 2
	ProcedureOpen                 ProcedureClass = 3
	ProcedureDispersive           ProcedureClass = 4
)

// VentilationClass is the collective protection class (1 enclosing .. 5 confined space)
type VentilationClass int

const (
	VentilationEnclosing        VentilationClass = 1
	VentilationPartialCapture   VentilationClass = 2
	VentilationGeneralOrOutdoor VentilationClass = 3
	VentilationNone             VentilationClass = 4
	VentilationConfinedSpace    VentilationClass = 5
)

// VentilationMaintenance records whether the ventilation is maintained. Informational only.
type VentilationMaintenance string

const (
	VentilationMaintainedYes    VentilationMaintenance = "yes"
	VentilationMaintainedUnsure VentilationMaintenance = "unsure"
	VentilationMaintainedNo     VentilationMaintenance = "no"
)

// DermalSurface is the exposed skin surface. The ordinal is also the multiplier.
type DermalSurface int

const (
	DermalSurfaceOneHand             DermalSurface = 1
	DermalSurfaceTwoHandsOrForearm   DermalSurface = 2
	DermalSurfaceTwoHandsPlusForearm DermalSurface = 3
	DermalSurfaceExtensive           DermalSurface = 10
)

// DermalFrequency is the skin contact frequency. The ordinal is also the multiplier.
type DermalFrequency int

const (
	DermalFrequencyOccasional   DermalFrequency = 1
	DermalFrequencyIntermittent DermalFrequency = 2
	DermalFrequencyFrequent     DermalFrequency = 5
	DermalFrequencyPermanent    DermalFrequency = 10
)

// ChemicalAgent is the unit of assessment. Engine functions treat it as immutable.
type ChemicalAgent struct {
	ID string `json:"id" yaml:"id"`

	// Identification
	CommercialName string        `json:"commercial_name" yaml:"commercial_name"`
	SubstanceName  string        `json:"substance_name" yaml:"substance_name"`
	CASNumber      string        `json:"cas_number" yaml:"cas_number"`
	PhysicalState  PhysicalState `json:"physical_state" yaml:"physical_state"`

	// Hazard classification
	LabelingSystem    LabelingSystem    `json:"labeling_system" yaml:"labeling_system"`
	RPhrases          []string          `json:"r_phrases" yaml:"r_phrases"`
	HPhrases          []string          `json:"h_phrases" yaml:"h_phrases"`
	HasVLA            bool              `json:"has_vla" yaml:"has_vla"`
	VLAType           VLAType           `json:"vla_type,omitempty" yaml:"vla_type,omitempty"`
	VLAED             *float64          `json:"vla_ed" yaml:"vla_ed"` // mg/m³
	ParticulateMatter ParticulateMatter `json:"particulate_matter" yaml:"particulate_matter"`
	IsSpecialMaterial bool              `json:"is_special_material" yaml:"is_special_material"`
	SpecialMaterialID string            `json:"special_material_id,omitempty" yaml:"special_material_id,omitempty"`

	// Quantity and frequency
	Quantity       float64        `json:"quantity" yaml:"quantity"`
	QuantityUnit   string         `json:"quantity_unit" yaml:"quantity_unit"`
	TimeReference  TimeReference  `json:"time_reference" yaml:"time_reference"`
	FrequencyLevel FrequencyLevel `json:"frequency_level" yaml:"frequency_level"`

	// Physico-chemical properties
	BoilingPoint       *float64  `json:"boiling_point" yaml:"boiling_point"`             // °C
	WorkingTemperature *float64  `json:"working_temperature" yaml:"working_temperature"` // °C
	IsSpray            bool      `json:"is_spray" yaml:"is_spray"`
	HasFIV             bool      `json:"has_fiv" yaml:"has_fiv"`
	VaporPressure      *float64  `json:"vapor_pressure" yaml:"vapor_pressure"` // kPa
	SolidForm          SolidForm `json:"solid_form,omitempty" yaml:"solid_form,omitempty"`

	// Work procedure and collective protection
	ProcedureClass        ProcedureClass         `json:"procedure_class" yaml:"procedure_class"`
	VentilationClass      VentilationClass       `json:"ventilation_class" yaml:"ventilation_class"`
	VentilationMaintained VentilationMaintenance `json:"ventilation_maintained" yaml:"ventilation_maintained"`

	// Dermal exposure
	HasDermalToxicity bool            `json:"has_dermal_toxicity" yaml:"has_dermal_toxicity"`
	HasSkinContact    bool            `json:"has_skin_contact" yaml:"has_skin_contact"`
	DermalSurface     DermalSurface   `json:"dermal_surface,omitempty" yaml:"dermal_surface,omitempty"`
	DermalFrequency   DermalFrequency `json:"dermal_frequency,omitempty" yaml:"dermal_frequency,omitempty"`
}

// NewChemicalAgent returns an agent with the defaults a new inventory row starts with
func NewChemicalAgent(id string) ChemicalAgent {
	return ChemicalAgent{
		ID:                    id,
		PhysicalState:         PhysicalStateLiquid,
		LabelingSystem:        LabelingSystemNewCLP,
		RPhrases:              []string{},
		HPhrases:              []string{},
		ParticulateMatter:     ParticulateMatterNo,
		QuantityUnit:          "kg",
		TimeReference:         TimeReferenceDay,
		FrequencyLevel:        FrequencyFrequent,
		ProcedureClass:        ProcedureOpen,
		VentilationClass:      VentilationGeneralOrOutdoor,
		VentilationMaintained: VentilationMaintainedYes,
	}
}

// DisplayName returns the commercial name, falling back to the substance name
func (a ChemicalAgent) DisplayName() string {
	if strings.TrimSpace(a.CommercialName) != "" {
		return a.CommercialName
	}
	return a.SubstanceName
}

// DeclaresVLA reports whether the agent carries a usable VLA-ED value
func (a ChemicalAgent) DeclaresVLA() bool {
	return a.HasVLA && a.VLAED != nil
}

// Float returns a pointer to v, for populating optional numeric fields
func Float(v float64) *float64 {
	return &v
}

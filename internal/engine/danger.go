// Package engine implements the scoring algorithms of the INRS simplified
// method: danger and volatility classification, potential-risk hierarchy,
// inhalation and dermal evaluation, and advisory alerts.
//
// Every function is pure and synchronous. Inputs are never mutated and no
// function returns an error: missing data falls back to a documented default.
package engine

import (
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/tables"
)

// DetermineDangerClass returns the highest danger class among the agent's
// hazard phrases, its VLA and its special material. Agents with no known
// source classify as the minimum class.
func DetermineDangerClass(agent entities.ChemicalAgent) entities.DangerClass {
	class := entities.DangerClass(0)
	raise := func(c entities.DangerClass) {
		if c > class {
			class = c
		}
	}

	for _, phrase := range agent.RPhrases {
		if c, ok := tables.RPhraseDangerClass(phrase); ok {
			raise(c)
		}
	}
	for _, phrase := range agent.HPhrases {
		if c, ok := tables.HPhraseDangerClass(phrase); ok {
			raise(c)
		}
	}

	// The raw limit classifies danger; the particulate adjustment only feeds the correction factor.
	if agent.DeclaresVLA() {
		raise(tables.VLADangerClass(*agent.VLAED))
	}

	if agent.IsSpecialMaterial && agent.SpecialMaterialID != "" {
		if sm, ok := tables.FindSpecialMaterial(agent.SpecialMaterialID); ok {
			raise(sm.DangerClass)
		}
	}

	if class == 0 {
		return entities.MinDangerClass
	}
	return class
}

// HasDermalToxicityPhrases reports whether any of the agent's phrases denotes dermal toxicity.
// Callers use it to pre-fill HasDermalToxicity; the evaluators only read the flag.
func HasDermalToxicityPhrases(agent entities.ChemicalAgent) bool {
	for _, p := range agent.RPhrases {
		if tables.IsDermalRPhrase(p) {
			return true
		}
	}
	for _, p := range agent.HPhrases {
		if tables.IsDermalHPhrase(p) {
			return true
		}
	}
	return false
}

// IsCarcinogenic reports whether the agent carries a category 1A/1B carcinogen or mutagen phrase
func IsCarcinogenic(agent entities.ChemicalAgent) bool {
	for _, p := range agent.RPhrases {
		if tables.IsCarcinogenicRPhrase(p) {
			return true
		}
	}
	for _, p := range agent.HPhrases {
		if tables.IsCarcinogenicHPhrase(p) {
			return true
		}
	}
	return false
}

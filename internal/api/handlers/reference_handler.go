package handlers

import (
	"net/http"
	"strings"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/tables"
)

// ReferenceHandler serves the fixed reference tables used to fill in an inventory
type ReferenceHandler struct{}

// NewReferenceHandler creates a new reference handler
func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

// ListSpecialMaterials handles GET /api/reference/special-materials
func (h *ReferenceHandler) ListSpecialMaterials(w http.ResponseWriter, r *http.Request) {
	materials := tables.SpecialMaterials()
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"special_materials": materials,
		"count":             len(materials),
	})
}

// ListFrequencyOptions handles GET /api/reference/frequency-options[?time_reference=day]
func (h *ReferenceHandler) ListFrequencyOptions(w http.ResponseWriter, r *http.Request) {
	refs := tables.TimeReferences()
	if q := r.URL.Query().Get("time_reference"); q != "" {
		refs = []entities.TimeReference{entities.TimeReference(q)}
	}

	out := make(map[entities.TimeReference][]tables.FrequencyOption, len(refs))
	for _, ref := range refs {
		options, ok := tables.FrequencyOptions(ref)
		if !ok {
			respondWithError(w, http.StatusBadRequest, "unknown time_reference "+string(ref))
			return
		}
		out[ref] = options
	}
	respondWithJSON(w, http.StatusOK, out)
}

type phraseInfo struct {
	Code         string               `json:"code"`
	System       string               `json:"system"`
	DangerClass  entities.DangerClass `json:"danger_class"`
	Dermal       bool                 `json:"dermal"`
	Carcinogenic bool                 `json:"carcinogenic"`
}

// GetPhrase handles GET /api/reference/phrases/{code}. Codes starting with
// R are read as risk phrases, anything else as a CLP hazard statement.
func (h *ReferenceHandler) GetPhrase(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSpace(r.PathValue("code"))
	if code == "" {
		respondWithError(w, http.StatusBadRequest, "phrase code is required")
		return
	}

	var info phraseInfo
	if strings.HasPrefix(strings.ToUpper(code), "R") {
		code = tables.NormalizeRPhrase(code)
		class, ok := tables.RPhraseDangerClass(code)
		if !ok {
			respondWithError(w, http.StatusNotFound, "unknown R phrase "+code)
			return
		}
		info = phraseInfo{
			Code:         code,
			System:       "R",
			DangerClass:  class,
			Dermal:       tables.IsDermalRPhrase(code),
			Carcinogenic: tables.IsCarcinogenicRPhrase(code),
		}
	} else {
		code = tables.NormalizeHPhrase(code)
		class, ok := tables.HPhraseDangerClass(code)
		if !ok {
			respondWithError(w, http.StatusNotFound, "unknown H phrase "+code)
			return
		}
		info = phraseInfo{
			Code:         code,
			System:       "H",
			DangerClass:  class,
			Dermal:       tables.IsDermalHPhrase(code),
			Carcinogenic: tables.IsCarcinogenicHPhrase(code),
		}
	}
	respondWithJSON(w, http.StatusOK, info)
}

package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/api/handlers"
)

func TestReferenceHandler_ListSpecialMaterials(t *testing.T) {
	handler := handlers.NewReferenceHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/reference/special-materials", nil)
	w := httptest.NewRecorder()

	handler.ListSpecialMaterials(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var response struct {
		SpecialMaterials []struct {
			ID          string `json:"id"`
			DangerClass int    `json:"danger_class"`
		} `json:"special_materials"`
		Count int `json:"count"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, len(response.SpecialMaterials), response.Count)
	assert.Equal(t, "iron", response.SpecialMaterials[0].ID)
	assert.Equal(t, 2, response.SpecialMaterials[0].DangerClass)
}

func TestReferenceHandler_ListFrequencyOptions(t *testing.T) {
	handler := handlers.NewReferenceHandler()

	t.Run("all references", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/reference/frequency-options", nil)
		w := httptest.NewRecorder()

		handler.ListFrequencyOptions(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var response map[string][]map[string]interface{}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Len(t, response, 4)
		assert.Len(t, response["year"], 5)
	})

	t.Run("single reference", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/reference/frequency-options?time_reference=week", nil)
		w := httptest.NewRecorder()

		handler.ListFrequencyOptions(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var response map[string][]map[string]interface{}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		require.Contains(t, response, "week")
		assert.Len(t, response, 1)
		assert.Equal(t, "Permanente", response["week"][4]["label"])
	})

	t.Run("unknown reference", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/reference/frequency-options?time_reference=decade", nil)
		w := httptest.NewRecorder()

		handler.ListFrequencyOptions(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReferenceHandler_GetPhrase(t *testing.T) {
	handler := handlers.NewReferenceHandler()

	tests := []struct {
		code         string
		wantStatus   int
		wantCode     string
		wantSystem   string
		wantClass    float64
		dermal       bool
		carcinogenic bool
	}{
		{code: "H350", wantStatus: http.StatusOK, wantCode: "H350", wantSystem: "H", wantClass: 5, carcinogenic: true},
		{code: "H315", wantStatus: http.StatusOK, wantCode: "H315", wantSystem: "H", wantClass: 3, dermal: true},
		{code: "r45", wantStatus: http.StatusOK, wantCode: "R45", wantSystem: "R", wantClass: 5, carcinogenic: true},
		{code: "H999", wantStatus: http.StatusNotFound},
		{code: "R99", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/reference/phrases/"+tt.code, nil)
			req.SetPathValue("code", tt.code)
			w := httptest.NewRecorder()

			handler.GetPhrase(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			var response map[string]interface{}
			require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
			assert.Equal(t, tt.wantCode, response["code"])
			assert.Equal(t, tt.wantSystem, response["system"])
			assert.Equal(t, tt.wantClass, response["danger_class"])
			assert.Equal(t, tt.dermal, response["dermal"])
			assert.Equal(t, tt.carcinogenic, response["carcinogenic"])
		})
	}

	t.Run("blank code", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/reference/phrases/", nil)
		w := httptest.NewRecorder()

		handler.GetPhrase(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

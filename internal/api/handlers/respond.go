package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/infrastructure/observability"
	apperrors "github.com/rgarciarojo76-ctrl/Metodo-INRS/pkg/errors"
)

// maxBodyBytes bounds request bodies; inventories are at most a few hundred agents
const maxBodyBytes = 4 << 20

type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, errorResponse{Error: message})
}

// respondWithAppError maps err to a status code. Internal causes are logged, never returned.
func respondWithAppError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperrors.As(err)
	if !ok {
		observability.LoggerFromContext(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("unhandled error")
		respondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	status := appErr.HTTPStatus()
	if status >= http.StatusInternalServerError {
		observability.LoggerFromContext(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	if status == http.StatusInternalServerError {
		respondWithError(w, status, "internal server error")
		return
	}
	respondWithJSON(w, status, errorResponse{Error: appErr.Message, Details: appErr.Details})
}

// decodeJSON reads a bounded JSON body into v
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return false
	}
	return true
}

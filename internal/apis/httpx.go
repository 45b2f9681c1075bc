package apis

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// SendJSON writes v as the JSON response body with the given status.
func SendJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// SendError writes a structured error body with the given status.
func SendError(w http.ResponseWriter, status int, msg string) {
	SendJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON decodes and validates a JSON request body into v. A decode or
// validation failure has already been reported to the client when false is
// returned.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		SendError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := validate.Struct(v); err != nil {
		SendError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

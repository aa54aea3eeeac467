package httpapi

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// errorBody is the client-visible error shape for every failure mode
// (spec §6: "Missing required niche returns HTTP 200 with
// {"error": "..."}... Internal failures return HTTP 500 with
// {"error": "..."}"). There is no success/error envelope beyond this —
// a successful response is the payload itself.
type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response body")
	}
}

// writeBadRequest matches spec §6's HTTP-200-with-error-body quirk for a
// missing/empty niche, preserved for compatibility with an existing
// front-end that branches on the body, not the status code.
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, errorBody{Error: message})
}

func writeInternalError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: message})
}

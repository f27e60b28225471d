package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"jcw/jcw/utils/types"
)

// handleJSON writes handler's result as JSON, or {"error": msg} when it fails.
func handleJSON(handler func(r *http.Request) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, status, err := handler(r)
		if err != nil {
			writeJSON(w, status, types.ErrorResponse{Error: err.Error()})
			return
		}
		if res == nil {
			w.WriteHeader(status)
			return
		}
		writeJSON(w, status, res)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// fail builds an error whose text is shown to the caller verbatim.
func fail(msg string) error { return errors.New(msg) }

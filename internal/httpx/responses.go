package httpx

import (
	"encoding/json"
	"net/http"
)

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// JSON writes v as a bare JSON body.
func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error writes {"<key>": message} plus optional details. Each service picks
// its own key ("error" or "message").
func Error(w http.ResponseWriter, statusCode int, key, message string, details []ErrorDetail) {
	body := map[string]any{key: message}
	if len(details) > 0 {
		body["details"] = details
	}
	JSON(w, statusCode, body)
}

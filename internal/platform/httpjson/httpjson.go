package httpjson

import (
	"encoding/json"
	"net/http"
)

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error Error `json:"error"`
}

// Write encodes v with the given status. An empty cacheControl leaves the
// header unset.
func Write(w http.ResponseWriter, status int, cacheControl string, v any) {
	w.Header().Set("Content-Type", "application/json")
	if cacheControl != "" {
		w.Header().Set("Cache-Control", cacheControl)
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, code, message string) {
	Write(w, status, "no-store", errorResponse{Error: Error{Code: code, Message: message}})
}

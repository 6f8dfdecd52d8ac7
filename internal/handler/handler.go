// Package handler implements the HTTP surface: JSON route handlers,
// middleware, and the router. Response shapes match the public site API
// exactly; compatibility with existing frontend code matters more than
// taste here.
package handler

import (
	"encoding/json"
	"net/http"
)

// apiResponse is the success/message envelope shared by every mutating
// endpoint.
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, success bool, message string) {
	writeJSON(w, status, apiResponse{Success: success, Message: message})
}

// adminAllowed gates admin routes on the X-Admin-Key header. An empty
// configured key leaves the route open, matching the original deployment
// out of the box.
func adminAllowed(r *http.Request, adminKey string) bool {
	return adminKey == "" || r.Header.Get("X-Admin-Key") == adminKey
}

// CORS allows the configured frontend origin to call the API.
func CORS(frontendURL string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Admin-Key")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

package server

import "net/http"

// HealthCheck reports process liveness for the diagnostics listener.
func HealthCheck(serviceName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, HealthResponse{
			Status:  "healthy",
			Service: serviceName,
			Meta:    extractMeta(r.Context()),
		})
	}
}

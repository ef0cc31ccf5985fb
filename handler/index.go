package handler

import (
	"bookmart/config"
	"bookmart/services"
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

// Handler reports whether the BookMart backend answers, without building
// the session layer.
func Handler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	status, code := "ok", http.StatusOK
	response := map[string]interface{}{
		"message": "BookMart API",
		"path":    r.URL.Path,
	}
	if _, err := services.NewBookService(services.NewAPIClient(config.APIBaseURL(), 0)).ListBooks(ctx); err != nil {
		status, code = "degraded", http.StatusServiceUnavailable
		response["error"] = err.Error()
	}
	response["status"] = status

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

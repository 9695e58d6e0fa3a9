package handler

import (
	"encoding/json"
	"net/http"
)

// Handler answers the API root with a short service description.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	response := map[string]interface{}{
		"status":  "ok",
		"message": "Shoe Store API",
		"path":    r.URL.Path,
		"links": map[string]string{
			"shoes":   "/shoes",
			"catalog": "/catalog",
			"docs":    "/swagger/index.html",
		},
	}

	json.NewEncoder(w).Encode(response)
}

package handlers

import (
	"net/http"

	"authflow/internal/utils"
)

// HealthCheck reports process liveness.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.OK(w, http.StatusOK, "", map[string]string{"status": "ok"})
}

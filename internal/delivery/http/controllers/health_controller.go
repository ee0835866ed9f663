package controllers

import (
	"net/http"

	"seminarhub/internal/delivery/http/helpers"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// Health godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} controllers.HealthResponse
// @Router /health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

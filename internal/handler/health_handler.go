package handler

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthHandler agrega la disponibilidad de los cuatro modelos.
type HealthHandler struct {
	checks map[string]func() bool
}

func NewHealthHandler(checks map[string]func() bool) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// @Summary Información del servicio
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"service":       "AI Service - Rental Platform",
		"version":       "1.0.0",
		"status":        "running",
		"timestamp":     time.Now().Format(time.RFC3339),
		"documentation": "/swagger/index.html",
		"endpoints": map[string]string{
			"health":           "/health",
			"price_prediction": "/price",
			"risk_scoring":     "/scoring",
			"recommendations":  "/recommend",
			"market_trend":     "/trend",
		},
	})
}

// @Summary Healthcheck global
// @Description UP con el detalle de qué modelos cargaron; ready solo si están los cuatro
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	loaded := 0
	detail := make(map[string]bool, len(h.checks))
	for name, check := range h.checks {
		ok := check()
		detail[name] = ok
		if ok {
			loaded++
		}
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":    "UP",
		"service":   "ai-service",
		"version":   "1.0.0",
		"timestamp": time.Now().Format(time.RFC3339),
		"checks": map[string]any{
			"models":       detail,
			"models_count": loaded,
		},
		"ready": loaded == len(h.checks),
	})
}

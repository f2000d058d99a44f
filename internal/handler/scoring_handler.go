package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mohamediliasskaddar/RENTOPIA/internal/models"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/service"
)

type ScoringHandler struct {
	svc *service.RiskService
}

func NewScoringHandler(s *service.RiskService) *ScoringHandler { return &ScoringHandler{svc: s} }

// @Summary Predecir el riesgo de un locataire
// @Description Score 0-100 con nivel LOW/MEDIUM/HIGH; lo consume el booking-service
// @Tags scoring
// @Accept json
// @Produce json
// @Param body body models.RiskRequest true "perfil del locataire"
// @Success 200 {object} models.RiskResponse
// @Failure 503 {string} string "modelo no disponible"
// @Router /scoring/predict [post]
func (h *ScoringHandler) Predict(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.RiskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}

	resp, err := h.svc.Predict(req)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// @Summary Estado del modelo de scoring
// @Tags scoring
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /scoring/health [get]
func (h *ScoringHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(modelHealth("risk_scoring", h.svc.Ready()))
}

package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/mohamediliasskaddar/RENTOPIA/internal/service"

	"github.com/go-chi/chi/v5"
)

type TrendHandler struct {
	svc *service.TrendService
}

func NewTrendHandler(s *service.TrendService) *TrendHandler { return &TrendHandler{svc: s} }

// @Summary Tendencias de todos los quartiers
// @Description Precio medio, etiqueta RISING/STABLE/DECLINING y proyecciones a 3 y 6 meses
// @Tags trend
// @Produce json
// @Success 200 {object} models.MarketTrendResponse
// @Failure 503 {string} string "modelo no disponible"
// @Router /trend/trends [get]
func (h *TrendHandler) GetAllTrends(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp, err := h.svc.AllTrends()
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// @Summary Tendencia de un quartier
// @Tags trend
// @Produce json
// @Param id path int true "neighborhoodId"
// @Success 200 {object} models.NeighborhoodTrend
// @Failure 404 {string} string "quartier introuvable"
// @Router /trend/trends/{id} [get]
func (h *TrendHandler) GetNeighborhoodTrend(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "neighborhoodId inválido", 400)
		return
	}

	trend, ok, err := h.svc.NeighborhoodTrend(id)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	if !ok {
		http.Error(w, fmt.Sprintf("Quartier %d introuvable", id), 404)
		return
	}
	_ = json.NewEncoder(w).Encode(trend)
}

// @Summary Datos para heatmap de precios
// @Tags trend
// @Produce json
// @Success 200 {object} models.HeatmapData
// @Router /trend/heatmap [get]
func (h *TrendHandler) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp, err := h.svc.Heatmap()
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// @Summary Resumen global del mercado
// @Tags trend
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /trend/summary [get]
func (h *TrendHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp, err := h.svc.MarketSummary()
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// @Summary Estado del modelo de tendencias
// @Tags trend
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /trend/health [get]
func (h *TrendHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(modelHealth("market_trend", h.svc.Ready()))
}

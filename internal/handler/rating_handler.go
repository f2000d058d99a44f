package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mohamediliasskaddar/RENTOPIA/internal/service"

	"github.com/go-chi/chi/v5"
)

type RatingHandler struct {
	svc *service.RatingService
}

func NewRatingHandler(s *service.RatingService) *RatingHandler { return &RatingHandler{svc: s} }

type ratingRequest struct {
	TenantID   int     `json:"tenant_id"`
	PropertyID int     `json:"property_id"`
	Rating     float64 `json:"rating"`
}

// @Summary Crear/actualizar rating
// @Description El rating entra a Mongo; el modelo lo recoge en el próximo reentrenamiento
// @Tags ratings
// @Accept json
// @Param body body ratingRequest true "rating"
// @Success 204
// @Router /recommend/ratings [post]
func (h *RatingHandler) PostRating(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req ratingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	if err := h.svc.AddOrUpdate(r.Context(), req.TenantID, req.PropertyID, req.Rating); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Listar ratings de un locataire
// @Tags ratings
// @Produce json
// @Param id path int true "tenantId"
// @Router /recommend/tenants/{id}/ratings [get]
func (h *RatingHandler) GetRatings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	tenantID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	list, err := h.svc.GetByTenant(r.Context(), tenantID, 100, 0)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}

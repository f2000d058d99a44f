package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mohamediliasskaddar/RENTOPIA/internal/models"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/service"
)

type PriceHandler struct {
	svc *service.PriceService
}

func NewPriceHandler(s *service.PriceService) *PriceHandler { return &PriceHandler{svc: s} }

// @Summary Predecir precio por noche (ETH)
// @Description Devuelve el precio estimado con fourchette ±10% y su equivalente EUR
// @Tags price
// @Accept json
// @Produce json
// @Param body body models.PriceRequest true "features de la propiedad"
// @Success 200 {object} models.PriceResponse
// @Failure 503 {string} string "modelo no disponible"
// @Router /price/predict [post]
func (h *PriceHandler) Predict(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.PriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	if req.Surface <= 0 || req.Rooms <= 0 {
		http.Error(w, "surface y rooms deben ser positivos", 400)
		return
	}

	resp, err := h.svc.Predict(req)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// @Summary Ejemplo de predicción de precio
// @Description Predice el precio de una propiedad ejemplo (85m², 3 chambres)
// @Tags price
// @Produce json
// @Success 200 {object} models.PriceResponse
// @Router /price/example [get]
func (h *PriceHandler) Example(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp, err := h.svc.Predict(models.PriceRequest{
		Surface:        85,
		Rooms:          3,
		AmenitiesCount: 8,
		AvgRating:      4.4,
		OccupancyRate:  0.72,
	})
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	_ = json.NewEncoder(w).Encode(resp)
}

type batchPriceRequest struct {
	Properties []models.PriceRequest `json:"properties"`
}

type batchPriceResponse struct {
	Predictions []*models.PriceResponse `json:"predictions"`
	Count       int                     `json:"count"`
}

// @Summary Predicción de precio en lote
// @Description Predice varias propiedades en una sola request (comparaciones, import masivo)
// @Tags price
// @Accept json
// @Produce json
// @Param body body batchPriceRequest true "lista de propiedades"
// @Success 200 {object} batchPriceResponse
// @Router /price/predict/batch [post]
func (h *PriceHandler) PredictBatch(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req batchPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}

	out := batchPriceResponse{Predictions: make([]*models.PriceResponse, 0, len(req.Properties))}
	for _, prop := range req.Properties {
		resp, err := h.svc.Predict(prop)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		out.Predictions = append(out.Predictions, resp)
	}
	out.Count = len(out.Predictions)
	_ = json.NewEncoder(w).Encode(out)
}

// @Summary Estado del modelo de precio
// @Tags price
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /price/health [get]
func (h *PriceHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(modelHealth("price_prediction", h.svc.Ready()))
}

// modelHealth arma el payload DOWN/UP que comparten los health por modelo.
func modelHealth(model string, ready bool) map[string]any {
	if !ready {
		return map[string]any{
			"status":  "DOWN",
			"model":   model,
			"loaded":  false,
			"message": "Modèle non chargé",
		}
	}
	return map[string]any{
		"status":  "UP",
		"model":   model,
		"loaded":  true,
		"message": "Modèle opérationnel",
	}
}

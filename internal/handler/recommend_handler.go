package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/mohamediliasskaddar/RENTOPIA/internal/recommender"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/service"

	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

type recommendRequest struct {
	TenantID   *int `json:"tenant_id"`
	PropertyID *int `json:"property_id"`
	TopN       int  `json:"top_n"`
}

// statusFor traduce los errores del dominio a HTTP: modelo sin cargar es
// 503 (el proceso sigue vivo, solo falta correr el trainer).
func statusFor(err error) int {
	if errors.Is(err, recommender.ErrModelUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// @Summary Obtener recomendaciones de propiedades
// @Description tenant_id → personalizadas, property_id → similares, ninguno → populares
// @Tags recommend
// @Accept json
// @Produce json
// @Param body body recommendRequest true "parámetros"
// @Success 200 {object} models.RecommendationResponse
// @Failure 503 {string} string "modelo no disponible"
// @Router /recommend/predict [post]
func (h *RecommendHandler) Predict(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}

	resp, err := h.svc.Recommend(r.Context(), service.RecRequest{
		TenantID:   req.TenantID,
		PropertyID: req.PropertyID,
		TopN:       req.TopN,
	})
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// @Summary Recomendaciones vía query params
// @Description Alternativa GET, más fácil de probar en el navegador
// @Tags recommend
// @Produce json
// @Param tenant_id query int false "ID del locataire"
// @Param property_id query int false "ID de la propiedad"
// @Param top_n query int false "cantidad de recomendaciones (máx 20)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {object} models.RecommendationResponse
// @Router /recommend/properties [get]
func (h *RecommendHandler) GetByQuery(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	req := service.RecRequest{Refresh: r.URL.Query().Get("refresh") == "true"}
	// ids negativos o malformados cuentan como ausentes
	if v := r.URL.Query().Get("tenant_id"); v != "" {
		if id, err := strconv.Atoi(v); err == nil && id >= 0 {
			req.TenantID = &id
		}
	}
	if v := r.URL.Query().Get("property_id"); v != "" {
		if id, err := strconv.Atoi(v); err == nil && id >= 0 {
			req.PropertyID = &id
		}
	}
	req.TopN, _ = strconv.Atoi(r.URL.Query().Get("top_n"))

	resp, err := h.svc.Recommend(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// @Summary Recomendaciones de ejemplo (tenant 1)
// @Tags recommend
// @Produce json
// @Success 200 {object} models.RecommendationResponse
// @Router /recommend/example [get]
func (h *RecommendHandler) Example(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	tenantID := 1
	resp, err := h.svc.Recommend(r.Context(), service.RecRequest{TenantID: &tenantID, TopN: 5})
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// @Summary Estado del modelo de recomendación
// @Tags recommend
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /recommend/health [get]
func (h *RecommendHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if !h.svc.Ready() {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  "DOWN",
			"model":   "recommendation",
			"loaded":  false,
			"message": "Modèle non chargé",
		})
		return
	}

	properties, ratings := h.svc.Stats()
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  "UP",
		"model":   "recommendation",
		"loaded":  true,
		"message": "Modèle opérationnel",
		"stats": map[string]any{
			"properties":        properties,
			"ratings":           ratings,
			"similarity_metric": h.svc.Metric(),
		},
	})
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones en tiempo real (WebSocket)
// @Tags recommend
// @Produce json
// @Param tenant_id query int false "ID del locataire"
// @Param top_n query int false "cantidad de recomendaciones (máx 20)"
// @Success 200 {object} map[string]interface{}
// @Router /recommend/ws [get]
func (h *RecommendHandler) RecommendWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	req := service.RecRequest{}
	if v := r.URL.Query().Get("tenant_id"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			req.TenantID = &id
		}
	}
	req.TopN, _ = strconv.Atoi(r.URL.Query().Get("top_n"))

	// Mensaje inicial
	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, calculando recomendaciones…",
	})

	// Progreso por etapa
	for i, stage := range []string{"consultando el modelo", "enriqueciendo con metadatos"} {
		conn.WriteJSON(map[string]any{
			"type":  "progress",
			"stage": i + 1,
			"msg":   stage,
		})
	}

	resp, err := h.svc.Recommend(r.Context(), req)
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	// Mensaje final con recomendaciones
	conn.WriteJSON(map[string]any{
		"type":        "recommendations",
		"result":      resp,
		"generatedAt": time.Now(),
	})
}

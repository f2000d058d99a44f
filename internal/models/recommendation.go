package models

import "time"

type RecItem struct {
	PropertyID int     `bson:"propertyId" json:"propertyId"`
	Score      float64 `bson:"score"      json:"score"`
}

// PropertyRecommendation es un RecItem enriquecido con los metadatos de la
// propiedad. Los campos de detalle son punteros: si la propiedad no está en
// la tabla de metadatos se devuelven en null, nunca se falla la respuesta.
type PropertyRecommendation struct {
	PropertyID       int      `json:"property_id"`
	Score            float64  `json:"score"`
	Surface          *float64 `json:"surface,omitempty"`
	Rooms            *int     `json:"rooms,omitempty"`
	AmenitiesCount   *int     `json:"amenities_count,omitempty"`
	AvgRating        *float64 `json:"avg_rating,omitempty"`
	OccupancyRate    *float64 `json:"occupancy_rate,omitempty"`
	PricePerNightEUR *int     `json:"price_per_night_eur,omitempty"`
	PricePerNightETH *float64 `json:"price_per_night_eth,omitempty"`
}

type RecommendationResponse struct {
	Recommendations []PropertyRecommendation `json:"recommendations"`
	Count           int                      `json:"count"`
	Type            string                   `json:"recommendation_type"`
	Message         string                   `json:"message"`
}

// Historial que guardamos en Mongo por cada respuesta servida.
type Recommendation struct {
	ID               string    `bson:"_id,omitempty"    json:"id"`
	TenantID         *int      `bson:"tenantId,omitempty" json:"tenantId,omitempty"`
	PropertyID       *int      `bson:"propertyId,omitempty" json:"propertyId,omitempty"`
	Type             string    `bson:"type"             json:"type"`
	SimilarityMetric string    `bson:"similarityMetric" json:"similarityMetric"`
	Params           any       `bson:"params"           json:"params"`
	Items            []RecItem `bson:"items"            json:"items"`
	CreatedAt        time.Time `bson:"createdAt"        json:"createdAt"`
}

package models

// Taux de conversion fijo, el mismo que usa datagen.
const EthEurRate = 3500.0

type PriceRequest struct {
	Surface        float64 `json:"surface"`
	Rooms          int     `json:"rooms"`
	AmenitiesCount int     `json:"amenities_count"`
	AvgRating      float64 `json:"avg_rating"`
	OccupancyRate  float64 `json:"occupancy_rate"`
}

// Fourchette min/max del precio.
type ConfidenceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type PriceResponse struct {
	PredictedPriceETH  float64          `json:"predicted_price_eth"`
	ConfidenceRangeETH ConfidenceRange  `json:"confidence_range_eth"`
	PredictedPriceEUR  int              `json:"predicted_price_eur"`
	ConfidenceRangeEUR *ConfidenceRange `json:"confidence_range_eur,omitempty"`
	EthEurRate         float64          `json:"eth_eur_rate"`
	Recommendation     string           `json:"recommendation"`
}

package models

// Tendencia de un quartier (agregada en el batch de trend).
type NeighborhoodTrend struct {
	NeighborhoodID   int     `json:"neighborhood_id" bson:"neighborhoodId"`
	CurrentAvgPrice  float64 `json:"current_avg_price_eth" bson:"currentAvgPriceEth"`
	TrendLabel       string  `json:"trend_label" bson:"trendLabel"`
	Slope            float64 `json:"slope" bson:"slope"`
	Volatility       float64 `json:"volatility" bson:"volatility"`
	PredictedPrice3m float64 `json:"predicted_price_3m_eth" bson:"predictedPrice3mEth"`
	PredictedPrice6m float64 `json:"predicted_price_6m_eth" bson:"predictedPrice6mEth"`
	Confidence       string  `json:"confidence" bson:"confidence"`
}

type MarketTrendResponse struct {
	Neighborhoods []NeighborhoodTrend `json:"neighborhoods"`
	Count         int                 `json:"count"`
	Summary       map[string]any      `json:"summary"`
}

// Datos listos para pintar una heatmap en el frontend.
type HeatmapData struct {
	Neighborhoods     []string  `json:"neighborhoods"`
	CurrentPrices     []float64 `json:"current_prices"`
	PredictedPrices3m []float64 `json:"predicted_prices_3m"`
	TrendLabels       []string  `json:"trend_labels"`
}

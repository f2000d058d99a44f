package models

// PropertyDoc es una fila de property_price.csv: los metadatos de una
// propiedad que el motor de recomendaciones usa para enriquecer resultados
// y los modelos de precio/tendencia usan como features.
type PropertyDoc struct {
	PropertyID       int     `json:"propertyId" bson:"propertyId"`
	Surface          float64 `json:"surface" bson:"surface"`
	Rooms            int     `json:"rooms" bson:"rooms"`
	AmenitiesCount   int     `json:"amenitiesCount" bson:"amenitiesCount"`
	AvgRating        float64 `json:"avgRating" bson:"avgRating"`
	OccupancyRate    float64 `json:"occupancyRate" bson:"occupancyRate"`
	PricePerNightEUR int     `json:"pricePerNightEur" bson:"pricePerNightEur"`
	PricePerNightETH float64 `json:"pricePerNightEth" bson:"pricePerNightEth"`
}

// TenantRiskDoc es una fila de tenant_risk.csv (solo entrenamiento).
type TenantRiskDoc struct {
	TenantID          int     `json:"tenantId" bson:"tenantId"`
	Income            float64 `json:"income" bson:"income"`
	DebtRatio         float64 `json:"debtRatio" bson:"debtRatio"`
	TotalBookings     int     `json:"totalBookings" bson:"totalBookings"`
	Cancellations     int     `json:"cancellations" bson:"cancellations"`
	LateCancellations int     `json:"lateCancellations" bson:"lateCancellations"`
	AvgRating         float64 `json:"avgRating" bson:"avgRating"`
	RiskScore         int     `json:"riskScore" bson:"riskScore"`
}

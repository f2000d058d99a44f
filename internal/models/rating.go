package models

// Lo que está en Mongo y en recommendation.csv
type RatingDoc struct {
	TenantID   int     `json:"tenantId" bson:"tenantId"`
	PropertyID int     `json:"propertyId" bson:"propertyId"`
	Rating     float64 `json:"rating" bson:"rating"`
	Timestamp  int64   `json:"timestamp,omitempty" bson:"timestamp,omitempty"`
}

package models

type RiskRequest struct {
	Income            float64 `json:"income"`
	DebtRatio         float64 `json:"debt_ratio"`
	TotalBookings     int     `json:"total_bookings"`
	Cancellations     int     `json:"cancellations"`
	LateCancellations int     `json:"late_cancellations"`
	AvgRating         float64 `json:"avg_rating"`
}

type RiskResponse struct {
	RiskScore int    `json:"risk_score"`
	RiskLevel string `json:"risk_level"`
}

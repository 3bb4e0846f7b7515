package response

import "voicehub/internal/usecase"

// StatsResponse is the daily dashboard roll-up. conversion_rate,
// avg_call_duration and fallback_rate are contract placeholders: always
// zero, never measured.
type StatsResponse struct {
	CallsToday      int     `json:"calls_today"`
	OrdersToday     int     `json:"orders_today"`
	ConfirmedToday  int     `json:"confirmed_today"`
	RevenueToday    float64 `json:"revenue_today"`
	AvgOrderValue   float64 `json:"avg_order_value"`
	ConversionRate  float64 `json:"conversion_rate"`
	AvgCallDuration float64 `json:"avg_call_duration"`
	FallbackRate    float64 `json:"fallback_rate"`
}

func FromDashboardStats(s usecase.DashboardStats) StatsResponse {
	return StatsResponse{
		CallsToday:      s.CallsToday,
		OrdersToday:     s.OrdersToday,
		ConfirmedToday:  s.ConfirmedToday,
		RevenueToday:    Round2(s.RevenueToday),
		AvgOrderValue:   Round2(s.AvgOrderValue),
		ConversionRate:  s.ConversionRate,
		AvgCallDuration: s.AvgCallDuration,
		FallbackRate:    s.FallbackRate,
	}
}

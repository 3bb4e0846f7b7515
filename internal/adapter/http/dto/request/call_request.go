package request

import "voicehub/internal/usecase"

// HandoffRequest asks for a human takeover. The summary is what the agent
// wants the operator to know before picking up.
type HandoffRequest struct {
	RestaurantID    string `json:"restaurant_id"`
	CallID          string `json:"call_id"`
	Reason          string `json:"reason" binding:"required"`
	OrderID         string `json:"order_id"`
	SummaryForHuman string `json:"summary_for_human"`
}

func (r HandoffRequest) ToCommand(defaultRestaurantID string) usecase.HandoffRequest {
	return usecase.HandoffRequest{
		RestaurantID:    resolveRestaurantID(r.RestaurantID, defaultRestaurantID),
		CallID:          r.CallID,
		Reason:          r.Reason,
		OrderID:         r.OrderID,
		SummaryForHuman: r.SummaryForHuman,
	}
}

// POSConnectRequest links a POS provider account from the dashboard.
type POSConnectRequest struct {
	Provider string `json:"provider" binding:"required"`
	APIKey   string `json:"api_key" binding:"required"`
}

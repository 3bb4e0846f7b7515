package response

import (
	"time"

	"voicehub/internal/domain/entities"
	"voicehub/internal/usecase"
)

// OrderResponse is the create-or-update result. Validation problems ride
// along as data so the agent can correct the order on the call; the HTTP
// status is 200 either way.
type OrderResponse struct {
	OrderID          string   `json:"order_id"`
	Status           string   `json:"status"`
	Subtotal         float64  `json:"subtotal"`
	Tax              float64  `json:"tax"`
	Total            float64  `json:"total"`
	MissingFields    []string `json:"missing_fields"`
	ValidationErrors []string `json:"validation_errors"`
}

func FromOrderResult(res usecase.OrderResult) OrderResponse {
	missing := res.MissingFields
	if missing == nil {
		missing = []string{}
	}
	validationErrors := res.ValidationErrors
	if validationErrors == nil {
		validationErrors = []string{}
	}
	return OrderResponse{
		OrderID:          res.OrderID,
		Status:           string(res.Status),
		Subtotal:         Round2(res.Subtotal),
		Tax:              Round2(res.Tax),
		Total:            Round2(res.Total),
		MissingFields:    missing,
		ValidationErrors: validationErrors,
	}
}

type ETAResponse struct {
	ETAMinutes   int    `json:"eta_minutes"`
	ReadyTimeISO string `json:"ready_time_iso"`
	Reason       string `json:"reason"`
}

func FromETAResult(res usecase.ETAResult) ETAResponse {
	return ETAResponse{
		ETAMinutes:   res.Minutes,
		ReadyTimeISO: res.ReadyTime.UTC().Format(time.RFC3339),
		Reason:       res.Reason,
	}
}

type ConfirmResponse struct {
	Confirmed        bool    `json:"confirmed"`
	OrderID          string  `json:"order_id"`
	Total            float64 `json:"total"`
	PickupETAMinutes int     `json:"pickup_eta_minutes"`
	PaymentLink      string  `json:"payment_link,omitempty"`
	POSProvider      string  `json:"pos_provider"`
	POSOrderID       string  `json:"pos_order_id"`
}

func FromConfirmResult(res usecase.ConfirmResult) ConfirmResponse {
	return ConfirmResponse{
		Confirmed:        true,
		OrderID:          res.OrderID,
		Total:            Round2(res.Total),
		PickupETAMinutes: res.ETAMinutes,
		PaymentLink:      res.PaymentLink,
		POSProvider:      res.POSProvider,
		POSOrderID:       res.POSOrderID,
	}
}

// OrderHistoryEntry is the dashboard view of a stored order.
type OrderHistoryEntry struct {
	OrderID      string               `json:"order_id"`
	CallID       string               `json:"call_id"`
	Fulfillment  string               `json:"fulfillment"`
	CustomerName string               `json:"customer_name"`
	Phone        string               `json:"phone"`
	Items        []entities.OrderLine `json:"items"`
	Notes        string               `json:"notes,omitempty"`
	Subtotal     float64              `json:"subtotal"`
	Tax          float64              `json:"tax"`
	Total        float64              `json:"total"`
	Status       string               `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
}

func FromOrder(o entities.Order) OrderHistoryEntry {
	items := o.Items
	if items == nil {
		items = []entities.OrderLine{}
	}
	return OrderHistoryEntry{
		OrderID:      o.ID,
		CallID:       o.CallID,
		Fulfillment:  o.Fulfillment,
		CustomerName: o.CustomerName,
		Phone:        o.Phone,
		Items:        items,
		Notes:        o.Notes,
		Subtotal:     Round2(o.Subtotal),
		Tax:          Round2(o.Tax),
		Total:        Round2(o.Total),
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderHistoryEntry {
	out := make([]OrderHistoryEntry, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

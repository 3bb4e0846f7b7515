package request

import (
	"strings"

	"voicehub/internal/domain/entities"
	"voicehub/internal/usecase"
)

type ModifierSelectionRequest struct {
	Group  string `json:"group"`
	Option string `json:"option"`
}

type OrderLineRequest struct {
	ItemID             string                     `json:"item_id" binding:"required"`
	Quantity           int                        `json:"quantity"`
	ModifierSelections []ModifierSelectionRequest `json:"modifier_selections"`
	Instructions       string                     `json:"instructions"`
}

// OrderCreateOrUpdateRequest is the voice-tool payload. Repeated calls with
// the same order_id fully replace the order's items and customer fields.
type OrderCreateOrUpdateRequest struct {
	RestaurantID string             `json:"restaurant_id"`
	CallID       string             `json:"call_id"`
	OrderID      string             `json:"order_id"`
	Fulfillment  string             `json:"fulfillment"`
	CustomerName string             `json:"customer_name"`
	Phone        string             `json:"phone"`
	Items        []OrderLineRequest `json:"items"`
	Notes        string             `json:"notes"`
}

// ToCommand translates the wire payload into the pipeline command. An
// omitted quantity means one of the item; the agent rarely says "one".
func (r OrderCreateOrUpdateRequest) ToCommand(defaultRestaurantID string) usecase.OrderRequest {
	cmd := usecase.OrderRequest{
		RestaurantID: resolveRestaurantID(r.RestaurantID, defaultRestaurantID),
		CallID:       strings.TrimSpace(r.CallID),
		OrderID:      r.OrderID,
		Fulfillment:  r.Fulfillment,
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		Notes:        r.Notes,
	}
	for _, line := range r.Items {
		qty := line.Quantity
		if qty == 0 {
			qty = 1
		}
		reqLine := usecase.RequestedLine{
			ItemID:       strings.TrimSpace(line.ItemID),
			Quantity:     qty,
			Instructions: line.Instructions,
		}
		for _, m := range line.ModifierSelections {
			reqLine.Modifiers = append(reqLine.Modifiers, entities.ModifierSelection{Group: m.Group, Option: m.Option})
		}
		cmd.Items = append(cmd.Items, reqLine)
	}
	return cmd
}

type ETARequest struct {
	RestaurantID string `json:"restaurant_id"`
	OrderID      string `json:"order_id"`
}

type OrderConfirmRequest struct {
	RestaurantID string `json:"restaurant_id"`
	OrderID      string `json:"order_id" binding:"required"`
	PaymentMode  string `json:"payment_mode"`
}

func resolveRestaurantID(requested, fallback string) string {
	if v := strings.TrimSpace(requested); v != "" {
		return v
	}
	return fallback
}

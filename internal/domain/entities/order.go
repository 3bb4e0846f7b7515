package entities

import "time"

// OrderStatus represents the order lifecycle.
//
// Domain notes:
//   - Orders start as draft and only ever advance to confirmed.
//   - Upserting a draft over an existing order must not regress a
//     confirmed status; the repository guarantees that in a single write.
//   - cancelled exists in the data model but no endpoint performs the
//     transition.

type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "draft"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ModifierSelection is a customer's chosen option from one modifier group.
type ModifierSelection struct {
	Group  string `json:"group"`
	Option string `json:"option"`
}

// OrderLine is a priced line item. Name and UnitPrice are snapshots taken
// from the catalog at pricing time, so later catalog edits never alter
// historical orders.
type OrderLine struct {
	ItemID       string              `json:"item_id"`
	Name         string              `json:"name"`
	UnitPrice    float64             `json:"unit_price"`
	Quantity     int                 `json:"quantity"`
	Modifiers    []ModifierSelection `json:"modifiers,omitempty"`
	Instructions string              `json:"instructions,omitempty"`
}

// Order is the order record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (restaurant_id-index): restaurant_id
//
// Monetary invariants (full float64 precision in storage):
//   - Tax = Subtotal × tax rate
//   - Total = Subtotal + Tax

type Order struct {
	ID           string      `json:"id"`
	RestaurantID string      `json:"restaurant_id"`
	CallID       string      `json:"call_id"`
	Fulfillment  string      `json:"fulfillment"`
	CustomerName string      `json:"customer_name,omitempty"`
	Phone        string      `json:"phone,omitempty"`
	Items        []OrderLine `json:"items"`
	Notes        string      `json:"notes,omitempty"`
	Subtotal     float64     `json:"subtotal"`
	Tax          float64     `json:"tax"`
	Total        float64     `json:"total"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}

// IsComplete reports whether the order carries everything confirmation
// requires: a customer name, a phone number, and at least one line item.
func (o Order) IsComplete() bool {
	return o.CustomerName != "" && o.Phone != "" && len(o.Items) > 0
}

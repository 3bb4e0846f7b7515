package entities

// ModifierGroup is a named set of mutually exclusive options on a menu item
// (e.g. "Cheese": American/Cheddar/Swiss). It has no lifecycle of its own;
// it lives and dies with the owning MenuItem.
type ModifierGroup struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

// MenuItem is a catalog entry scoped to one restaurant.
//
// Storage model (DynamoDB):
//   - PK: item_id
//   - GSI1 (restaurant_id-index): restaurant_id
//
// Price is the unit price at full float64 precision; display rounding
// happens at the response boundary only.

type MenuItem struct {
	ItemID       string          `json:"item_id"`
	RestaurantID string          `json:"restaurant_id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Price        float64         `json:"price"`
	Available    bool            `json:"available"`
	Modifiers    []ModifierGroup `json:"modifiers,omitempty"`
}

package entities

import "time"

// Call log event types recorded by the tool endpoints.
const (
	CallEventHandoff = "handoff"
)

// CallLogEntry is a generic call event record: a type tag plus a structured
// payload. Handoff requests and call history both live in this table.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (restaurant_id-index): restaurant_id

type CallLogEntry struct {
	ID           string         `json:"id"`
	RestaurantID string         `json:"restaurant_id"`
	CallID       string         `json:"call_id"`
	EventType    string         `json:"event_type"`
	Payload      map[string]any `json:"payload,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

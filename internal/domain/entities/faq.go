package entities

// FAQ is a question/answer pair the voice agent can read back to callers.
type FAQ struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Question     string `json:"question"`
	Answer       string `json:"answer"`
}

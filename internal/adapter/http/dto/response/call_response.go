package response

import (
	"time"

	"voicehub/internal/domain/entities"
	"voicehub/internal/usecase"
)

type HandoffResponse struct {
	Transferred bool   `json:"transferred"`
	Message     string `json:"message"`
}

func FromHandoffResult(res usecase.HandoffResult) HandoffResponse {
	return HandoffResponse{Transferred: res.Transferred, Message: res.Message}
}

type CallLogView struct {
	ID        string         `json:"id"`
	CallID    string         `json:"call_id"`
	EventType string         `json:"event_type"`
	Payload   map[string]any `json:"payload,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func FromCallLogs(entries []entities.CallLogEntry) []CallLogView {
	out := make([]CallLogView, 0, len(entries))
	for _, e := range entries {
		out = append(out, CallLogView{
			ID:        e.ID,
			CallID:    e.CallID,
			EventType: e.EventType,
			Payload:   e.Payload,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}

type FAQView struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func FromFAQs(faqs []entities.FAQ) []FAQView {
	out := make([]FAQView, 0, len(faqs))
	for _, f := range faqs {
		out = append(out, FAQView{ID: f.ID, Question: f.Question, Answer: f.Answer})
	}
	return out
}

type POSConnectResponse struct {
	Connected    bool   `json:"connected"`
	Provider     string `json:"provider"`
	ProviderName string `json:"provider_name"`
}

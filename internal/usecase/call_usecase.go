package usecase

import (
	"context"
	"log"
	"time"

	"voicehub/internal/domain/entities"
	"voicehub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// HandoffRequest asks for a transfer to a human operator.
type HandoffRequest struct {
	RestaurantID    string
	CallID          string
	Reason          string
	OrderID         string
	SummaryForHuman string
}

// HandoffResult reports the transfer outcome. Transferred is always false:
// no telephony transfer capability exists, the event is only recorded for
// the operator dashboard.
type HandoffResult struct {
	Transferred bool
	Message     string
}

// ICallUseCase exposes handoff logging and the dashboard call history.

type ICallUseCase interface {
	LogHandoff(ctx context.Context, req HandoffRequest) HandoffResult
	ListCalls(ctx context.Context, restaurantID string) ([]entities.CallLogEntry, error)
}

type CallUseCase struct {
	calls interfaces.ICallLogRepository
}

var _ ICallUseCase = (*CallUseCase)(nil)

func NewCallUseCase(calls interfaces.ICallLogRepository) *CallUseCase {
	return &CallUseCase{calls: calls}
}

// LogHandoff appends a handoff event to the call log. A storage failure is
// logged and swallowed: the caller on the line still needs a response, and
// losing one dashboard event is preferable to breaking the call.
func (u *CallUseCase) LogHandoff(ctx context.Context, req HandoffRequest) HandoffResult {
	payload := map[string]any{
		"reason": req.Reason,
	}
	if req.OrderID != "" {
		payload["order_id"] = req.OrderID
	}
	if req.SummaryForHuman != "" {
		payload["summary_for_human"] = req.SummaryForHuman
	}

	_, err := u.calls.Append(ctx, entities.CallLogEntry{
		ID:           uuid.NewString(),
		RestaurantID: req.RestaurantID,
		CallID:       req.CallID,
		EventType:    entities.CallEventHandoff,
		Payload:      payload,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[call][usecase] handoff log failed call_id=%s err=%v", req.CallID, err)
	} else {
		log.Printf("[call][usecase] handoff logged call_id=%s reason=%q", req.CallID, req.Reason)
	}

	return HandoffResult{
		Transferred: false,
		Message:     "A team member has been notified and will follow up shortly.",
	}
}

func (u *CallUseCase) ListCalls(ctx context.Context, restaurantID string) ([]entities.CallLogEntry, error) {
	return u.calls.ListByRestaurant(ctx, restaurantID)
}

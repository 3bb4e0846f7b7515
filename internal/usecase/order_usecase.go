package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"voicehub/internal/domain/entities"
	"voicehub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderIncomplete   = errors.New("order incomplete")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInvalidFulfilment = errors.New("invalid fulfillment mode")
)

// Defaults documented in the dashboard setup guide; both are overridable
// from the environment at wiring time.
const (
	DefaultTaxRate       = 0.08875
	DefaultBaseETA       = 30
	maxLoadAdjustmentMin = 30
	minutesPerOpenOrder  = 2
)

const (
	PaymentModePaymentLink = "payment_link"
	PaymentModePayAtPickup = "pay_at_pickup"

	// No live POS integration exists; confirmations always report this.
	posProviderNone = "none"
)

// RequestedLine is one line of an order request before pricing.
type RequestedLine struct {
	ItemID       string
	Quantity     int
	Modifiers    []entities.ModifierSelection
	Instructions string
}

// OrderRequest is the tool-facing create-or-update command.
type OrderRequest struct {
	RestaurantID string
	CallID       string
	OrderID      string
	Fulfillment  string
	CustomerName string
	Phone        string
	Items        []RequestedLine
	Notes        string
}

// OrderResult is the outcome of the pricing pipeline. ValidationErrors are
// data, not failures: the voice agent inspects them and corrects the order
// conversationally, so the call itself still succeeds.
type OrderResult struct {
	OrderID          string
	Status           entities.OrderStatus
	Subtotal         float64
	Tax              float64
	Total            float64
	MissingFields    []string
	ValidationErrors []string
}

// ETAResult is a pickup/delivery estimate anchored at call time.
type ETAResult struct {
	Minutes   int
	ReadyTime time.Time
	Reason    string
}

// ConfirmResult is the outcome of a successful confirmation.
type ConfirmResult struct {
	OrderID     string
	Total       float64
	ETAMinutes  int
	PaymentLink string
	POSProvider string
	POSOrderID  string
}

// IOrderUseCase exposes the order pipeline consumed by the voice tools plus
// the dashboard order history.

type IOrderUseCase interface {
	CreateOrUpdate(ctx context.Context, req OrderRequest) (OrderResult, error)
	EstimateETA(ctx context.Context, restaurantID string) ETAResult
	Confirm(ctx context.Context, restaurantID, orderID, paymentMode string) (ConfirmResult, error)
	ListOrders(ctx context.Context, restaurantID string) ([]entities.Order, error)
}

type OrderUseCase struct {
	orders  interfaces.IOrderRepository
	menu    interfaces.IMenuRepository
	taxRate float64
	baseETA int
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orders interfaces.IOrderRepository, menu interfaces.IMenuRepository, taxRate float64, baseETA int) *OrderUseCase {
	if taxRate <= 0 {
		taxRate = DefaultTaxRate
	}
	if baseETA <= 0 {
		baseETA = DefaultBaseETA
	}
	return &OrderUseCase{orders: orders, menu: menu, taxRate: taxRate, baseETA: baseETA}
}

// CreateOrUpdate runs the pricing pipeline: resolve the order id, validate
// each requested line against the live catalog, price the accepted lines,
// and upsert the full record. The upsert preserves any existing status in a
// single conditional write, so a concurrent confirmation is never clobbered
// by a stale draft.
func (u *OrderUseCase) CreateOrUpdate(ctx context.Context, req OrderRequest) (OrderResult, error) {
	orderID := strings.TrimSpace(req.OrderID)
	if orderID == "" {
		orderID = uuid.NewString()
	}

	fulfillment := strings.TrimSpace(req.Fulfillment)
	if fulfillment == "" {
		fulfillment = "pickup"
	}
	if fulfillment != "pickup" && fulfillment != "delivery" {
		return OrderResult{}, ErrInvalidFulfilment
	}

	catalog, err := u.menu.ListByRestaurant(ctx, req.RestaurantID)
	if err != nil {
		log.Printf("[order][usecase] catalog load failed restaurant_id=%s order_id=%s err=%v", req.RestaurantID, orderID, err)
		return OrderResult{}, err
	}
	byID := make(map[string]entities.MenuItem, len(catalog))
	for _, it := range catalog {
		byID[it.ItemID] = it
	}

	var (
		lines            []entities.OrderLine
		subtotal         float64
		validationErrors []string
	)
	for _, reqLine := range req.Items {
		if reqLine.Quantity <= 0 {
			return OrderResult{}, fmt.Errorf("%w: item %s", ErrInvalidQuantity, reqLine.ItemID)
		}
		item, ok := byID[reqLine.ItemID]
		if !ok {
			validationErrors = append(validationErrors, fmt.Sprintf("item not found: %s", reqLine.ItemID))
			continue
		}
		if !item.Available {
			validationErrors = append(validationErrors, fmt.Sprintf("item unavailable: %s", item.Name))
			continue
		}
		subtotal += item.Price * float64(reqLine.Quantity)
		lines = append(lines, entities.OrderLine{
			ItemID:       item.ItemID,
			Name:         item.Name,
			UnitPrice:    item.Price,
			Quantity:     reqLine.Quantity,
			Modifiers:    reqLine.Modifiers,
			Instructions: reqLine.Instructions,
		})
	}

	tax := subtotal * u.taxRate
	total := subtotal + tax

	missing := missingFields(req)

	stored, err := u.orders.Upsert(ctx, entities.Order{
		ID:           orderID,
		RestaurantID: req.RestaurantID,
		CallID:       req.CallID,
		Fulfillment:  fulfillment,
		CustomerName: strings.TrimSpace(req.CustomerName),
		Phone:        strings.TrimSpace(req.Phone),
		Items:        lines,
		Notes:        req.Notes,
		Subtotal:     subtotal,
		Tax:          tax,
		Total:        total,
		Status:       entities.OrderStatusDraft,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[order][usecase] upsert failed order_id=%s err=%v", orderID, err)
		return OrderResult{}, err
	}
	log.Printf("[order][usecase] order upserted order_id=%s status=%s lines=%d validation_errors=%d", stored.ID, stored.Status, len(lines), len(validationErrors))

	return OrderResult{
		OrderID:          stored.ID,
		Status:           stored.Status,
		Subtotal:         subtotal,
		Tax:              tax,
		Total:            total,
		MissingFields:    missing,
		ValidationErrors: validationErrors,
	}, nil
}

// missingFields lists required customer fields absent from the request.
// Independent of per-line validation: an order can price cleanly and still
// be unconfirmable.
func missingFields(req OrderRequest) []string {
	missing := []string{}
	if strings.TrimSpace(req.CustomerName) == "" {
		missing = append(missing, "customer_name")
	}
	if strings.TrimSpace(req.Phone) == "" {
		missing = append(missing, "phone")
	}
	if len(req.Items) == 0 {
		missing = append(missing, "items")
	}
	return missing
}

// EstimateETA derives a pickup estimate from the configured base plus a
// load adjustment: two minutes per order confirmed in the trailing hour,
// capped at thirty. Fails open to the base value so the voice tool always
// has an answer.
func (u *OrderUseCase) EstimateETA(ctx context.Context, restaurantID string) ETAResult {
	now := time.Now().UTC()
	minutes := u.baseETA
	reason := fmt.Sprintf("base preparation time of %d minutes", u.baseETA)

	count, err := u.orders.CountByStatusSince(ctx, restaurantID, entities.OrderStatusConfirmed, now.Add(-time.Hour))
	if err != nil {
		log.Printf("[order][usecase] eta load count failed restaurant_id=%s err=%v", restaurantID, err)
	} else if count > 0 {
		adjustment := count * minutesPerOpenOrder
		if adjustment > maxLoadAdjustmentMin {
			adjustment = maxLoadAdjustmentMin
		}
		minutes += adjustment
		reason = fmt.Sprintf("base %d minutes plus %d for %d recent orders", u.baseETA, adjustment, count)
	}

	return ETAResult{
		Minutes:   minutes,
		ReadyTime: now.Add(time.Duration(minutes) * time.Minute),
		Reason:    reason,
	}
}

// Confirm advances an order to confirmed. It requires a complete order
// (name, phone, items) regardless of current status, and re-confirming an
// already confirmed order is not an error.
func (u *OrderUseCase) Confirm(ctx context.Context, restaurantID, orderID, paymentMode string) (ConfirmResult, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return ConfirmResult{}, ErrOrderNotFound
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[order][usecase] confirm load failed order_id=%s err=%v", orderID, err)
		return ConfirmResult{}, err
	}
	if order.ID == "" {
		return ConfirmResult{}, ErrOrderNotFound
	}
	if !order.IsComplete() {
		log.Printf("[order][usecase] confirm rejected order_id=%s missing required fields", orderID)
		return ConfirmResult{}, ErrOrderIncomplete
	}

	updated, err := u.orders.UpdateStatus(ctx, orderID, entities.OrderStatusConfirmed)
	if err != nil {
		log.Printf("[order][usecase] confirm status update failed order_id=%s err=%v", orderID, err)
		return ConfirmResult{}, err
	}
	if updated.ID == "" {
		return ConfirmResult{}, ErrOrderNotFound
	}

	eta := u.EstimateETA(ctx, restaurantID)

	res := ConfirmResult{
		OrderID:     updated.ID,
		Total:       updated.Total,
		ETAMinutes:  eta.Minutes,
		POSProvider: posProviderNone,
	}
	if paymentMode == PaymentModePaymentLink {
		res.PaymentLink = PaymentLinkFor(updated.ID)
	}
	log.Printf("[order][usecase] order confirmed order_id=%s eta_minutes=%d payment_mode=%s", updated.ID, eta.Minutes, paymentMode)
	return res, nil
}

func (u *OrderUseCase) ListOrders(ctx context.Context, restaurantID string) ([]entities.Order, error) {
	return u.orders.ListByRestaurant(ctx, restaurantID)
}

// PaymentLinkFor fabricates the checkout URL for an order. There is no
// payment provider behind it; the URL is deterministic on the order id.
func PaymentLinkFor(orderID string) string {
	return "https://pay.voicehub.example/checkout/" + orderID
}

package queries

import (
	"errors"
	"time"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/kernel"
	"github.com/TenZ001/cure-cart25-sub001/internal/pkg/errs"
	"github.com/TenZ001/cure-cart25-sub001/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full read model of a single order: lines,
// payment, current status, status history and live tracking.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//
//	fmt.Printf("Order %s is %s\n", resp.ID, resp.Status)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order by its identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the full order read model.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	CustomerID    kernel.UUID
	PharmacyID    *kernel.UUID
	PharmacyName  string
	PartnerID     *kernel.UUID
	PartnerName   string
	PartnerPhone  string
	Items         []OrderItemResponse
	Total         decimal.Decimal
	PaymentMethod string
	PaymentStatus string
	Address       string
	Lat           float64
	Lng           float64
	Status        string
	History       []StatusChangeResponse
	Tracking      TrackingResponse
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Version       int64
}

// OrderItemResponse is one order line in the read model.
type OrderItemResponse struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// StatusChangeResponse is one entry of the order's status history.
type StatusChangeResponse struct {
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}

// TrackingResponse carries the live tracking block of the order read model.
type TrackingResponse struct {
	Lat           *float64
	Lng           *float64
	LastUpdatedAt *time.Time
	PickedUpAt    *time.Time
	DeliveredAt   *time.Time
}

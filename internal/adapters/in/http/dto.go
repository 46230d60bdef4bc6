package http

import (
	"time"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/application/usecases/queries"

	"github.com/samber/lo"
)

// Request bodies. Validation tags are enforced by the server's validator
// before any domain code runs; domain rules are re-checked inside the
// aggregate regardless.
type (
	// CreateOrderRequest is the body of POST /api/v1/orders.
	CreateOrderRequest struct {
		CustomerID    string             `json:"customer_id" validate:"required,uuid"`
		PharmacyID    *string            `json:"pharmacy_id,omitempty" validate:"omitempty,uuid"`
		PharmacyName  string             `json:"pharmacy_name,omitempty"`
		Items         []OrderItemRequest `json:"items" validate:"dive"`
		Address       string             `json:"address" validate:"required"`
		Lat           float64            `json:"lat" validate:"min=-90,max=90"`
		Lng           float64            `json:"lng" validate:"min=-180,max=180"`
		PaymentMethod string             `json:"payment_method" validate:"required"`
	}

	// OrderItemRequest is one order line of CreateOrderRequest.
	OrderItemRequest struct {
		Name      string `json:"name" validate:"required"`
		Quantity  int    `json:"quantity" validate:"gt=0"`
		UnitPrice string `json:"unit_price" validate:"required"`
	}

	// AssignPartnerRequest is the body of POST /api/v1/orders/:id/partner.
	AssignPartnerRequest struct {
		PartnerID    string `json:"partner_id" validate:"required,uuid"`
		PartnerName  string `json:"partner_name" validate:"required"`
		PartnerPhone string `json:"partner_phone,omitempty"`
	}

	// AdvanceStatusRequest is the body of POST /api/v1/orders/:id/status.
	// OccurredAt is the time the transition happened on the partner's side.
	AdvanceStatusRequest struct {
		Status     string    `json:"status" validate:"required"`
		ActorID    string    `json:"actor_id" validate:"required,uuid"`
		OccurredAt time.Time `json:"occurred_at" validate:"required"`
	}

	// ReportLocationRequest is the body of POST /api/v1/orders/:id/location.
	ReportLocationRequest struct {
		Lat        float64   `json:"lat" validate:"min=-90,max=90"`
		Lng        float64   `json:"lng" validate:"min=-180,max=180"`
		OccurredAt time.Time `json:"occurred_at" validate:"required"`
	}
)

// Response bodies.
type (
	// ErrorResponse is the uniform error body.
	ErrorResponse struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}

	// OrderResponse is the full order view returned by GET /api/v1/orders/:id.
	OrderResponse struct {
		ID            string                 `json:"id"`
		CustomerID    string                 `json:"customer_id"`
		PharmacyID    *string                `json:"pharmacy_id,omitempty"`
		PharmacyName  string                 `json:"pharmacy_name,omitempty"`
		PartnerID     *string                `json:"partner_id,omitempty"`
		PartnerName   string                 `json:"partner_name,omitempty"`
		PartnerPhone  string                 `json:"partner_phone,omitempty"`
		Items         []OrderItemResponse    `json:"items"`
		Total         string                 `json:"total"`
		PaymentMethod string                 `json:"payment_method"`
		PaymentStatus string                 `json:"payment_status"`
		Address       string                 `json:"address"`
		Lat           float64                `json:"lat"`
		Lng           float64                `json:"lng"`
		Status        string                 `json:"status"`
		History       []StatusChangeResponse `json:"history"`
		Tracking      TrackingResponse       `json:"tracking"`
		CreatedAt     time.Time              `json:"created_at"`
		UpdatedAt     time.Time              `json:"updated_at"`
	}

	// OrderItemResponse is one line of OrderResponse.
	OrderItemResponse struct {
		Name      string `json:"name"`
		Quantity  int    `json:"quantity"`
		UnitPrice string `json:"unit_price"`
	}

	// StatusChangeResponse is one history entry of OrderResponse.
	StatusChangeResponse struct {
		Status string    `json:"status"`
		At     time.Time `json:"at"`
	}

	// TrackingResponse is the live tracking block of OrderResponse.
	TrackingResponse struct {
		Lat           *float64   `json:"lat,omitempty"`
		Lng           *float64   `json:"lng,omitempty"`
		LastUpdatedAt *time.Time `json:"last_updated_at,omitempty"`
		PickedUpAt    *time.Time `json:"picked_up_at,omitempty"`
		DeliveredAt   *time.Time `json:"delivered_at,omitempty"`
	}

	// OrderSummaryResponse is one row of the feed endpoints.
	OrderSummaryResponse struct {
		ID           string    `json:"id"`
		PharmacyName string    `json:"pharmacy_name,omitempty"`
		PartnerName  string    `json:"partner_name,omitempty"`
		Status       string    `json:"status"`
		Total        string    `json:"total"`
		Address      string    `json:"address"`
		CreatedAt    time.Time `json:"created_at"`
		UpdatedAt    time.Time `json:"updated_at"`
	}
)

func toOrderResponse(resp queries.GetOrderQueryResponse) OrderResponse {
	var pharmacyID, partnerID *string
	if resp.PharmacyID != nil {
		id := resp.PharmacyID.String()
		pharmacyID = &id
	}
	if resp.PartnerID != nil {
		id := resp.PartnerID.String()
		partnerID = &id
	}

	return OrderResponse{
		ID:           resp.ID.String(),
		CustomerID:   resp.CustomerID.String(),
		PharmacyID:   pharmacyID,
		PharmacyName: resp.PharmacyName,
		PartnerID:    partnerID,
		PartnerName:  resp.PartnerName,
		PartnerPhone: resp.PartnerPhone,
		Items: lo.Map(resp.Items, func(item queries.OrderItemResponse, _ int) OrderItemResponse {
			return OrderItemResponse{
				Name:      item.Name,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice.String(),
			}
		}),
		Total:         resp.Total.String(),
		PaymentMethod: resp.PaymentMethod,
		PaymentStatus: resp.PaymentStatus,
		Address:       resp.Address,
		Lat:           resp.Lat,
		Lng:           resp.Lng,
		Status:        resp.Status,
		History: lo.Map(resp.History, func(change queries.StatusChangeResponse, _ int) StatusChangeResponse {
			return StatusChangeResponse{Status: change.Status, At: change.At}
		}),
		Tracking: TrackingResponse{
			Lat:           resp.Tracking.Lat,
			Lng:           resp.Tracking.Lng,
			LastUpdatedAt: resp.Tracking.LastUpdatedAt,
			PickedUpAt:    resp.Tracking.PickedUpAt,
			DeliveredAt:   resp.Tracking.DeliveredAt,
		},
		CreatedAt: resp.CreatedAt,
		UpdatedAt: resp.UpdatedAt,
	}
}

func toOrderSummaryResponses(feed []queries.OrderSummaryResponse) []OrderSummaryResponse {
	return lo.Map(feed, func(summary queries.OrderSummaryResponse, _ int) OrderSummaryResponse {
		return OrderSummaryResponse{
			ID:           summary.ID.String(),
			PharmacyName: summary.PharmacyName,
			PartnerName:  summary.PartnerName,
			Status:       summary.Status,
			Total:        summary.Total.String(),
			Address:      summary.Address,
			CreatedAt:    summary.CreatedAt,
			UpdatedAt:    summary.UpdatedAt,
		}
	})
}

package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/kernel"
	"github.com/TenZ001/cure-cart25-sub001/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order's full state from the database.
// Reads bypass the aggregate and scan the row directly; the JSON columns for
// items and history are unpacked into the response.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError for unknown ids.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			pharmacy_id,
			pharmacy_name,
			partner_id,
			partner_name,
			partner_phone,
			items,
			total,
			payment_method,
			payment_status,
			address,
			lat,
			lng,
			status,
			history,
			tracking_lat,
			tracking_lng,
			tracking_last_updated_at,
			tracking_picked_up_at,
			tracking_delivered_at,
			created_at,
			updated_at,
			version
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		resp        GetOrderQueryResponse
		id          uuid.UUID
		customerID  uuid.UUID
		pharmacyID  *uuid.UUID
		partnerID   *uuid.UUID
		itemsJSON   []byte
		historyJSON []byte
	)

	err := row.Scan(
		&id,
		&customerID,
		&pharmacyID,
		&resp.PharmacyName,
		&partnerID,
		&resp.PartnerName,
		&resp.PartnerPhone,
		&itemsJSON,
		&resp.Total,
		&resp.PaymentMethod,
		&resp.PaymentStatus,
		&resp.Address,
		&resp.Lat,
		&resp.Lng,
		&resp.Status,
		&historyJSON,
		&resp.Tracking.Lat,
		&resp.Tracking.Lng,
		&resp.Tracking.LastUpdatedAt,
		&resp.Tracking.PickedUpAt,
		&resp.Tracking.DeliveredAt,
		&resp.CreatedAt,
		&resp.UpdatedAt,
		&resp.Version,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order id", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.PharmacyID, err = optionalUUID(pharmacyID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.PartnerID, err = optionalUUID(partnerID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if err = unmarshalColumn(itemsJSON, &resp.Items); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if err = unmarshalColumn(historyJSON, &resp.History); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

// OrderProgress reports how far the order is through its delivery lifecycle,
// as a fraction of the status steps completed.
func (r GetOrderQueryResponse) OrderProgress() decimal.Decimal {
	steps := []string{"assigned", "picked_up", "en_route", "out_for_delivery", "delivered"}
	for i, step := range steps {
		if step == r.Status {
			return decimal.NewFromInt(int64(i)).Div(decimal.NewFromInt(int64(len(steps) - 1)))
		}
	}
	return decimal.Zero
}

// LastProgressAt returns the most recent timestamp on the order: the later of
// the last status change and the last accepted location report.
func (r GetOrderQueryResponse) LastProgressAt() time.Time {
	last := r.UpdatedAt
	if r.Tracking.LastUpdatedAt != nil && r.Tracking.LastUpdatedAt.After(last) {
		last = *r.Tracking.LastUpdatedAt
	}
	return last
}

func unmarshalColumn(raw []byte, target any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, target)
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	parsed, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

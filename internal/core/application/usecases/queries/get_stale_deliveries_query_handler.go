package queries

import (
	"context"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStaleDeliveriesQueryHandler reads stuck in-flight deliveries from the
// database. An order counts as stale when both its last status change and its
// last accepted location report are older than the threshold. Delivered
// orders are never stale.
type GetStaleDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetStaleDeliveriesQueryHandler creates a handler for stale delivery scans.
func NewGetStaleDeliveriesQueryHandler(db *gorm.DB) GetStaleDeliveriesQueryHandler {
	return GetStaleDeliveriesQueryHandler{db: db}
}

// Handle executes the scan. Oldest silence first, so the most stuck
// deliveries lead the report.
func (h GetStaleDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetStaleDeliveriesQuery,
) ([]StaleDeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := query.Now().Add(-query.Threshold())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			partner_id,
			partner_name,
			status,
			GREATEST(updated_at, COALESCE(tracking_last_updated_at, updated_at)) AS last_progress_at
		FROM orders
		WHERE status != 'delivered'
		  AND updated_at < ?
		  AND COALESCE(tracking_last_updated_at, updated_at) < ?
		ORDER BY last_progress_at ASC
	`, cutoff, cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stale := make([]StaleDeliveryResponse, 0)
	for rows.Next() {
		var (
			resp      StaleDeliveryResponse
			id        uuid.UUID
			partnerID *uuid.UUID
		)

		if err = rows.Scan(
			&id,
			&partnerID,
			&resp.PartnerName,
			&resp.Status,
			&resp.LastProgressAt,
		); err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.PartnerID, err = optionalUUID(partnerID)
		if err != nil {
			return nil, err
		}

		stale = append(stale, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stale, nil
}

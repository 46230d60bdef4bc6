package queries

import (
	"context"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListPartnerOrdersQueryHandler reads a delivery partner's assigned orders
// from the database, newest first.
type ListPartnerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListPartnerOrdersQueryHandler creates a handler for partner work queues.
func NewListPartnerOrdersQueryHandler(db *gorm.DB) ListPartnerOrdersQueryHandler {
	return ListPartnerOrdersQueryHandler{db: db}
}

// Handle executes the query. A partner with no assignments yields an empty
// feed, not an error.
func (h ListPartnerOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListPartnerOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanOrderSummaries(h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			pharmacy_name,
			partner_name,
			status,
			total,
			address,
			created_at,
			updated_at
		FROM orders
		WHERE partner_id = ?
		ORDER BY created_at DESC
	`, query.PartnerID().Bytes()))
}

// orderSummaryRow is the scan target shared by the feed queries.
type orderSummaryRow struct {
	id       uuid.UUID
	response OrderSummaryResponse
}

// scanOrderSummaries drains a feed query into response rows.
func scanOrderSummaries(tx *gorm.DB) ([]OrderSummaryResponse, error) {
	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]orderSummaryRow, 0)
	for rows.Next() {
		var row orderSummaryRow
		if err = rows.Scan(
			&row.id,
			&row.response.PharmacyName,
			&row.response.PartnerName,
			&row.response.Status,
			&row.response.Total,
			&row.response.Address,
			&row.response.CreatedAt,
			&row.response.UpdatedAt,
		); err != nil {
			return nil, err
		}
		summaries = append(summaries, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	responses := make([]OrderSummaryResponse, 0, len(summaries))
	for _, row := range summaries {
		id, idErr := kernel.UUIDFromBytes(row.id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.response.ID = id
		responses = append(responses, row.response)
	}

	return responses, nil
}

package ports

import (
	"context"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/kernel"
	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// It is the sole serialization point between concurrent operations on the same
// order: writes are conditional on the version the caller loaded.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, conditional on
	// the version the aggregate was loaded with. If the stored record has
	// moved on since that read, Update fails with errs.ObjectModifiedError and
	// the caller must re-read and retry. If the record does not exist, it
	// fails with errs.ObjectNotFoundError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllForCustomer retrieves a customer's orders, most recent first.
	GetAllForCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetAllForPartner retrieves the orders assigned to a delivery partner,
	// most recent first.
	GetAllForPartner(ctx context.Context, partnerID kernel.UUID) ([]*order.Order, error)
}

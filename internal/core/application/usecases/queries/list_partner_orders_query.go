package queries

import (
	"errors"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/kernel"
	"github.com/TenZ001/cure-cart25-sub001/internal/pkg/errs"
	"github.com/TenZ001/cure-cart25-sub001/internal/pkg/guard"
)

var ErrListPartnerOrdersQueryIsNotConstructed = errors.New(
	"ListPartnerOrdersQuery must be created via NewListPartnerOrdersQuery constructor",
)

// ListPartnerOrdersQuery retrieves the orders assigned to a delivery partner,
// most recent first. This is the partner's work queue view.
type ListPartnerOrdersQuery struct {
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListPartnerOrdersQuery creates a query for a partner's assigned orders.
func NewListPartnerOrdersQuery(partnerID kernel.UUID) (ListPartnerOrdersQuery, error) {
	if err := partnerID.Validate(); err != nil {
		return ListPartnerOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("partner id", err)
	}

	return ListPartnerOrdersQuery{
		partnerID: partnerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListPartnerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListPartnerOrdersQueryIsNotConstructed)
}

// PartnerID returns the partner whose assignments are requested.
func (q ListPartnerOrdersQuery) PartnerID() kernel.UUID {
	return q.partnerID
}

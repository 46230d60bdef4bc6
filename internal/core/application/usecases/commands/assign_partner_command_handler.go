package commands

import (
	"context"
	"errors"
	"time"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/order"
	"github.com/TenZ001/cure-cart25-sub001/internal/pkg/errs"
)

// AssignPartnerCommandHandler handles the business logic for attaching a
// delivery partner to an order. Assigning the same partner again is a no-op;
// assigning a different partner is rejected by the aggregate.
type AssignPartnerCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignPartnerCommandHandler creates a handler for partner assignment.
func NewAssignPartnerCommandHandler(uowFactory OrderUoWFactory) AssignPartnerCommandHandler {
	return AssignPartnerCommandHandler{uowFactory: uowFactory}
}

// Handle processes the partner assignment command and returns the updated
// order. A concurrent write on the same order surfaces as a version conflict;
// the handler re-reads and retries a bounded number of times before giving up.
func (h *AssignPartnerCommandHandler) Handle(ctx context.Context, cmd AssignPartnerCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < conflictRetryAttempts; attempt++ {
		assigned, err := h.handleOnce(ctx, cmd)
		if err == nil {
			return assigned, nil
		}
		if !errors.Is(err, errs.ErrObjectModified) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

func (h *AssignPartnerCommandHandler) handleOnce(ctx context.Context, cmd AssignPartnerCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.AssignPartner(cmd.PartnerID(), cmd.PartnerName(), cmd.PartnerPhone(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

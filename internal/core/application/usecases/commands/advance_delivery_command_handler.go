package commands

import (
	"context"
	"errors"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/order"
	"github.com/TenZ001/cure-cart25-sub001/internal/core/ports"
	"github.com/TenZ001/cure-cart25-sub001/internal/pkg/errs"
)

// Retry budgets for version conflicts. A conflict means another writer moved
// the order between our read and write; re-reading picks up the fresh state.
// Location reports tolerate more attempts because they overwrite rather than
// transition and every retry remains valid.
const (
	conflictRetryAttempts = 3
	locationRetryAttempts = 5
)

// AdvanceDeliveryCommandHandler handles the business logic for delivery
// status transitions. The aggregate enforces the forward-only status order
// and that only the assigned partner may report progress; the handler adds
// conflict retries and publishes the transition once it is committed.
type AdvanceDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewAdvanceDeliveryCommandHandler creates a handler for status transitions.
func NewAdvanceDeliveryCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) AdvanceDeliveryCommandHandler {
	return AdvanceDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the transition command and returns the updated order.
// Repeating the order's current status is an accepted no-op: nothing is
// written and no event is published. Version conflicts are retried with a
// fresh read; after the retry budget the conflict is returned to the caller.
func (h *AdvanceDeliveryCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveryCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < conflictRetryAttempts; attempt++ {
		advanced, err := h.handleOnce(ctx, cmd)
		if err == nil {
			return advanced, nil
		}
		if !errors.Is(err, errs.ErrObjectModified) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

func (h *AdvanceDeliveryCommandHandler) handleOnce(ctx context.Context, cmd AdvanceDeliveryCommand) (*order.Order, error) {
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

	from := aggregate.Status()
	if err = aggregate.Advance(cmd.Target(), cmd.Actor(), cmd.OccurredAt()); err != nil {
		return nil, err
	}

	if from == aggregate.Status() {
		// Repeated report of the current status. Accepted without a write so
		// the no-op cannot fail on a version conflict either.
		return aggregate, nil
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.StatusChanged(ctx, ports.StatusChangedEvent{
		OrderID: aggregate.ID(),
		From:    from,
		To:      aggregate.Status(),
		At:      cmd.OccurredAt(),
	})

	return aggregate, nil
}

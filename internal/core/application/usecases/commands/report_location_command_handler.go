package commands

import (
	"context"
	"errors"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/order"
	"github.com/TenZ001/cure-cart25-sub001/internal/core/ports"
	"github.com/TenZ001/cure-cart25-sub001/internal/pkg/errs"
)

// ReportLocationCommandHandler handles partner position reports. Position is
// last-write-wins keyed on the sample timestamp: a report older than the
// stored position is accepted and dropped without a write or an event.
type ReportLocationCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewReportLocationCommandHandler creates a handler for location reports.
func NewReportLocationCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) ReportLocationCommandHandler {
	return ReportLocationCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the location report and returns the order with its current
// tracking state. Version conflicts get a larger retry budget than status
// transitions: the report stays valid against any fresh read of the order.
func (h *ReportLocationCommandHandler) Handle(ctx context.Context, cmd ReportLocationCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < locationRetryAttempts; attempt++ {
		updated, err := h.handleOnce(ctx, cmd)
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, errs.ErrObjectModified) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

func (h *ReportLocationCommandHandler) handleOnce(ctx context.Context, cmd ReportLocationCommand) (*order.Order, error) {
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

	// Same staleness rule the tracker applies: older than the stored report
	// time means the sample is dropped without touching the aggregate.
	stored := aggregate.Tracking().LastUpdatedAt()
	stale := stored != nil && cmd.OccurredAt().Before(*stored)

	if err = aggregate.RecordLocation(cmd.Lat(), cmd.Lng(), cmd.OccurredAt()); err != nil {
		return nil, err
	}

	if stale {
		return aggregate, nil
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.LocationUpdated(ctx, ports.LocationUpdatedEvent{
		OrderID: aggregate.ID(),
		Lat:     cmd.Lat(),
		Lng:     cmd.Lng(),
		At:      cmd.OccurredAt(),
	})

	return aggregate, nil
}

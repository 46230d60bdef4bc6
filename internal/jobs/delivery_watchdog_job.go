package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DeliveryWatchdogJob periodically scans for in-flight deliveries that have
// shown no progress for longer than the configured threshold and reports them
// as warnings. The job only observes; unsticking an order stays a human call.
type DeliveryWatchdogJob struct {
	handler   queries.GetStaleDeliveriesQueryHandler
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewDeliveryWatchdogJob creates the watchdog with the given silence threshold.
func NewDeliveryWatchdogJob(
	handler queries.GetStaleDeliveriesQueryHandler,
	threshold time.Duration,
	logger *slog.Logger,
) *DeliveryWatchdogJob {
	return &DeliveryWatchdogJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With("component", "delivery_watchdog_job"),
	}
}

// Start begins the watchdog scan, running every minute.
func (j *DeliveryWatchdogJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", j.scan)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery watchdog started",
		"threshold", j.threshold.String())
	return nil
}

// Stop stops the watchdog.
func (j *DeliveryWatchdogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery watchdog stopped")
}

func (j *DeliveryWatchdogJob) scan() {
	ctx := context.Background()
	now := time.Now().UTC()

	query, err := queries.NewGetStaleDeliveriesQuery(j.threshold, now)
	if err != nil {
		j.logger.ErrorContext(ctx, "Delivery watchdog misconfigured", "error", err)
		return
	}

	stale, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Delivery watchdog scan failed", "error", err)
		return
	}

	for _, delivery := range stale {
		attrs := []any{
			"order_id", delivery.ID.String(),
			"status", delivery.Status,
			"silent_for", now.Sub(delivery.LastProgressAt).Round(time.Second).String(),
		}
		if delivery.PartnerID != nil {
			attrs = append(attrs, "partner_id", delivery.PartnerID.String(), "partner_name", delivery.PartnerName)
		}
		j.logger.WarnContext(ctx, "Delivery shows no progress", attrs...)
	}
}

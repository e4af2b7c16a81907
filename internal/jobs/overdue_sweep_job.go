package jobs

import (
	"context"
	"log/slog"
	"time"

	"orders/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueSweepJob periodically scans the active order board and flags orders
// that have been in the kitchen longer than the configured timeout.
// The sweep is observational: it logs warnings for dashboards and alerting
// but never transitions an order.
type OverdueSweepJob struct {
	handler queries.GetActiveOrdersQueryHandler
	timeout time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueSweepJob creates a sweep job with the given order timeout.
// A non-positive timeout disables overdue detection.
func NewOverdueSweepJob(
	handler queries.GetActiveOrdersQueryHandler,
	timeout time.Duration,
	logger *slog.Logger,
) *OverdueSweepJob {
	return &OverdueSweepJob{
		handler: handler,
		timeout: timeout,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_sweep_job"),
	}
}

// Start begins the sweep to run every thirty seconds.
func (j *OverdueSweepJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		j.sweep(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue sweep job started (running every thirty seconds)")
	return nil
}

// Stop stops the sweep job.
func (j *OverdueSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue sweep job stopped")
}

func (j *OverdueSweepJob) sweep(ctx context.Context) {
	if j.timeout <= 0 {
		return
	}

	active, err := j.handler.Handle(ctx, queries.NewGetActiveOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue sweep failed", "error", err)
		return
	}

	now := time.Now().UTC()
	for _, row := range active {
		age := now.Sub(row.CreatedAt)
		if age <= j.timeout {
			continue
		}

		j.logger.WarnContext(ctx, "Order is overdue",
			"order_id", row.ID.String(),
			"number", row.Number,
			"table", row.TableRef,
			"status", row.Status,
			"age", age.Round(time.Second).String(),
		)
	}
}

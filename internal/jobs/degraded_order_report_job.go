package jobs

import (
	"context"
	"log/slog"

	"fulfilment/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DegradedOrderReportJob periodically reports orders that were finalized on
// a fallback path. Collaborator failures are absorbed per line or per stage,
// so without this report a degraded pipeline would only be visible in
// scattered warning logs.
type DegradedOrderReportJob struct {
	handler queries.GetDegradedOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDegradedOrderReportJob creates a job that summarizes degraded orders
// every minute.
func NewDegradedOrderReportJob(handler queries.GetDegradedOrdersQueryHandler, logger *slog.Logger) *DegradedOrderReportJob {
	return &DegradedOrderReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "degraded_order_report_job"),
	}
}

// Start begins the report job to run every minute.
func (j *DegradedOrderReportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetDegradedOrdersQuery()

		degraded, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Degraded order report failed", "error", handleErr)
			return
		}

		if len(degraded) == 0 {
			return
		}

		// One summary line plus a per-stage breakdown
		stageCounts := make(map[string]int)
		for _, ord := range degraded {
			for _, stage := range ord.DegradedStages {
				stageCounts[stage]++
			}
		}

		j.logger.WarnContext(ctx, "Orders finalized on fallback paths",
			"orders", len(degraded),
			"stage_counts", stageCounts)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Degraded order report job started (running every minute)")
	return nil
}

// Stop stops the report job.
func (j *DegradedOrderReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Degraded order report job stopped")
}

package jobs

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"github.com/robfig/cron/v3"
)

// OccupancyReconciliationJob re-asserts the registry invariant that a table
// is occupied exactly when an active order references it. The submit and
// complete paths maintain the pair transactionally, but a crash between
// deployments or a manual database edit can leave them diverged; this sweep
// repairs any drift once a minute.
type OccupancyReconciliationJob struct {
	db     *gorm.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// NewOccupancyReconciliationJob creates the reconciliation sweep.
func NewOccupancyReconciliationJob(db *gorm.DB, logger *slog.Logger) *OccupancyReconciliationJob {
	return &OccupancyReconciliationJob{
		db:     db,
		cron:   cron.New(),
		logger: logger.With("component", "occupancy_reconciliation_job"),
	}
}

// Start begins the reconciliation job, running once a minute.
func (j *OccupancyReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		released, occupied, reconcileErr := j.Reconcile(ctx)
		if reconcileErr != nil {
			j.logger.ErrorContext(ctx, "Occupancy reconciliation failed", "error", reconcileErr)
			return
		}

		if released > 0 || occupied > 0 {
			j.logger.WarnContext(ctx, "Repaired diverged table statuses",
				"released", released, "occupied", occupied)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Occupancy reconciliation job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *OccupancyReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Occupancy reconciliation job stopped")
}

// Reconcile repairs both directions of drift in one pass: tables marked
// occupied with no active order are released, and tables referenced by an
// active order are marked occupied. Returns how many rows each direction
// touched.
func (j *OccupancyReconciliationJob) Reconcile(ctx context.Context) (released, occupied int64, err error) {
	releaseResult := j.db.WithContext(ctx).Exec(`
		UPDATE tables
		SET status = 'available'
		WHERE status = 'occupied'
		  AND id NOT IN (SELECT table_id FROM table_orders)
	`)
	if releaseResult.Error != nil {
		return 0, 0, releaseResult.Error
	}

	occupyResult := j.db.WithContext(ctx).Exec(`
		UPDATE tables
		SET status = 'occupied'
		WHERE status <> 'occupied'
		  AND id IN (SELECT table_id FROM table_orders)
	`)
	if occupyResult.Error != nil {
		return releaseResult.RowsAffected, 0, occupyResult.Error
	}

	return releaseResult.RowsAffected, occupyResult.RowsAffected, nil
}

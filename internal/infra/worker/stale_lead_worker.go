package worker

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/telecrm/internal/logger"
)

// StaleLeadWorker periodically reports leads that have not been touched
// for a while, so admins can spot telecallers sitting on their queue.
type StaleLeadWorker struct {
	db           *sql.DB
	staleWindow  time.Duration
	tickInterval time.Duration
}

func NewStaleLeadWorker(db *sql.DB) *StaleLeadWorker {
	return &StaleLeadWorker{
		db:           db,
		staleWindow:  7 * 24 * time.Hour,
		tickInterval: 1 * time.Hour,
	}
}

func (w *StaleLeadWorker) Start(ctx context.Context) {
	logger.Info("stale lead worker started",
		zap.Duration("window", w.staleWindow))

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.reportStaleLeads(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.Info("stale lead worker stopped")
			return
		case <-ticker.C:
			w.reportStaleLeads(ctx)
		}
	}
}

func (w *StaleLeadWorker) reportStaleLeads(ctx context.Context) {
	query := `
		SELECT id, name, telecaller_name, last_updated
		FROM leads
		WHERE last_updated < $1
	`

	cutoff := time.Now().Add(-w.staleWindow)
	rows, err := w.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		logger.Error("failed querying stale leads", zap.Error(err))
		return
	}
	defer rows.Close()

	staleCount := 0
	for rows.Next() {
		var id, name, telecaller string
		var lastUpdated time.Time

		if err := rows.Scan(&id, &name, &telecaller, &lastUpdated); err != nil {
			logger.Error("failed scanning stale lead", zap.Error(err))
			continue
		}

		logger.Warn("stale lead",
			zap.String("leadId", id),
			zap.String("lead", name),
			zap.String("telecaller", telecaller),
			zap.Duration("idle", time.Since(lastUpdated).Round(time.Hour)))
		staleCount++
	}

	if staleCount > 0 {
		logger.Info("stale lead sweep finished", zap.Int("count", staleCount))
	}
}

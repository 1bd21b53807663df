package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/sgu-project/sgu-backend/internal/service"
)

// ReportWorker periodically exports the enrollment and department
// reports as XLSX files so the latest snapshot is always on disk.
type ReportWorker struct {
	reports  *service.ReportService
	dir      string
	interval time.Duration
	log      zerolog.Logger
}

// NewReportWorker creates a new ReportWorker.
func NewReportWorker(reports *service.ReportService, dir string, interval time.Duration, log zerolog.Logger) *ReportWorker {
	return &ReportWorker{
		reports:  reports,
		dir:      dir,
		interval: interval,
		log:      log.With().Str("component", "report_worker").Logger(),
	}
}

// Start begins the export loop. Call in a goroutine. The first export
// runs immediately, then every interval until the context is canceled.
func (w *ReportWorker) Start(ctx context.Context) {
	w.log.Info().Dur("interval", w.interval).Str("dir", w.dir).Msg("Worker started")

	w.export(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopped")
			return
		case <-ticker.C:
			w.export(ctx)
		}
	}
}

func (w *ReportWorker) export(ctx context.Context) {
	if err := w.reports.ExportToDir(ctx, w.dir); err != nil {
		if ctx.Err() != nil {
			return
		}
		w.log.Error().Err(err).Msg("Report export failed")
	}
}

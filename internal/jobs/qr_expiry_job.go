// Package jobs provides scheduled background tasks, implemented with
// github.com/robfig/cron/v3. The only job today is the QR credential expiry
// sweep; JobManager keeps the start/stop surface uniform so more can be
// added without touching the composition root.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"orgtrack/internal/core/ports"
)

// QRExpiryJob periodically removes unconsumed QR credentials that have
// passed their expiry. Runs every minute; a missed sweep is harmless because
// Consume checks expiry itself.
type QRExpiryJob struct {
	credentialStore ports.QRCredentialStore
	cron            *cron.Cron
	logger          *slog.Logger
}

// NewQRExpiryJob creates the expiry sweep job.
func NewQRExpiryJob(credentialStore ports.QRCredentialStore, logger *slog.Logger) *QRExpiryJob {
	return &QRExpiryJob{
		credentialStore: credentialStore,
		cron:            cron.New(),
		logger:          logger.With("component", "qr_expiry_job"),
	}
}

// Start begins the expiry sweep, running once a minute.
func (j *QRExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		removed, err := j.credentialStore.ExpireStale(ctx, time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "QR expiry sweep failed", "error", err)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Expired stale QR credentials", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "QR expiry job started (running every minute)")
	return nil
}

// Stop stops the expiry sweep.
func (j *QRExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "QR expiry job stopped")
}

package jobs

import (
	"fmt"
	"log/slog"

	"orgtrack/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	qrExpiryJob *QRExpiryJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(credentialStore ports.QRCredentialStore, logger *slog.Logger) *JobManager {
	return &JobManager{
		qrExpiryJob: NewQRExpiryJob(credentialStore, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.qrExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start QR expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.qrExpiryJob.Stop()
}

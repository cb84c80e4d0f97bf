package commands

import (
	"context"
	"time"

	"orgtrack/internal/core/ports"
)

// ConsumeQRCommandHandler handles QR credential redemption. The store flips
// the consumed flag with one conditional update scoped to the expected
// assignment, so a token scanned against the wrong assignment is rejected
// without touching the credential, and of two concurrent scans of the same
// token exactly one succeeds.
type ConsumeQRCommandHandler struct {
	credentialStore ports.QRCredentialStore
}

// NewConsumeQRCommandHandler creates a handler for QR redemption.
func NewConsumeQRCommandHandler(credentialStore ports.QRCredentialStore) ConsumeQRCommandHandler {
	return ConsumeQRCommandHandler{
		credentialStore: credentialStore,
	}
}

// Handle redeems the scanned token against the expected assignment.
func (h *ConsumeQRCommandHandler) Handle(ctx context.Context, cmd ConsumeQRCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := h.credentialStore.Consume(ctx, cmd.AssignmentID(), cmd.Token(), time.Now().UTC())
	return err
}

package commands

import (
	"context"
	"time"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
	"orgtrack/internal/core/ports"
	"orgtrack/internal/pkg/errs"
)

// SubmitSignatureCommandHandler handles delivery signature capture. The
// signature lives in the document store; no relational row changes, so the
// handler reads the shipment outside a transaction. The unique index on the
// signature collection makes the capture write-once.
type SubmitSignatureCommandHandler struct {
	shipmentRepo   ports.ShipmentRepository
	signatureStore ports.SignatureStore
}

// NewSubmitSignatureCommandHandler creates a handler for signature capture.
func NewSubmitSignatureCommandHandler(
	shipmentRepo ports.ShipmentRepository,
	signatureStore ports.SignatureStore,
) SubmitSignatureCommandHandler {
	return SubmitSignatureCommandHandler{
		shipmentRepo:   shipmentRepo,
		signatureStore: signatureStore,
	}
}

// Handle processes the signature command. A signature is accepted in any
// assignment state; the write-once store keeps the first capture.
func (h *SubmitSignatureCommandHandler) Handle(ctx context.Context, cmd SubmitSignatureCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.shipmentRepo.GetByAssignmentID(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}

	assignment, err := aggregate.Assignment(cmd.AssignmentID())
	if err != nil {
		return err
	}

	if !assignment.IsOwnedBy(cmd.CarrierID()) {
		return errs.NewForbiddenError("assignment belongs to another carrier")
	}

	signature, err := shipment.NewSignature(
		kernel.NewUUID(),
		cmd.AssignmentID(),
		cmd.Kind(),
		cmd.ImageBase64(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	return h.signatureStore.Add(ctx, signature)
}

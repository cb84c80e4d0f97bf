package commands

import (
	"context"
	"time"

	"orgtrack/internal/core/domain/services"
	"orgtrack/internal/core/ports"
)

// AssignPartitionCommandHandler handles assigning a partition of an existing
// shipment to a carrier and vehicle. Both resources are reserved through the
// conditional availability update inside the shipment transaction, so a
// failed reservation rolls everything back and a raced one loses cleanly.
// The carrier's QR credential is issued after commit.
type AssignPartitionCommandHandler struct {
	uowFactory       AssignmentUoWFactory
	credentialStore  ports.QRCredentialStore
	credentialIssuer services.CredentialIssuer
}

// NewAssignPartitionCommandHandler creates a handler for partition assignment.
func NewAssignPartitionCommandHandler(
	uowFactory AssignmentUoWFactory,
	credentialStore ports.QRCredentialStore,
	credentialIssuer services.CredentialIssuer,
) AssignPartitionCommandHandler {
	return AssignPartitionCommandHandler{
		uowFactory:       uowFactory,
		credentialStore:  credentialStore,
		credentialIssuer: credentialIssuer,
	}
}

// Handle processes the partition assignment command.
func (h *AssignPartitionCommandHandler) Handle(ctx context.Context, cmd AssignPartitionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	assignment, err := appendPartition(ctx, uow, aggregate, cmd.Partition(), now)
	if err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	credential, err := h.credentialIssuer.Issue(assignment.ID(), now)
	if err != nil {
		return err
	}

	return h.credentialStore.Add(ctx, credential)
}

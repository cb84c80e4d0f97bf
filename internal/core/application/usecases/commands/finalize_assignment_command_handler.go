package commands

import (
	"context"
	"time"

	"orgtrack/internal/core/domain/model/shipment"
	"orgtrack/internal/core/ports"
	"orgtrack/internal/pkg/errs"
)

// FinalizeAssignmentCommandHandler handles the delivery transition. It is
// gated twice: the post-trip incident report must be filed and the
// recipient's signature must be on record. On success the carrier and
// vehicle return to the Available pool in the same transaction that marks
// the assignment Delivered and re-derives the shipment status.
type FinalizeAssignmentCommandHandler struct {
	uowFactory     TripUoWFactory
	signatureStore ports.SignatureStore
}

// NewFinalizeAssignmentCommandHandler creates a handler for delivery
// finalization.
func NewFinalizeAssignmentCommandHandler(
	uowFactory TripUoWFactory,
	signatureStore ports.SignatureStore,
) FinalizeAssignmentCommandHandler {
	return FinalizeAssignmentCommandHandler{
		uowFactory:     uowFactory,
		signatureStore: signatureStore,
	}
}

// Handle processes the finalization command.
func (h *FinalizeAssignmentCommandHandler) Handle(ctx context.Context, cmd FinalizeAssignmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	hasReport, err := uow.ChecklistRepository().HasPostTrip(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}
	if !hasReport {
		return errs.NewPreconditionNotMetError("post-trip checklist")
	}

	hasSignature, err := h.signatureStore.Has(ctx, cmd.AssignmentID(), shipment.SignatureRecipient)
	if err != nil {
		return err
	}
	if !hasSignature {
		return errs.NewPreconditionNotMetError("delivery signature")
	}

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.GetByAssignmentID(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}

	assignment, err := aggregate.DeliverAssignment(cmd.AssignmentID(), cmd.CarrierID(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.CarrierRepository().Release(ctx, assignment.CarrierID()); err != nil {
		return err
	}

	if err = uow.VehicleRepository().Release(ctx, assignment.VehicleID()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"time"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
	"orgtrack/internal/pkg/errs"
)

// SubmitPreTripChecklistCommandHandler handles pre-trip checklist
// submission. The checklist can only be filed while the assignment is still
// Pending; once the trip started the inspection window is over. The unique
// index on the checklist table makes the submission write-once even under
// concurrent retries.
type SubmitPreTripChecklistCommandHandler struct {
	uowFactory ChecklistUoWFactory
}

// NewSubmitPreTripChecklistCommandHandler creates a handler for pre-trip
// checklist submission.
func NewSubmitPreTripChecklistCommandHandler(uowFactory ChecklistUoWFactory) SubmitPreTripChecklistCommandHandler {
	return SubmitPreTripChecklistCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pre-trip checklist command.
func (h *SubmitPreTripChecklistCommandHandler) Handle(ctx context.Context, cmd SubmitPreTripChecklistCommand) error {
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

	assignment, err := ownedAssignment(ctx, uow, cmd.AssignmentID(), cmd.CarrierID())
	if err != nil {
		return err
	}

	if assignment.Status() != shipment.AssignmentPending {
		return errs.NewInvalidStateError("assignment", assignment.Status().String())
	}

	checklist, err := shipment.NewPreTripChecklist(
		kernel.NewUUID(),
		cmd.AssignmentID(),
		cmd.Conditions(),
		cmd.Notes(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.ChecklistRepository().AddPreTrip(ctx, checklist); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// ownedAssignment loads the assignment through its owning shipment and
// verifies the acting carrier owns it.
func ownedAssignment(
	ctx context.Context,
	uow ChecklistUoW,
	assignmentID, carrierID kernel.UUID,
) (*shipment.Assignment, error) {
	aggregate, err := uow.ShipmentRepository().GetByAssignmentID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	assignment, err := aggregate.Assignment(assignmentID)
	if err != nil {
		return nil, err
	}

	if !assignment.IsOwnedBy(carrierID) {
		return nil, errs.NewForbiddenError("assignment belongs to another carrier")
	}

	return assignment, nil
}

package commands

import (
	"context"
	"time"

	"orgtrack/internal/pkg/errs"
)

// StartAssignmentCommandHandler handles the trip start transition. The
// pre-trip checklist gate, the aggregate transition and the availability
// flips to EnRoute all happen in one transaction: either the trip starts
// with the ledgers matching, or nothing changes.
type StartAssignmentCommandHandler struct {
	uowFactory TripUoWFactory
}

// NewStartAssignmentCommandHandler creates a handler for trip starts.
func NewStartAssignmentCommandHandler(uowFactory TripUoWFactory) StartAssignmentCommandHandler {
	return StartAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the trip start command.
func (h *StartAssignmentCommandHandler) Handle(ctx context.Context, cmd StartAssignmentCommand) error {
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

	hasChecklist, err := uow.ChecklistRepository().HasPreTrip(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}
	if !hasChecklist {
		return errs.NewPreconditionNotMetError("pre-trip checklist")
	}

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.GetByAssignmentID(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}

	assignment, err := aggregate.StartAssignment(cmd.AssignmentID(), cmd.CarrierID(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.CarrierRepository().MarkEnRoute(ctx, assignment.CarrierID()); err != nil {
		return err
	}

	if err = uow.VehicleRepository().MarkEnRoute(ctx, assignment.VehicleID()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

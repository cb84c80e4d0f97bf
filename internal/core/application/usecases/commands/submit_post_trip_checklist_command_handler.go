package commands

import (
	"context"
	"time"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
	"orgtrack/internal/pkg/errs"
)

// SubmitPostTripChecklistCommandHandler handles post-trip incident reports.
// The report requires a started trip: a Pending assignment has no trip to
// report on. Delivered assignments still accept the report, since carriers
// file it after the handoff.
type SubmitPostTripChecklistCommandHandler struct {
	uowFactory ChecklistUoWFactory
}

// NewSubmitPostTripChecklistCommandHandler creates a handler for post-trip
// incident reports.
func NewSubmitPostTripChecklistCommandHandler(uowFactory ChecklistUoWFactory) SubmitPostTripChecklistCommandHandler {
	return SubmitPostTripChecklistCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the post-trip checklist command.
func (h *SubmitPostTripChecklistCommandHandler) Handle(ctx context.Context, cmd SubmitPostTripChecklistCommand) error {
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

	if assignment.Status() == shipment.AssignmentPending {
		return errs.NewInvalidStateError("assignment", assignment.Status().String())
	}

	checklist, err := shipment.NewPostTripChecklist(
		kernel.NewUUID(),
		cmd.AssignmentID(),
		cmd.Incidents(),
		cmd.Description(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.ChecklistRepository().AddPostTrip(ctx, checklist); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"orgtrack/internal/core/application/usecases/commands"
	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
	"orgtrack/internal/pkg/errs"
)

func TestSubmitPostTripChecklistCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()
	aggregate, assignment := shipmentWithAssignment(t, carrierID, shipment.AssignmentInProgress)

	cmd, err := commands.NewSubmitPostTripChecklistCommand(
		assignment.ID(), carrierID,
		shipment.PostTripIncidents{Delays: true},
		"held up at the toll for an hour",
	)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	shipmentRepo.On("GetByAssignmentID", mock.Anything, assignment.ID()).Return(aggregate, nil).Once()

	checklistRepo := new(MockChecklistRepository)
	checklistRepo.On("AddPostTrip", mock.Anything, mock.MatchedBy(func(checklist *shipment.PostTripChecklist) bool {
		return checklist.AssignmentID().IsEqual(assignment.ID()) && checklist.Incidents().Delays
	})).Return(nil).Once()

	uow := new(MockChecklistUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	uow.On("ChecklistRepository").Return(checklistRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(errors.New("no transaction")).Once()

	factory := new(MockChecklistUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitPostTripChecklistCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	checklistRepo.AssertExpectations(t)
}

func TestSubmitPostTripChecklistCommandHandler_Handle_TripNotStarted(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()
	aggregate, assignment := shipmentWithAssignment(t, carrierID, shipment.AssignmentPending)

	cmd, err := commands.NewSubmitPostTripChecklistCommand(
		assignment.ID(), carrierID, shipment.PostTripIncidents{}, "",
	)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	shipmentRepo.On("GetByAssignmentID", mock.Anything, assignment.ID()).Return(aggregate, nil).Once()

	uow := new(MockChecklistUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockChecklistUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitPostTripChecklistCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertNotCalled(t, "ChecklistRepository")
}

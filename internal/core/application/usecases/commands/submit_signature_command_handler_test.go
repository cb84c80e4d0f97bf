package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"orgtrack/internal/core/application/usecases/commands"
	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
	"orgtrack/internal/pkg/errs"
)

const signatureImage = "iVBORw0KGgoAAAANSUhEUg=="

func TestSubmitSignatureCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()
	aggregate, assignment := shipmentWithAssignment(t, carrierID, shipment.AssignmentInProgress)

	cmd, err := commands.NewSubmitSignatureCommand(
		assignment.ID(), carrierID, shipment.SignatureRecipient, signatureImage)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	shipmentRepo.On("GetByAssignmentID", mock.Anything, assignment.ID()).Return(aggregate, nil).Once()

	signatureStore := new(MockSignatureStore)
	signatureStore.On("Add", mock.Anything, mock.MatchedBy(func(signature *shipment.Signature) bool {
		return signature.AssignmentID().IsEqual(assignment.ID()) &&
			signature.Kind() == shipment.SignatureRecipient &&
			signature.ImageBase64() == signatureImage
	})).Return(nil).Once()

	h := commands.NewSubmitSignatureCommandHandler(shipmentRepo, signatureStore)
	require.NoError(t, h.Handle(ctx, cmd))
	signatureStore.AssertExpectations(t)
}

func TestSubmitSignatureCommandHandler_Handle_BeforeTripStart(t *testing.T) {
	// A signature can be captured in any assignment state, including before
	// the carrier starts the trip.
	ctx := t.Context()
	carrierID := kernel.NewUUID()
	aggregate, assignment := shipmentWithAssignment(t, carrierID, shipment.AssignmentPending)

	cmd, err := commands.NewSubmitSignatureCommand(
		assignment.ID(), carrierID, shipment.SignatureCarrier, signatureImage)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	shipmentRepo.On("GetByAssignmentID", mock.Anything, assignment.ID()).Return(aggregate, nil).Once()

	signatureStore := new(MockSignatureStore)
	signatureStore.On("Add", mock.Anything, mock.MatchedBy(func(signature *shipment.Signature) bool {
		return signature.AssignmentID().IsEqual(assignment.ID()) &&
			signature.Kind() == shipment.SignatureCarrier
	})).Return(nil).Once()

	h := commands.NewSubmitSignatureCommandHandler(shipmentRepo, signatureStore)
	require.NoError(t, h.Handle(ctx, cmd))
	signatureStore.AssertExpectations(t)
}

func TestSubmitSignatureCommandHandler_Handle_WrongCarrier(t *testing.T) {
	ctx := t.Context()
	aggregate, assignment := shipmentWithAssignment(t, kernel.NewUUID(), shipment.AssignmentInProgress)

	cmd, err := commands.NewSubmitSignatureCommand(
		assignment.ID(), kernel.NewUUID(), shipment.SignatureRecipient, signatureImage)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	shipmentRepo.On("GetByAssignmentID", mock.Anything, assignment.ID()).Return(aggregate, nil).Once()

	h := commands.NewSubmitSignatureCommandHandler(shipmentRepo, new(MockSignatureStore))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestNewSubmitSignatureCommand_InvalidKind(t *testing.T) {
	_, err := commands.NewSubmitSignatureCommand(
		kernel.NewUUID(), kernel.NewUUID(), shipment.SignatureKindUnknown, signatureImage)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

package queries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgtrack/internal/core/application/usecases/queries"
	"orgtrack/internal/core/domain/model/account"
	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
	"orgtrack/internal/pkg/errs"
)

func testSignature(t *testing.T, assignmentID kernel.UUID, kind shipment.SignatureKind) *shipment.Signature {
	t.Helper()
	signature, err := shipment.NewSignature(
		kernel.NewUUID(), assignmentID, kind, "iVBORw0KGgo=", time.Now().UTC())
	require.NoError(t, err)
	return signature
}

func TestGetAssignmentSignaturesQueryHandler_Handle_BothCaptured(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()
	aggregate, assignment := clientShipment(t, kernel.NewUUID(), carrierID)

	shipmentRepo := &MockShipmentRepository{}
	shipmentRepo.On("GetByAssignmentID", ctx, assignment.ID()).Return(aggregate, nil).Once()

	signatureStore := &MockSignatureStore{}
	signatureStore.On("Get", ctx, assignment.ID(), shipment.SignatureCarrier).
		Return(testSignature(t, assignment.ID(), shipment.SignatureCarrier), nil).Once()
	signatureStore.On("Get", ctx, assignment.ID(), shipment.SignatureRecipient).
		Return(testSignature(t, assignment.ID(), shipment.SignatureRecipient), nil).Once()

	handler := queries.NewGetAssignmentSignaturesQueryHandler(shipmentRepo, signatureStore)

	query, err := queries.NewGetAssignmentSignaturesQuery(assignment.ID(), carrierID, account.RoleCarrier)
	require.NoError(t, err)

	response, err := handler.Handle(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, assignment.ID(), response.AssignmentID)
	require.NotNil(t, response.Carrier)
	require.NotNil(t, response.Recipient)
	assert.Equal(t, "iVBORw0KGgo=", response.Recipient.ImageBase64)
	signatureStore.AssertExpectations(t)
}

func TestGetAssignmentSignaturesQueryHandler_Handle_NoneCaptured(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	aggregate, assignment := clientShipment(t, clientID, kernel.NewUUID())

	shipmentRepo := &MockShipmentRepository{}
	shipmentRepo.On("GetByAssignmentID", ctx, assignment.ID()).Return(aggregate, nil).Once()

	signatureStore := &MockSignatureStore{}
	signatureStore.On("Get", ctx, assignment.ID(), shipment.SignatureCarrier).
		Return(nil, errs.NewObjectNotFoundError("signature", assignment.ID())).Once()
	signatureStore.On("Get", ctx, assignment.ID(), shipment.SignatureRecipient).
		Return(nil, errs.NewObjectNotFoundError("signature", assignment.ID())).Once()

	handler := queries.NewGetAssignmentSignaturesQueryHandler(shipmentRepo, signatureStore)

	query, err := queries.NewGetAssignmentSignaturesQuery(assignment.ID(), clientID, account.RoleClient)
	require.NoError(t, err)

	response, err := handler.Handle(ctx, query)
	require.NoError(t, err)

	assert.Nil(t, response.Carrier)
	assert.Nil(t, response.Recipient)
}

func TestGetAssignmentSignaturesQueryHandler_Handle_ForeignCarrierIsForbidden(t *testing.T) {
	ctx := t.Context()
	aggregate, assignment := clientShipment(t, kernel.NewUUID(), kernel.NewUUID())

	shipmentRepo := &MockShipmentRepository{}
	shipmentRepo.On("GetByAssignmentID", ctx, assignment.ID()).Return(aggregate, nil).Once()

	signatureStore := &MockSignatureStore{}

	handler := queries.NewGetAssignmentSignaturesQueryHandler(shipmentRepo, signatureStore)

	query, err := queries.NewGetAssignmentSignaturesQuery(assignment.ID(), kernel.NewUUID(), account.RoleCarrier)
	require.NoError(t, err)

	_, err = handler.Handle(ctx, query)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	signatureStore.AssertNotCalled(t, "Get", ctx, assignment.ID(), shipment.SignatureCarrier)
}

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

func testCredential(t *testing.T, assignmentID kernel.UUID) *shipment.QRCredential {
	t.Helper()
	now := time.Now().UTC()
	credential, err := shipment.NewQRCredential(
		kernel.NewUUID(), assignmentID,
		kernel.NewUUID().String(), "aGVsbG8=",
		now, now.Add(15*time.Minute),
	)
	require.NoError(t, err)
	return credential
}

func TestGetAssignmentQRQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()
	aggregate, assignment := clientShipment(t, kernel.NewUUID(), carrierID)
	credential := testCredential(t, assignment.ID())

	shipmentRepo := &MockShipmentRepository{}
	shipmentRepo.On("GetByAssignmentID", ctx, assignment.ID()).Return(aggregate, nil).Once()

	credentialStore := &MockQRCredentialStore{}
	credentialStore.On("Get", ctx, assignment.ID()).Return(credential, nil).Once()

	handler := queries.NewGetAssignmentQRQueryHandler(shipmentRepo, credentialStore)

	query, err := queries.NewGetAssignmentQRQuery(assignment.ID(), carrierID, account.RoleCarrier)
	require.NoError(t, err)

	response, err := handler.Handle(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, assignment.ID(), response.AssignmentID)
	assert.Equal(t, "aGVsbG8=", response.ImageBase64)
	assert.False(t, response.Consumed)
	shipmentRepo.AssertExpectations(t)
	credentialStore.AssertExpectations(t)
}

func TestGetAssignmentQRQueryHandler_Handle_ForeignCarrierIsForbidden(t *testing.T) {
	ctx := t.Context()
	aggregate, assignment := clientShipment(t, kernel.NewUUID(), kernel.NewUUID())

	shipmentRepo := &MockShipmentRepository{}
	shipmentRepo.On("GetByAssignmentID", ctx, assignment.ID()).Return(aggregate, nil).Once()

	credentialStore := &MockQRCredentialStore{}

	handler := queries.NewGetAssignmentQRQueryHandler(shipmentRepo, credentialStore)

	query, err := queries.NewGetAssignmentQRQuery(assignment.ID(), kernel.NewUUID(), account.RoleCarrier)
	require.NoError(t, err)

	_, err = handler.Handle(ctx, query)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	credentialStore.AssertNotCalled(t, "Get", ctx, assignment.ID())
}

func TestGetAssignmentQRQueryHandler_Handle_CredentialMissing(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	aggregate, assignment := clientShipment(t, clientID, kernel.NewUUID())

	shipmentRepo := &MockShipmentRepository{}
	shipmentRepo.On("GetByAssignmentID", ctx, assignment.ID()).Return(aggregate, nil).Once()

	credentialStore := &MockQRCredentialStore{}
	credentialStore.On("Get", ctx, assignment.ID()).
		Return(nil, errs.NewObjectNotFoundError("credential", assignment.ID())).Once()

	handler := queries.NewGetAssignmentQRQueryHandler(shipmentRepo, credentialStore)

	query, err := queries.NewGetAssignmentQRQuery(assignment.ID(), clientID, account.RoleClient)
	require.NoError(t, err)

	_, err = handler.Handle(ctx, query)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

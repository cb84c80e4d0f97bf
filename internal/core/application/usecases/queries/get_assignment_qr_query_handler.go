package queries

import (
	"context"

	"orgtrack/internal/core/ports"
	"orgtrack/internal/pkg/errs"
)

// GetAssignmentQRQueryHandler retrieves an assignment's QR credential if
// the requester may see the parent shipment. The token itself stays out of
// the response; it travels only inside the encoded image.
type GetAssignmentQRQueryHandler struct {
	shipmentRepo    ports.ShipmentRepository
	credentialStore ports.QRCredentialStore
}

// NewGetAssignmentQRQueryHandler creates a handler for credential queries.
func NewGetAssignmentQRQueryHandler(
	shipmentRepo ports.ShipmentRepository,
	credentialStore ports.QRCredentialStore,
) GetAssignmentQRQueryHandler {
	return GetAssignmentQRQueryHandler{
		shipmentRepo:    shipmentRepo,
		credentialStore: credentialStore,
	}
}

// Handle retrieves the credential for the assignment.
func (h GetAssignmentQRQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentQRQuery,
) (GetAssignmentQRQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAssignmentQRQueryResponse{}, err
	}

	aggregate, err := h.shipmentRepo.GetByAssignmentID(ctx, query.AssignmentID())
	if err != nil {
		return GetAssignmentQRQueryResponse{}, err
	}

	if !mayView(aggregate, query.RequesterID(), query.RequesterRole()) {
		return GetAssignmentQRQueryResponse{}, errs.NewForbiddenError("assignment belongs to another account")
	}

	credential, err := h.credentialStore.Get(ctx, query.AssignmentID())
	if err != nil {
		return GetAssignmentQRQueryResponse{}, err
	}

	return GetAssignmentQRQueryResponse{
		AssignmentID: credential.AssignmentID(),
		ImageBase64:  credential.ImageBase64(),
		IssuedAt:     credential.IssuedAt(),
		ExpiresAt:    credential.ExpiresAt(),
		Consumed:     credential.IsConsumed(),
	}, nil
}

package queries

import (
	"context"
	"errors"

	"orgtrack/internal/core/domain/model/shipment"
	"orgtrack/internal/core/ports"
	"orgtrack/internal/pkg/errs"
)

// GetAssignmentSignaturesQueryHandler retrieves an assignment's handoff
// signatures if the requester may see the parent shipment.
type GetAssignmentSignaturesQueryHandler struct {
	shipmentRepo   ports.ShipmentRepository
	signatureStore ports.SignatureStore
}

// NewGetAssignmentSignaturesQueryHandler creates a handler for signature
// queries.
func NewGetAssignmentSignaturesQueryHandler(
	shipmentRepo ports.ShipmentRepository,
	signatureStore ports.SignatureStore,
) GetAssignmentSignaturesQueryHandler {
	return GetAssignmentSignaturesQueryHandler{
		shipmentRepo:   shipmentRepo,
		signatureStore: signatureStore,
	}
}

// Handle retrieves both signatures; ones not yet captured come back nil.
func (h GetAssignmentSignaturesQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentSignaturesQuery,
) (GetAssignmentSignaturesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAssignmentSignaturesQueryResponse{}, err
	}

	aggregate, err := h.shipmentRepo.GetByAssignmentID(ctx, query.AssignmentID())
	if err != nil {
		return GetAssignmentSignaturesQueryResponse{}, err
	}

	if !mayView(aggregate, query.RequesterID(), query.RequesterRole()) {
		return GetAssignmentSignaturesQueryResponse{}, errs.NewForbiddenError("assignment belongs to another account")
	}

	carrier, err := h.signatureOrNil(ctx, query, shipment.SignatureCarrier)
	if err != nil {
		return GetAssignmentSignaturesQueryResponse{}, err
	}

	recipient, err := h.signatureOrNil(ctx, query, shipment.SignatureRecipient)
	if err != nil {
		return GetAssignmentSignaturesQueryResponse{}, err
	}

	return GetAssignmentSignaturesQueryResponse{
		AssignmentID: query.AssignmentID(),
		Carrier:      carrier,
		Recipient:    recipient,
	}, nil
}

func (h GetAssignmentSignaturesQueryHandler) signatureOrNil(
	ctx context.Context,
	query GetAssignmentSignaturesQuery,
	kind shipment.SignatureKind,
) (*SignatureResponse, error) {
	signature, err := h.signatureStore.Get(ctx, query.AssignmentID(), kind)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &SignatureResponse{
		ID:          signature.ID(),
		ImageBase64: signature.ImageBase64(),
		SignedAt:    signature.SignedAt(),
	}, nil
}

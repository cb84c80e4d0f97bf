package queries

import (
	"errors"
	"time"

	"orgtrack/internal/core/domain/model/account"
	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/guard"
)

var ErrGetAssignmentSignaturesQueryIsNotConstructed = errors.New(
	"GetAssignmentSignaturesQuery must be created via NewGetAssignmentSignaturesQuery constructor",
)

// GetAssignmentSignaturesQuery retrieves the handoff signatures of an
// assignment: the carrier's load signature and the recipient's delivery
// signature, either of which may not have been captured yet.
//
// Scoping follows GetShipmentQuery: the parent shipment must be visible to
// the requester.
type GetAssignmentSignaturesQuery struct { //nolint:recvcheck //using for validation
	assignmentID  kernel.UUID
	requesterID   kernel.UUID
	requesterRole account.Role

	guard guard.ConstructorGuard
}

// NewGetAssignmentSignaturesQuery creates a query for one assignment's
// signatures.
func NewGetAssignmentSignaturesQuery(
	assignmentID, requesterID kernel.UUID,
	requesterRole account.Role,
) (GetAssignmentSignaturesQuery, error) {
	signaturesQuery := GetAssignmentSignaturesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignmentID.Validate(),
		requesterID.Validate(),
		requesterRole.Validate(),
	); err != nil {
		return GetAssignmentSignaturesQuery{}, err
	}

	signaturesQuery.assignmentID = assignmentID
	signaturesQuery.requesterID = requesterID
	signaturesQuery.requesterRole = requesterRole
	return signaturesQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignmentSignaturesQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentSignaturesQueryIsNotConstructed)
}

// AssignmentID returns the assignment whose signatures are requested.
func (q GetAssignmentSignaturesQuery) AssignmentID() kernel.UUID {
	return q.assignmentID
}

// RequesterID returns the scoping identity.
func (q GetAssignmentSignaturesQuery) RequesterID() kernel.UUID {
	return q.requesterID
}

// RequesterRole returns the requester's role.
func (q GetAssignmentSignaturesQuery) RequesterRole() account.Role {
	return q.requesterRole
}

// SignatureResponse is one captured signature.
type SignatureResponse struct {
	ID          kernel.UUID
	ImageBase64 string
	SignedAt    time.Time
}

// GetAssignmentSignaturesQueryResponse is the signatures read model. A nil
// entry means that signature has not been captured.
type GetAssignmentSignaturesQueryResponse struct {
	AssignmentID kernel.UUID
	Carrier      *SignatureResponse
	Recipient    *SignatureResponse
}

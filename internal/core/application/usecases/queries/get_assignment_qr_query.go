package queries

import (
	"errors"
	"time"

	"orgtrack/internal/core/domain/model/account"
	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/guard"
)

var ErrGetAssignmentQRQueryIsNotConstructed = errors.New(
	"GetAssignmentQRQuery must be created via NewGetAssignmentQRQuery constructor",
)

// GetAssignmentQRQuery retrieves the single-use QR credential of an
// assignment so it can be rendered for scanning at handover.
//
// Scoping follows GetShipmentQuery: the parent shipment must be visible to
// the requester.
type GetAssignmentQRQuery struct { //nolint:recvcheck //using for validation
	assignmentID  kernel.UUID
	requesterID   kernel.UUID
	requesterRole account.Role

	guard guard.ConstructorGuard
}

// NewGetAssignmentQRQuery creates a query for one assignment's credential.
func NewGetAssignmentQRQuery(
	assignmentID, requesterID kernel.UUID,
	requesterRole account.Role,
) (GetAssignmentQRQuery, error) {
	credentialQuery := GetAssignmentQRQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignmentID.Validate(),
		requesterID.Validate(),
		requesterRole.Validate(),
	); err != nil {
		return GetAssignmentQRQuery{}, err
	}

	credentialQuery.assignmentID = assignmentID
	credentialQuery.requesterID = requesterID
	credentialQuery.requesterRole = requesterRole
	return credentialQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignmentQRQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentQRQueryIsNotConstructed)
}

// AssignmentID returns the assignment whose credential is requested.
func (q GetAssignmentQRQuery) AssignmentID() kernel.UUID {
	return q.assignmentID
}

// RequesterID returns the scoping identity.
func (q GetAssignmentQRQuery) RequesterID() kernel.UUID {
	return q.requesterID
}

// RequesterRole returns the requester's role.
func (q GetAssignmentQRQuery) RequesterRole() account.Role {
	return q.requesterRole
}

// GetAssignmentQRQueryResponse is the credential read model. ImageBase64
// is a PNG ready for inline rendering.
type GetAssignmentQRQueryResponse struct {
	AssignmentID kernel.UUID
	ImageBase64  string
	IssuedAt     time.Time
	ExpiresAt    time.Time
	Consumed     bool
}

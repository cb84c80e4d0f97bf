package ports

import (
	"context"
	"time"

	"orgtrack/internal/core/domain/model/geo"
	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
)

// LocationStore persists the geographic document of a shipment in the
// document store. The returned id is the opaque reference kept on the
// shipment row.
type LocationStore interface {
	// Add inserts a location document and returns its id.
	Add(ctx context.Context, location geo.Location) (string, error)

	// Get retrieves a location document by its id.
	Get(ctx context.Context, id string) (geo.Location, error)

	// Delete removes a location document. Used as compensation when the
	// relational transaction that references it fails.
	Delete(ctx context.Context, id string) error
}

// SignatureStore persists handoff signatures, at most one per assignment
// and kind. A second Add for the same assignment and kind returns
// AlreadyExists.
type SignatureStore interface {
	// Add inserts a signature document.
	Add(ctx context.Context, signature *shipment.Signature) error

	// Get retrieves the signature of the given kind for an assignment.
	// Returns ObjectNotFound if none was submitted.
	Get(ctx context.Context, assignmentID kernel.UUID, kind shipment.SignatureKind) (*shipment.Signature, error)

	// Has reports whether the assignment has a signature of the given
	// kind. The recipient kind is the finalization gate.
	Has(ctx context.Context, assignmentID kernel.UUID, kind shipment.SignatureKind) (bool, error)
}

// QRCredentialStore persists single-use QR credentials, one per assignment.
type QRCredentialStore interface {
	// Add inserts a credential document.
	// Returns AlreadyExists if the assignment already has one.
	Add(ctx context.Context, credential *shipment.QRCredential) error

	// Get retrieves the credential for an assignment.
	Get(ctx context.Context, assignmentID kernel.UUID) (*shipment.QRCredential, error)

	// Consume atomically flips the consumed flag false -> true for the
	// credential with the given token, but only if it belongs to the given
	// assignment; a token scanned against the wrong assignment returns
	// ValueIsInvalid and stays unconsumed. Returns InvalidState if the
	// credential was already consumed or is expired, ObjectNotFound if the
	// token is unknown. Exactly one of two concurrent consumers succeeds.
	Consume(ctx context.Context, assignmentID kernel.UUID, token string, now time.Time) (*shipment.QRCredential, error)

	// ExpireStale deletes unconsumed credentials whose expiry is before the
	// given time, returning how many were removed. Run by the expiry job.
	ExpireStale(ctx context.Context, before time.Time) (int64, error)
}

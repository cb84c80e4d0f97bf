package shipment

import (
	"errors"
	"time"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/errs"
)

// QR credential errors.
var (
	// ErrQRTokenIsRequired is returned when the credential token is missing.
	ErrQRTokenIsRequired = errs.NewValueIsRequiredError("token")
	// ErrQRCredentialConsumed is returned when a credential has already been used.
	ErrQRCredentialConsumed = errs.NewInvalidStateError("qr credential", "Consumed")
	// ErrQRCredentialExpired is returned when a credential is past its expiry.
	ErrQRCredentialExpired = errs.NewInvalidStateError("qr credential", "Expired")
)

// QRCredential is the single-use proof-of-custody token issued when an
// assignment is created. The carrier presents the QR image at pickup; the
// scan consumes the token exactly once. The consumed flag only ever flips
// false to true, and the store performs the flip as a conditional update so
// two concurrent scans cannot both succeed.
type QRCredential struct {
	id           kernel.UUID
	assignmentID kernel.UUID
	token        string
	imageBase64  string
	consumed     bool
	issuedAt     time.Time
	expiresAt    time.Time
}

// NewQRCredential issues an unconsumed credential for an assignment.
func NewQRCredential(id, assignmentID kernel.UUID, token, imageBase64 string, issuedAt, expiresAt time.Time) (*QRCredential, error) {
	if err := errors.Join(
		id.Validate(),
		assignmentID.Validate(),
	); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrQRTokenIsRequired
	}
	if issuedAt.IsZero() || expiresAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("issuedAt/expiresAt")
	}
	if !expiresAt.After(issuedAt) {
		return nil, errs.NewValueIsInvalidErrorWithCause("expiresAt is invalid",
			errors.New("expiry must be after issue time"))
	}

	return &QRCredential{
		id:           id,
		assignmentID: assignmentID,
		token:        token,
		imageBase64:  imageBase64,
		issuedAt:     issuedAt,
		expiresAt:    expiresAt,
	}, nil
}

// RestoreQRCredential reconstructs a credential from the document store.
func RestoreQRCredential(id, assignmentID kernel.UUID, token, imageBase64 string, consumed bool, issuedAt, expiresAt time.Time) (*QRCredential, error) {
	if err := errors.Join(
		id.Validate(),
		assignmentID.Validate(),
	); err != nil {
		return nil, err
	}

	return &QRCredential{
		id:           id,
		assignmentID: assignmentID,
		token:        token,
		imageBase64:  imageBase64,
		consumed:     consumed,
		issuedAt:     issuedAt,
		expiresAt:    expiresAt,
	}, nil
}

// ID returns the credential identifier.
func (q *QRCredential) ID() kernel.UUID {
	return q.id
}

// AssignmentID returns the assignment this credential belongs to.
func (q *QRCredential) AssignmentID() kernel.UUID {
	return q.assignmentID
}

// Token returns the opaque single-use token encoded in the QR image.
func (q *QRCredential) Token() string {
	return q.token
}

// ImageBase64 returns the base64-encoded QR PNG.
func (q *QRCredential) ImageBase64() string {
	return q.imageBase64
}

// IsConsumed reports whether the credential has been used.
func (q *QRCredential) IsConsumed() bool {
	return q.consumed
}

// IssuedAt returns when the credential was issued.
func (q *QRCredential) IssuedAt() time.Time {
	return q.issuedAt
}

// ExpiresAt returns when the credential stops being valid.
func (q *QRCredential) ExpiresAt() time.Time {
	return q.expiresAt
}

// IsExpired reports whether the credential is past its expiry at the given time.
func (q *QRCredential) IsExpired(now time.Time) bool {
	return !now.Before(q.expiresAt)
}

// Consume marks the credential as used. Returns InvalidState if it was
// already consumed or has expired. The authoritative race check is the
// store's conditional update; this method enforces the same rule for the
// in-memory copy.
func (q *QRCredential) Consume(now time.Time) error {
	if q.consumed {
		return ErrQRCredentialConsumed
	}
	if q.IsExpired(now) {
		return ErrQRCredentialExpired
	}
	q.consumed = true
	return nil
}

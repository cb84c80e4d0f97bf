package shipment

import (
	"errors"
	"time"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/errs"
)

// ErrSignatureImageIsRequired is returned when the signature image is missing.
var ErrSignatureImageIsRequired = errs.NewValueIsRequiredError("signature image")

// SignatureKind distinguishes who signed: the recipient confirming the
// handoff, or the carrier confirming the load.
type SignatureKind int

const (
	SignatureKindUnknown SignatureKind = iota
	SignatureRecipient
	SignatureCarrier
)

var signatureKindNames = map[SignatureKind]string{
	SignatureKindUnknown: "Unknown",
	SignatureRecipient:   "Recipient",
	SignatureCarrier:     "Carrier",
}

// String returns the kind name.
func (k SignatureKind) String() string {
	if name, ok := signatureKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsValid reports whether the kind is one of the defined kinds.
func (k SignatureKind) IsValid() bool {
	return k == SignatureRecipient || k == SignatureCarrier
}

// SignatureKindFromString parses a kind name as produced by String.
func SignatureKindFromString(name string) (SignatureKind, error) {
	for kind, kindName := range signatureKindNames {
		if kindName == name && kind.IsValid() {
			return kind, nil
		}
	}
	return SignatureKindUnknown, errs.NewValueIsInvalidError("signature kind")
}

// Signature is a handoff signature captured as a base64 PNG, at most one per
// assignment and kind. The recipient signature is the second finalization
// gate next to the post-trip checklist; the carrier signature documents the
// load. Stored in the document store with a unique index on
// (assignment id, kind).
type Signature struct {
	id           kernel.UUID
	assignmentID kernel.UUID
	kind         SignatureKind
	imageBase64  string
	signedAt     time.Time
}

// NewSignature creates a signature record of the given kind.
func NewSignature(
	id, assignmentID kernel.UUID,
	kind SignatureKind,
	imageBase64 string,
	signedAt time.Time,
) (*Signature, error) {
	if err := errors.Join(
		id.Validate(),
		assignmentID.Validate(),
	); err != nil {
		return nil, err
	}
	if !kind.IsValid() {
		return nil, errs.NewValueIsInvalidError("signature kind")
	}
	if imageBase64 == "" {
		return nil, ErrSignatureImageIsRequired
	}
	if signedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("signedAt")
	}

	return &Signature{
		id:           id,
		assignmentID: assignmentID,
		kind:         kind,
		imageBase64:  imageBase64,
		signedAt:     signedAt,
	}, nil
}

// ID returns the signature identifier.
func (s *Signature) ID() kernel.UUID {
	return s.id
}

// AssignmentID returns the assignment this signature belongs to.
func (s *Signature) AssignmentID() kernel.UUID {
	return s.assignmentID
}

// Kind returns who signed.
func (s *Signature) Kind() SignatureKind {
	return s.kind
}

// ImageBase64 returns the base64-encoded signature image.
func (s *Signature) ImageBase64() string {
	return s.imageBase64
}

// SignedAt returns when it was signed.
func (s *Signature) SignedAt() time.Time {
	return s.signedAt
}

package commands

import (
	"errors"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
	"orgtrack/internal/pkg/errs"
	"orgtrack/internal/pkg/guard"
)

var (
	ErrSubmitSignatureCommandIsNotConstructed = errors.New(
		"SubmitSignatureCommand must be created via NewSubmitSignatureCommand constructor",
	)
	ErrSignatureImageIsRequired = errors.New("signature image is required")
)

// SubmitSignatureCommand represents a carrier capturing a handoff
// signature: the recipient's on delivery, or the carrier's own on loading.
type SubmitSignatureCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	carrierID    kernel.UUID
	kind         shipment.SignatureKind
	imageBase64  string

	guard guard.ConstructorGuard
}

// NewSubmitSignatureCommand creates a command to record a signature of the
// given kind. imageBase64 carries the captured signature as a base64 PNG.
func NewSubmitSignatureCommand(
	assignmentID, carrierID kernel.UUID,
	kind shipment.SignatureKind,
	imageBase64 string,
) (SubmitSignatureCommand, error) {
	signatureCommand := SubmitSignatureCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		signatureCommand.setAssignmentID(assignmentID),
		signatureCommand.setCarrierID(carrierID),
		signatureCommand.setKind(kind),
		signatureCommand.setImage(imageBase64),
	); err != nil {
		return SubmitSignatureCommand{}, err
	}

	return signatureCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitSignatureCommand) Validate() error {
	return c.guard.Validate(ErrSubmitSignatureCommandIsNotConstructed)
}

// AssignmentID returns the assignment being signed for.
func (c SubmitSignatureCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// CarrierID returns the acting carrier.
func (c SubmitSignatureCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Kind returns who is signing.
func (c SubmitSignatureCommand) Kind() shipment.SignatureKind {
	return c.kind
}

// ImageBase64 returns the signature image.
func (c SubmitSignatureCommand) ImageBase64() string {
	return c.imageBase64
}

func (c *SubmitSignatureCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *SubmitSignatureCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}

func (c *SubmitSignatureCommand) setKind(kind shipment.SignatureKind) error {
	if !kind.IsValid() {
		return errs.NewValueIsInvalidError("signature kind")
	}

	c.kind = kind
	return nil
}

func (c *SubmitSignatureCommand) setImage(imageBase64 string) error {
	if imageBase64 == "" {
		return ErrSignatureImageIsRequired
	}

	c.imageBase64 = imageBase64
	return nil
}

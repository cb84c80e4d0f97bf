package services

import (
	"encoding/base64"
	"time"

	"github.com/skip2/go-qrcode"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
	"orgtrack/internal/pkg/errs"
)

// qrImageSize is the side length of the generated PNG in pixels.
const qrImageSize = 256

// CredentialIssuer is a domain service that mints the single-use QR
// credential handed to a carrier when a partition is assigned. The token is
// an opaque random identifier; the PNG encodes only the token, never any
// shipment data.
//
// Example usage:
//
//	issuer, _ := services.NewCredentialIssuer(48 * time.Hour)
//	credential, err := issuer.Issue(assignmentID, time.Now().UTC())
//	if err != nil {
//	    return err
//	}
//	// credential.Token() is what the scanner submits back;
//	// credential.ImageBase64() is the PNG shown to the carrier.
type CredentialIssuer struct {
	ttl time.Duration
}

// NewCredentialIssuer creates an issuer whose credentials expire ttl after
// issuance.
func NewCredentialIssuer(ttl time.Duration) (CredentialIssuer, error) {
	if ttl <= 0 {
		return CredentialIssuer{}, errs.NewValueIsRequiredError("ttl")
	}

	return CredentialIssuer{ttl: ttl}, nil
}

// Issue mints a fresh credential for the given assignment.
func (i CredentialIssuer) Issue(assignmentID kernel.UUID, now time.Time) (*shipment.QRCredential, error) {
	if err := assignmentID.Validate(); err != nil {
		return nil, err
	}

	token := kernel.NewUUID().String()

	png, err := qrcode.Encode(token, qrcode.Medium, qrImageSize)
	if err != nil {
		return nil, err
	}

	return shipment.NewQRCredential(
		kernel.NewUUID(),
		assignmentID,
		token,
		base64.StdEncoding.EncodeToString(png),
		now,
		now.Add(i.ttl),
	)
}

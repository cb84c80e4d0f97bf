package shipment_test

import (
	"testing"
	"time"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
	"orgtrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPreTripChecklist(t *testing.T) {
	t.Run("should create checklist with mixed flags", func(t *testing.T) {
		conditions := shipment.PreTripConditions{
			Lights: true, Brakes: true, Tires: false, Mirrors: true,
			FluidLevels: true, Horn: true, Seatbelts: true, Documents: true,
			CargoSecured: true, EmergencyKit: false,
		}
		submittedAt := time.Now().UTC()

		checklist, err := shipment.NewPreTripChecklist(
			kernel.NewUUID(), kernel.NewUUID(), conditions, "rear left tire worn", submittedAt)

		require.NoError(t, err)
		assert.Equal(t, conditions, checklist.Conditions())
		assert.Equal(t, "rear left tire worn", checklist.Notes())
		assert.Equal(t, submittedAt, checklist.SubmittedAt())
	})

	t.Run("should return error when submittedAt is zero", func(t *testing.T) {
		_, err := shipment.NewPreTripChecklist(
			kernel.NewUUID(), kernel.NewUUID(), shipment.PreTripConditions{}, "", time.Time{})

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should return error when ids are not constructed", func(t *testing.T) {
		_, err := shipment.NewPreTripChecklist(
			kernel.UUID{}, kernel.NewUUID(), shipment.PreTripConditions{}, "", time.Now().UTC())

		require.Error(t, err)
	})
}

func TestNewPostTripChecklist(t *testing.T) {
	t.Run("should create incident report", func(t *testing.T) {
		incidents := shipment.PostTripIncidents{Delays: true, WeatherIssues: true}

		checklist, err := shipment.NewPostTripChecklist(
			kernel.NewUUID(), kernel.NewUUID(), incidents, "fog on the pass", time.Now().UTC())

		require.NoError(t, err)
		assert.Equal(t, incidents, checklist.Incidents())
		assert.Equal(t, "fog on the pass", checklist.Description())
	})

	t.Run("should return error when submittedAt is zero", func(t *testing.T) {
		_, err := shipment.NewPostTripChecklist(
			kernel.NewUUID(), kernel.NewUUID(), shipment.PostTripIncidents{}, "", time.Time{})

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewSignature(t *testing.T) {
	t.Run("should create signature", func(t *testing.T) {
		signedAt := time.Now().UTC()

		signature, err := shipment.NewSignature(
			kernel.NewUUID(), kernel.NewUUID(), shipment.SignatureRecipient, "iVBORw0KGgo=", signedAt)

		require.NoError(t, err)
		assert.Equal(t, shipment.SignatureRecipient, signature.Kind())
		assert.Equal(t, "iVBORw0KGgo=", signature.ImageBase64())
		assert.Equal(t, signedAt, signature.SignedAt())
	})

	t.Run("should return error when image is empty", func(t *testing.T) {
		_, err := shipment.NewSignature(
			kernel.NewUUID(), kernel.NewUUID(), shipment.SignatureCarrier, "", time.Now().UTC())

		assert.ErrorIs(t, err, shipment.ErrSignatureImageIsRequired)
	})

	t.Run("should return error when kind is unknown", func(t *testing.T) {
		_, err := shipment.NewSignature(
			kernel.NewUUID(), kernel.NewUUID(), shipment.SignatureKindUnknown, "iVBORw0KGgo=", time.Now().UTC())

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestSignatureKindFromString(t *testing.T) {
	recipient, err := shipment.SignatureKindFromString("Recipient")
	require.NoError(t, err)
	assert.Equal(t, shipment.SignatureRecipient, recipient)

	carrier, err := shipment.SignatureKindFromString("Carrier")
	require.NoError(t, err)
	assert.Equal(t, shipment.SignatureCarrier, carrier)

	_, err = shipment.SignatureKindFromString("Witness")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestQRCredential(t *testing.T) {
	issuedAt := time.Now().UTC()
	expiresAt := issuedAt.Add(24 * time.Hour)

	newCredential := func(t *testing.T) *shipment.QRCredential {
		t.Helper()
		credential, err := shipment.NewQRCredential(
			kernel.NewUUID(), kernel.NewUUID(), "tok-9f2c", "iVBORw0KGgo=", issuedAt, expiresAt)
		require.NoError(t, err)
		return credential
	}

	t.Run("should issue unconsumed credential", func(t *testing.T) {
		credential := newCredential(t)

		assert.False(t, credential.IsConsumed())
		assert.Equal(t, "tok-9f2c", credential.Token())
		assert.False(t, credential.IsExpired(issuedAt))
		assert.True(t, credential.IsExpired(expiresAt))
	})

	t.Run("should return error when token is empty", func(t *testing.T) {
		_, err := shipment.NewQRCredential(
			kernel.NewUUID(), kernel.NewUUID(), "", "img", issuedAt, expiresAt)

		assert.ErrorIs(t, err, shipment.ErrQRTokenIsRequired)
	})

	t.Run("should return error when expiry is not after issue", func(t *testing.T) {
		_, err := shipment.NewQRCredential(
			kernel.NewUUID(), kernel.NewUUID(), "tok", "img", issuedAt, issuedAt)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should consume exactly once", func(t *testing.T) {
		credential := newCredential(t)

		require.NoError(t, credential.Consume(issuedAt.Add(time.Hour)))
		assert.True(t, credential.IsConsumed())

		err := credential.Consume(issuedAt.Add(2 * time.Hour))
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should not consume expired credential", func(t *testing.T) {
		credential := newCredential(t)

		err := credential.Consume(expiresAt.Add(time.Minute))

		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.False(t, credential.IsConsumed())
	})

	t.Run("should restore consumed credential", func(t *testing.T) {
		credential, err := shipment.RestoreQRCredential(
			kernel.NewUUID(), kernel.NewUUID(), "tok", "img", true, issuedAt, expiresAt)

		require.NoError(t, err)
		assert.True(t, credential.IsConsumed())
	})
}

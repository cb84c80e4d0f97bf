package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/errs"
)

// GetCarrierQueryHandler retrieves one carrier with direct SQL, joining
// the account row for the display name.
type GetCarrierQueryHandler struct {
	db *gorm.DB
}

// NewGetCarrierQueryHandler creates a handler for carrier detail queries.
func NewGetCarrierQueryHandler(db *gorm.DB) GetCarrierQueryHandler {
	return GetCarrierQueryHandler{db: db}
}

// Handle retrieves the carrier or ObjectNotFound when no row matches.
func (h GetCarrierQueryHandler) Handle(
	ctx context.Context,
	query GetCarrierQuery,
) (GetAllCarriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllCarriersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.user_id,
			u.first_name,
			u.last_name,
			c.document_id,
			c.phone,
			c.availability
		FROM carriers c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = ?
	`, query.CarrierID().Bytes()).Rows()
	if err != nil {
		return GetAllCarriersQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetAllCarriersQueryResponse{}, err
		}
		return GetAllCarriersQueryResponse{}, errs.NewObjectNotFoundError("carrierID", query.CarrierID())
	}

	var carrier GetAllCarriersQueryResponse
	var id, userID uuid.UUID
	var availability int

	err = rows.Scan(
		&id,
		&userID,
		&carrier.FirstName,
		&carrier.LastName,
		&carrier.DocumentID,
		&carrier.Phone,
		&availability,
	)
	if err != nil {
		return GetAllCarriersQueryResponse{}, err
	}

	carrierID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetAllCarriersQueryResponse{}, err
	}
	carrier.ID = carrierID

	accountID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return GetAllCarriersQueryResponse{}, err
	}
	carrier.UserID = accountID

	carrier.Availability = kernel.Availability(availability)
	return carrier, nil
}

package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"orgtrack/internal/core/domain/model/kernel"
)

// GetAllCarriersQueryHandler retrieves all carriers with direct SQL,
// joining the account row for the display name.
type GetAllCarriersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCarriersQueryHandler creates a handler for carrier listing
// queries.
func NewGetAllCarriersQueryHandler(db *gorm.DB) GetAllCarriersQueryHandler {
	return GetAllCarriersQueryHandler{db: db}
}

// Handle executes the query to retrieve all carriers, sorted by last name.
func (h GetAllCarriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCarriersQuery,
) ([]GetAllCarriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	carriers := make([]GetAllCarriersQueryResponse, 0)

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
		ORDER BY u.last_name, u.first_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
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
			return nil, err
		}

		carrierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		carrier.ID = carrierID

		accountID, idErr := kernel.UUIDFromBytes(userID[:])
		if idErr != nil {
			return nil, idErr
		}
		carrier.UserID = accountID

		carrier.Availability = kernel.Availability(availability)
		carriers = append(carriers, carrier)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return carriers, nil
}

package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"orgtrack/internal/core/domain/model/kernel"
)

// GetAllTransportTypesQueryHandler retrieves the transport type catalog
// with direct SQL.
type GetAllTransportTypesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllTransportTypesQueryHandler creates a handler for catalog
// queries.
func NewGetAllTransportTypesQueryHandler(db *gorm.DB) GetAllTransportTypesQueryHandler {
	return GetAllTransportTypesQueryHandler{db: db}
}

// Handle executes the query to retrieve all transport types, sorted by name.
func (h GetAllTransportTypesQueryHandler) Handle(
	ctx context.Context,
	query GetAllTransportTypesQuery,
) ([]GetAllTransportTypesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	types := make([]GetAllTransportTypesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description
		FROM transport_types
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var transportType GetAllTransportTypesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&transportType.Name,
			&transportType.Description,
		)
		if err != nil {
			return nil, err
		}

		typeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		transportType.ID = typeID

		types = append(types, transportType)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return types, nil
}

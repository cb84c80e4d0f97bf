package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"orgtrack/internal/core/domain/model/kernel"
)

// GetAllVehiclesQueryHandler retrieves the vehicle fleet with direct SQL.
type GetAllVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllVehiclesQueryHandler creates a handler for fleet listing
// queries.
func NewGetAllVehiclesQueryHandler(db *gorm.DB) GetAllVehiclesQueryHandler {
	return GetAllVehiclesQueryHandler{db: db}
}

// Handle executes the query to retrieve all vehicles, sorted by plate.
func (h GetAllVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetAllVehiclesQuery,
) ([]GetAllVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles := make([]GetAllVehiclesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			plate,
			capacity,
			availability
		FROM vehicles
		ORDER BY plate
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var vehicle GetAllVehiclesQueryResponse
		var id uuid.UUID
		var availability int

		err = rows.Scan(
			&id,
			&vehicle.Kind,
			&vehicle.Plate,
			&vehicle.Capacity,
			&availability,
		)
		if err != nil {
			return nil, err
		}

		vehicleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		vehicle.ID = vehicleID

		vehicle.Availability = kernel.Availability(availability)
		vehicles = append(vehicles, vehicle)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}

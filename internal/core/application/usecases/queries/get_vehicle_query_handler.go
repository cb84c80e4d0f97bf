package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/errs"
)

// GetVehicleQueryHandler retrieves one vehicle with direct SQL.
type GetVehicleQueryHandler struct {
	db *gorm.DB
}

// NewGetVehicleQueryHandler creates a handler for vehicle detail queries.
func NewGetVehicleQueryHandler(db *gorm.DB) GetVehicleQueryHandler {
	return GetVehicleQueryHandler{db: db}
}

// Handle retrieves the vehicle or ObjectNotFound when no row matches.
func (h GetVehicleQueryHandler) Handle(
	ctx context.Context,
	query GetVehicleQuery,
) (GetAllVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllVehiclesQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			plate,
			capacity,
			availability
		FROM vehicles
		WHERE id = ?
	`, query.VehicleID().Bytes()).Rows()
	if err != nil {
		return GetAllVehiclesQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetAllVehiclesQueryResponse{}, err
		}
		return GetAllVehiclesQueryResponse{}, errs.NewObjectNotFoundError("vehicleID", query.VehicleID())
	}

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
		return GetAllVehiclesQueryResponse{}, err
	}

	vehicleID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetAllVehiclesQueryResponse{}, err
	}
	vehicle.ID = vehicleID

	vehicle.Availability = kernel.Availability(availability)
	return vehicle, nil
}

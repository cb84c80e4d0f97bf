// Package vehiclerepo provides data transfer objects and mapping functions
// for vehicle persistence. Availability flips mirror carrierrepo.
package vehiclerepo

import (
	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VehicleDTO represents the database structure for persisting vehicle aggregates.
type VehicleDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Kind         string          `gorm:"type:varchar(64);not null"`
	Plate        string          `gorm:"type:varchar(16);not null;uniqueIndex"`
	Capacity     decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	Availability int             `gorm:"type:int;not null;index"`
}

// TableName overrides GORM's default naming to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a vehicle aggregate to its database representation.
func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:           aggregate.ID().Bytes(),
		Kind:         aggregate.Kind(),
		Plate:        aggregate.Plate(),
		Capacity:     aggregate.Capacity(),
		Availability: int(aggregate.Availability()),
	}
}

// toDomain converts a database DTO to a vehicle aggregate.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(id, dto.Kind, dto.Plate, dto.Capacity, kernel.Availability(dto.Availability))
}

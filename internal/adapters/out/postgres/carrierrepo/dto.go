// Package carrierrepo provides data transfer objects and mapping functions
// for carrier persistence, including the compare-and-swap availability flips
// of the resource ledger.
package carrierrepo

import (
	"orgtrack/internal/core/domain/model/carrier"
	"orgtrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CarrierDTO represents the database structure for persisting carrier aggregates.
type CarrierDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	DocumentID   string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Phone        string    `gorm:"type:varchar(32);not null"`
	Availability int       `gorm:"type:int;not null;index"`
}

// TableName overrides GORM's default naming to use "carriers".
func (CarrierDTO) TableName() string {
	return "carriers"
}

// fromDomain converts a carrier aggregate to its database representation.
func fromDomain(aggregate *carrier.Carrier) CarrierDTO {
	return CarrierDTO{
		ID:           aggregate.ID().Bytes(),
		UserID:       aggregate.UserID().Bytes(),
		DocumentID:   aggregate.DocumentID(),
		Phone:        aggregate.Phone(),
		Availability: int(aggregate.Availability()),
	}
}

// toDomain converts a database DTO to a carrier aggregate.
func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return carrier.RestoreCarrier(id, userID, dto.DocumentID, dto.Phone, kernel.Availability(dto.Availability))
}

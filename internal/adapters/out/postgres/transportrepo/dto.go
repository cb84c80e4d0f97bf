// Package transportrepo provides data transfer objects and mapping functions
// for the transport type catalog.
package transportrepo

import (
	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/transport"

	"github.com/google/uuid"
)

// TransportTypeDTO represents the database structure for catalog entries.
type TransportTypeDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description string    `gorm:"type:text"`
}

// TableName overrides GORM's default naming to use "transport_types".
func (TransportTypeDTO) TableName() string {
	return "transport_types"
}

// fromDomain converts a transport type to its database representation.
func fromDomain(entity *transport.TransportType) TransportTypeDTO {
	return TransportTypeDTO{
		ID:          entity.ID().Bytes(),
		Name:        entity.Name(),
		Description: entity.Description(),
	}
}

// toDomain converts a database DTO to a transport type.
func toDomain(dto TransportTypeDTO) (*transport.TransportType, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return transport.RestoreTransportType(id, dto.Name, dto.Description)
}

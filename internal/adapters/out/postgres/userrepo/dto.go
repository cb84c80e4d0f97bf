// Package userrepo provides data transfer objects and mapping functions for
// user account persistence.
package userrepo

import (
	"orgtrack/internal/core/domain/model/account"
	"orgtrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user accounts.
// The email column carries the uniqueness the registration flow relies on.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName    string    `gorm:"type:varchar(255);not null"`
	LastName     string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         int       `gorm:"type:int;not null;index"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user aggregate to its database representation.
func fromDomain(aggregate *account.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		FirstName:    aggregate.FirstName(),
		LastName:     aggregate.LastName(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         int(aggregate.Role()),
	}
}

// toDomain converts a database DTO to a user aggregate.
func toDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreUser(id, dto.FirstName, dto.LastName, dto.Email, dto.PasswordHash, account.Role(dto.Role))
}

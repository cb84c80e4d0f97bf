// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. The shipment aggregate is stored across three
// tables (shipments, assignments, cargo) and always loaded as a whole.
package shipmentrepo

import (
	"time"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The derived status is stored so listings never re-aggregate.
type ShipmentDTO struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClientID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	LocationID           string          `gorm:"type:varchar(64);not null"`
	TransportTypeID      uuid.UUID       `gorm:"type:uuid;not null"`
	PickupAt             time.Time       `gorm:"not null"`
	DeliverBy            time.Time       `gorm:"not null"`
	PickupInstructions   string          `gorm:"type:text"`
	DeliveryInstructions string          `gorm:"type:text"`
	Status               int             `gorm:"type:int;not null;index"`
	CreatedAt            time.Time       `gorm:"not null"`
	Assignments          []AssignmentDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// AssignmentDTO represents one partition of a shipment. Carrier and vehicle
// columns are indexed for the carrier workload queries.
type AssignmentDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ShipmentID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	CarrierID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	VehicleID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status      int        `gorm:"type:int;not null"`
	AssignedAt  time.Time  `gorm:"not null"`
	StartedAt   *time.Time `gorm:""`
	CompletedAt *time.Time `gorm:""`
	Cargo       []CargoDTO `gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "assignments".
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// CargoDTO represents a single cargo record joined to exactly one assignment.
type CargoDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AssignmentID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Kind         string          `gorm:"type:varchar(255);not null"`
	Variety      string          `gorm:"type:varchar(255)"`
	Quantity     int             `gorm:"type:int;not null"`
	Packaging    string          `gorm:"type:varchar(255);not null"`
	Weight       decimal.Decimal `gorm:"type:decimal(12,3);not null"`
}

// TableName overrides GORM's default naming to use "cargo".
func (CargoDTO) TableName() string {
	return "cargo"
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	assignments := make([]AssignmentDTO, 0, len(aggregate.Assignments()))
	for _, a := range aggregate.Assignments() {
		assignments = append(assignments, assignmentFromDomain(a))
	}

	schedule := aggregate.Schedule()
	return ShipmentDTO{
		ID:                   aggregate.ID().Bytes(),
		ClientID:             aggregate.ClientID().Bytes(),
		LocationID:           aggregate.LocationID(),
		TransportTypeID:      aggregate.TransportTypeID().Bytes(),
		PickupAt:             schedule.PickupAt(),
		DeliverBy:            schedule.DeliverBy(),
		PickupInstructions:   schedule.PickupInstructions(),
		DeliveryInstructions: schedule.DeliveryInstructions(),
		Status:               int(aggregate.Status()),
		CreatedAt:            aggregate.CreatedAt(),
		Assignments:          assignments,
	}
}

func assignmentFromDomain(a *shipment.Assignment) AssignmentDTO {
	cargo := make([]CargoDTO, 0, len(a.Cargo()))
	for _, c := range a.Cargo() {
		cargo = append(cargo, CargoDTO{
			ID:           c.ID().Bytes(),
			AssignmentID: a.ID().Bytes(),
			Kind:         c.Kind(),
			Variety:      c.Variety(),
			Quantity:     c.Quantity(),
			Packaging:    c.Packaging(),
			Weight:       c.Weight(),
		})
	}

	return AssignmentDTO{
		ID:          a.ID().Bytes(),
		ShipmentID:  a.ShipmentID().Bytes(),
		CarrierID:   a.CarrierID().Bytes(),
		VehicleID:   a.VehicleID().Bytes(),
		Status:      int(a.Status()),
		AssignedAt:  a.AssignedAt(),
		StartedAt:   a.StartedAt(),
		CompletedAt: a.CompletedAt(),
		Cargo:       cargo,
	}
}

// toDomain converts a database DTO to a shipment aggregate, reconstructing
// all assignments and their cargo through the Restore constructors.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	transportTypeID, err := kernel.UUIDFromBytes(dto.TransportTypeID[:])
	if err != nil {
		return nil, err
	}
	schedule, err := kernel.NewSchedule(dto.PickupAt, dto.DeliverBy, dto.PickupInstructions, dto.DeliveryInstructions)
	if err != nil {
		return nil, err
	}

	assignments := make([]*shipment.Assignment, 0, len(dto.Assignments))
	for _, aDto := range dto.Assignments {
		a, aErr := assignmentToDomain(aDto)
		if aErr != nil {
			return nil, aErr
		}
		assignments = append(assignments, a)
	}

	return shipment.RestoreShipment(
		id, clientID, dto.LocationID, transportTypeID,
		schedule, shipment.Status(dto.Status), dto.CreatedAt, assignments,
	)
}

func assignmentToDomain(dto AssignmentDTO) (*shipment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}
	carrierID, err := kernel.UUIDFromBytes(dto.CarrierID[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	cargo := make([]shipment.Cargo, 0, len(dto.Cargo))
	for _, cDto := range dto.Cargo {
		c, cErr := cargoToDomain(cDto)
		if cErr != nil {
			return nil, cErr
		}
		cargo = append(cargo, c)
	}

	return shipment.RestoreAssignment(
		id, shipmentID, carrierID, vehicleID, cargo,
		shipment.AssignmentStatus(dto.Status),
		dto.AssignedAt, dto.StartedAt, dto.CompletedAt,
	)
}

func cargoToDomain(dto CargoDTO) (shipment.Cargo, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return shipment.Cargo{}, err
	}

	return shipment.NewCargo(id, dto.Kind, dto.Variety, dto.Quantity, dto.Packaging, dto.Weight)
}

// Package checklistrepo provides data transfer objects and mapping functions
// for pre-trip and post-trip checklists. The unique index on assignment_id
// in both tables is what makes checklist submission write-once: the race
// between two submitters is settled by the database, not by a prior read.
package checklistrepo

import (
	"time"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// PreTripChecklistDTO represents the database structure for pre-trip checklists.
type PreTripChecklistDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	AssignmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Lights       bool      `gorm:"not null"`
	Brakes       bool      `gorm:"not null"`
	Tires        bool      `gorm:"not null"`
	Mirrors      bool      `gorm:"not null"`
	FluidLevels  bool      `gorm:"not null"`
	Horn         bool      `gorm:"not null"`
	Seatbelts    bool      `gorm:"not null"`
	Documents    bool      `gorm:"not null"`
	CargoSecured bool      `gorm:"not null"`
	EmergencyKit bool      `gorm:"not null"`
	Notes        string    `gorm:"type:text"`
	SubmittedAt  time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "pre_trip_checklists".
func (PreTripChecklistDTO) TableName() string {
	return "pre_trip_checklists"
}

// PostTripChecklistDTO represents the database structure for post-trip checklists.
type PostTripChecklistDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	AssignmentID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Delays              bool      `gorm:"not null"`
	CargoDamage         bool      `gorm:"not null"`
	VehicleDamage       bool      `gorm:"not null"`
	RouteDeviation      bool      `gorm:"not null"`
	Accident            bool      `gorm:"not null"`
	WeatherIssues       bool      `gorm:"not null"`
	MechanicalFailure   bool      `gorm:"not null"`
	DocumentationIssues bool      `gorm:"not null"`
	ClientComplaint     bool      `gorm:"not null"`
	Other               bool      `gorm:"not null"`
	Description         string    `gorm:"type:text"`
	SubmittedAt         time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "post_trip_checklists".
func (PostTripChecklistDTO) TableName() string {
	return "post_trip_checklists"
}

func preTripFromDomain(c *shipment.PreTripChecklist) PreTripChecklistDTO {
	conditions := c.Conditions()
	return PreTripChecklistDTO{
		ID:           c.ID().Bytes(),
		AssignmentID: c.AssignmentID().Bytes(),
		Lights:       conditions.Lights,
		Brakes:       conditions.Brakes,
		Tires:        conditions.Tires,
		Mirrors:      conditions.Mirrors,
		FluidLevels:  conditions.FluidLevels,
		Horn:         conditions.Horn,
		Seatbelts:    conditions.Seatbelts,
		Documents:    conditions.Documents,
		CargoSecured: conditions.CargoSecured,
		EmergencyKit: conditions.EmergencyKit,
		Notes:        c.Notes(),
		SubmittedAt:  c.SubmittedAt(),
	}
}

func preTripToDomain(dto PreTripChecklistDTO) (*shipment.PreTripChecklist, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	assignmentID, err := kernel.UUIDFromBytes(dto.AssignmentID[:])
	if err != nil {
		return nil, err
	}

	conditions := shipment.PreTripConditions{
		Lights:       dto.Lights,
		Brakes:       dto.Brakes,
		Tires:        dto.Tires,
		Mirrors:      dto.Mirrors,
		FluidLevels:  dto.FluidLevels,
		Horn:         dto.Horn,
		Seatbelts:    dto.Seatbelts,
		Documents:    dto.Documents,
		CargoSecured: dto.CargoSecured,
		EmergencyKit: dto.EmergencyKit,
	}
	return shipment.NewPreTripChecklist(id, assignmentID, conditions, dto.Notes, dto.SubmittedAt)
}

func postTripFromDomain(c *shipment.PostTripChecklist) PostTripChecklistDTO {
	incidents := c.Incidents()
	return PostTripChecklistDTO{
		ID:                  c.ID().Bytes(),
		AssignmentID:        c.AssignmentID().Bytes(),
		Delays:              incidents.Delays,
		CargoDamage:         incidents.CargoDamage,
		VehicleDamage:       incidents.VehicleDamage,
		RouteDeviation:      incidents.RouteDeviation,
		Accident:            incidents.Accident,
		WeatherIssues:       incidents.WeatherIssues,
		MechanicalFailure:   incidents.MechanicalFailure,
		DocumentationIssues: incidents.DocumentationIssues,
		ClientComplaint:     incidents.ClientComplaint,
		Other:               incidents.Other,
		Description:         c.Description(),
		SubmittedAt:         c.SubmittedAt(),
	}
}

func postTripToDomain(dto PostTripChecklistDTO) (*shipment.PostTripChecklist, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	assignmentID, err := kernel.UUIDFromBytes(dto.AssignmentID[:])
	if err != nil {
		return nil, err
	}

	incidents := shipment.PostTripIncidents{
		Delays:              dto.Delays,
		CargoDamage:         dto.CargoDamage,
		VehicleDamage:       dto.VehicleDamage,
		RouteDeviation:      dto.RouteDeviation,
		Accident:            dto.Accident,
		WeatherIssues:       dto.WeatherIssues,
		MechanicalFailure:   dto.MechanicalFailure,
		DocumentationIssues: dto.DocumentationIssues,
		ClientComplaint:     dto.ClientComplaint,
		Other:               dto.Other,
	}
	return shipment.NewPostTripChecklist(id, assignmentID, incidents, dto.Description, dto.SubmittedAt)
}

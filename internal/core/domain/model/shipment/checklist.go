package shipment

import (
	"errors"
	"time"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/errs"
)

// PreTripConditions are the ten vehicle condition checks a carrier confirms
// before starting a trip. All ten are recorded as answered; a "false" means
// the check failed, not that it was skipped.
type PreTripConditions struct {
	Lights       bool
	Brakes       bool
	Tires        bool
	Mirrors      bool
	FluidLevels  bool
	Horn         bool
	Seatbelts    bool
	Documents    bool
	CargoSecured bool
	EmergencyKit bool
}

// PostTripIncidents are the ten incident flags a carrier reports after a
// trip. A "true" means the incident occurred.
type PostTripIncidents struct {
	Delays              bool
	CargoDamage         bool
	VehicleDamage       bool
	RouteDeviation      bool
	Accident            bool
	WeatherIssues       bool
	MechanicalFailure   bool
	DocumentationIssues bool
	ClientComplaint     bool
	Other               bool
}

// PreTripChecklist is the condition report submitted once per assignment,
// while the assignment is still Pending. It gates the start of the trip: an
// assignment without one cannot move to InProgress. There is exactly one per
// assignment, backed by a unique index in the store.
type PreTripChecklist struct {
	id           kernel.UUID
	assignmentID kernel.UUID
	conditions   PreTripConditions
	notes        string
	submittedAt  time.Time
}

// NewPreTripChecklist creates a pre-trip condition report.
func NewPreTripChecklist(id, assignmentID kernel.UUID, conditions PreTripConditions, notes string, submittedAt time.Time) (*PreTripChecklist, error) {
	if err := errors.Join(
		id.Validate(),
		assignmentID.Validate(),
	); err != nil {
		return nil, err
	}
	if submittedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("submittedAt")
	}

	return &PreTripChecklist{
		id:           id,
		assignmentID: assignmentID,
		conditions:   conditions,
		notes:        notes,
		submittedAt:  submittedAt,
	}, nil
}

// ID returns the checklist identifier.
func (c *PreTripChecklist) ID() kernel.UUID {
	return c.id
}

// AssignmentID returns the assignment this checklist belongs to.
func (c *PreTripChecklist) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// Conditions returns the recorded condition flags.
func (c *PreTripChecklist) Conditions() PreTripConditions {
	return c.conditions
}

// Notes returns the carrier's free-text notes. May be empty.
func (c *PreTripChecklist) Notes() string {
	return c.notes
}

// SubmittedAt returns when the checklist was submitted.
func (c *PreTripChecklist) SubmittedAt() time.Time {
	return c.submittedAt
}

// PostTripChecklist is the incident report submitted once per assignment, any
// time after the trip has started. Together with the delivery signature it
// gates finalization: an assignment without one cannot move to Delivered.
type PostTripChecklist struct {
	id           kernel.UUID
	assignmentID kernel.UUID
	incidents    PostTripIncidents
	description  string
	submittedAt  time.Time
}

// NewPostTripChecklist creates a post-trip incident report.
func NewPostTripChecklist(id, assignmentID kernel.UUID, incidents PostTripIncidents, description string, submittedAt time.Time) (*PostTripChecklist, error) {
	if err := errors.Join(
		id.Validate(),
		assignmentID.Validate(),
	); err != nil {
		return nil, err
	}
	if submittedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("submittedAt")
	}

	return &PostTripChecklist{
		id:           id,
		assignmentID: assignmentID,
		incidents:    incidents,
		description:  description,
		submittedAt:  submittedAt,
	}, nil
}

// ID returns the checklist identifier.
func (c *PostTripChecklist) ID() kernel.UUID {
	return c.id
}

// AssignmentID returns the assignment this checklist belongs to.
func (c *PostTripChecklist) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// Incidents returns the recorded incident flags.
func (c *PostTripChecklist) Incidents() PostTripIncidents {
	return c.incidents
}

// Description returns the carrier's free-text incident description.
func (c *PostTripChecklist) Description() string {
	return c.description
}

// SubmittedAt returns when the checklist was submitted.
func (c *PostTripChecklist) SubmittedAt() time.Time {
	return c.submittedAt
}

package commands

import (
	"errors"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
	"orgtrack/internal/pkg/guard"
)

var ErrSubmitPostTripChecklistCommandIsNotConstructed = errors.New(
	"SubmitPostTripChecklistCommand must be created via NewSubmitPostTripChecklistCommand constructor",
)

// SubmitPostTripChecklistCommand represents a carrier reporting trip
// incidents after driving.
type SubmitPostTripChecklistCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	carrierID    kernel.UUID
	incidents    shipment.PostTripIncidents
	description  string

	guard guard.ConstructorGuard
}

// NewSubmitPostTripChecklistCommand creates a command to submit a post-trip
// incident report.
func NewSubmitPostTripChecklistCommand(
	assignmentID, carrierID kernel.UUID,
	incidents shipment.PostTripIncidents,
	description string,
) (SubmitPostTripChecklistCommand, error) {
	checklistCommand := SubmitPostTripChecklistCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checklistCommand.setAssignmentID(assignmentID),
		checklistCommand.setCarrierID(carrierID),
	); err != nil {
		return SubmitPostTripChecklistCommand{}, err
	}

	checklistCommand.incidents = incidents
	checklistCommand.description = description
	return checklistCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitPostTripChecklistCommand) Validate() error {
	return c.guard.Validate(ErrSubmitPostTripChecklistCommandIsNotConstructed)
}

// AssignmentID returns the assignment the report belongs to.
func (c SubmitPostTripChecklistCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// CarrierID returns the acting carrier.
func (c SubmitPostTripChecklistCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Incidents returns the reported incident flags.
func (c SubmitPostTripChecklistCommand) Incidents() shipment.PostTripIncidents {
	return c.incidents
}

// Description returns the carrier's free-form incident description.
func (c SubmitPostTripChecklistCommand) Description() string {
	return c.description
}

func (c *SubmitPostTripChecklistCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *SubmitPostTripChecklistCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}

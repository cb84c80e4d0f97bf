package commands

import (
	"errors"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
	"orgtrack/internal/pkg/guard"
)

var ErrSubmitPreTripChecklistCommandIsNotConstructed = errors.New(
	"SubmitPreTripChecklistCommand must be created via NewSubmitPreTripChecklistCommand constructor",
)

// SubmitPreTripChecklistCommand represents a carrier submitting the vehicle
// inspection checklist before starting a trip.
type SubmitPreTripChecklistCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	carrierID    kernel.UUID
	conditions   shipment.PreTripConditions
	notes        string

	guard guard.ConstructorGuard
}

// NewSubmitPreTripChecklistCommand creates a command to submit a pre-trip
// checklist. carrierID identifies the acting carrier; only the carrier the
// assignment belongs to may submit.
func NewSubmitPreTripChecklistCommand(
	assignmentID, carrierID kernel.UUID,
	conditions shipment.PreTripConditions,
	notes string,
) (SubmitPreTripChecklistCommand, error) {
	checklistCommand := SubmitPreTripChecklistCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checklistCommand.setAssignmentID(assignmentID),
		checklistCommand.setCarrierID(carrierID),
	); err != nil {
		return SubmitPreTripChecklistCommand{}, err
	}

	checklistCommand.conditions = conditions
	checklistCommand.notes = notes
	return checklistCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitPreTripChecklistCommand) Validate() error {
	return c.guard.Validate(ErrSubmitPreTripChecklistCommandIsNotConstructed)
}

// AssignmentID returns the assignment the checklist belongs to.
func (c SubmitPreTripChecklistCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// CarrierID returns the acting carrier.
func (c SubmitPreTripChecklistCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Conditions returns the inspected vehicle conditions.
func (c SubmitPreTripChecklistCommand) Conditions() shipment.PreTripConditions {
	return c.conditions
}

// Notes returns the carrier's free-form notes.
func (c SubmitPreTripChecklistCommand) Notes() string {
	return c.notes
}

func (c *SubmitPreTripChecklistCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *SubmitPreTripChecklistCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}

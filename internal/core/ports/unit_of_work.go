package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the relational
// store. It provides transaction control and hands out repositories bound to
// the current transaction. Client code must explicitly manage the
// transaction lifecycle.
//
// The document stores (location, signature, QR credential) are NOT part of
// the unit of work: cross-store writes are compensated by the command
// handlers, not transacted.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ShipmentRepository returns a ShipmentRepository bound to the current transaction.
	ShipmentRepository() ShipmentRepository

	// CarrierRepository returns a CarrierRepository bound to the current transaction.
	CarrierRepository() CarrierRepository

	// VehicleRepository returns a VehicleRepository bound to the current transaction.
	VehicleRepository() VehicleRepository

	// ChecklistRepository returns a ChecklistRepository bound to the current transaction.
	ChecklistRepository() ChecklistRepository

	// UserRepository returns a UserRepository bound to the current transaction.
	UserRepository() UserRepository

	// TransportTypeRepository returns a TransportTypeRepository bound to the current transaction.
	TransportTypeRepository() TransportTypeRepository
}

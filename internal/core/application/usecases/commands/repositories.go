// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"orgtrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest combination of repositories it needs;
// the GORM unit of work satisfies all of them.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// CarrierRepoFactory provides access to the carrier repository within a transaction.
	CarrierRepoFactory interface {
		CarrierRepository() ports.CarrierRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// ChecklistRepoFactory provides access to the checklist repository within a transaction.
	ChecklistRepoFactory interface {
		ChecklistRepository() ports.ChecklistRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// TransportTypeRepoFactory provides access to the transport type repository within a transaction.
	TransportTypeRepoFactory interface {
		TransportTypeRepository() ports.TransportTypeRepository
	}

	// AccountUoW manages transactions for account operations: user
	// registration and carrier onboarding, which writes the user account
	// and the carrier profile atomically.
	AccountUoW interface {
		TxManager
		UserRepoFactory
		CarrierRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// VehicleUoW manages transactions for vehicle-only operations.
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
	}

	// VehicleUoWFactory creates new vehicle unit of work instances.
	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// CatalogUoW manages transactions for transport type catalog operations.
	CatalogUoW interface {
		TxManager
		TransportTypeRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// AssignmentUoW manages transactions that touch shipments together with
	// the carrier and vehicle availability ledgers: shipment creation with
	// upfront partitions and later partition assignment.
	AssignmentUoW interface {
		TxManager
		ShipmentRepoFactory
		CarrierRepoFactory
		VehicleRepoFactory
		TransportTypeRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// ChecklistUoW manages transactions for checklist submission, which
	// reads the owning shipment and writes the checklist row.
	ChecklistUoW interface {
		TxManager
		ShipmentRepoFactory
		ChecklistRepoFactory
	}

	// ChecklistUoWFactory creates new checklist unit of work instances.
	ChecklistUoWFactory interface {
		Create() ChecklistUoW
	}

	// TripUoW manages transactions for assignment lifecycle transitions,
	// which update the shipment aggregate, check checklist gates and flip
	// the carrier and vehicle availability ledgers.
	TripUoW interface {
		TxManager
		ShipmentRepoFactory
		CarrierRepoFactory
		VehicleRepoFactory
		ChecklistRepoFactory
	}

	// TripUoWFactory creates new trip unit of work instances.
	TripUoWFactory interface {
		Create() TripUoW
	}
)

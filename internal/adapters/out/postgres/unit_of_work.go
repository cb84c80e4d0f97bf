// Package postgres provides the GORM-based Unit of Work over the relational
// store. A unit of work owns one database transaction and hands out
// repositories bound to it; the command handlers drive Begin/Commit/Rollback
// explicitly.
//
// The document stores are outside the unit of work. Writes that span both
// stores (e.g. shipment creation, which inserts a location document first)
// compensate the document write when the relational transaction fails.
package postgres

import (
	"context"

	"orgtrack/internal/adapters/out/postgres/carrierrepo"
	"orgtrack/internal/adapters/out/postgres/checklistrepo"
	"orgtrack/internal/adapters/out/postgres/shipmentrepo"
	"orgtrack/internal/adapters/out/postgres/transportrepo"
	"orgtrack/internal/adapters/out/postgres/userrepo"
	"orgtrack/internal/adapters/out/postgres/vehiclerepo"
	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection pool. Each business operation gets a fresh unit of work with its
// own transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks aggregate
// changes for the duration of a business operation. Repositories obtained
// from it execute within the active transaction, or directly against the
// pool when no transaction was begun.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Calling Begin again while a
// transaction is active is a no-op, not a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or if the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// ShipmentRepository returns a shipment repository bound to the current transaction.
func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn(), uow)
}

// CarrierRepository returns a carrier repository bound to the current transaction.
func (uow *GormUnitOfWork) CarrierRepository() ports.CarrierRepository {
	return carrierrepo.NewGormCarrierRepository(uow.conn(), uow)
}

// VehicleRepository returns a vehicle repository bound to the current transaction.
func (uow *GormUnitOfWork) VehicleRepository() ports.VehicleRepository {
	return vehiclerepo.NewGormVehicleRepository(uow.conn(), uow)
}

// ChecklistRepository returns a checklist repository bound to the current transaction.
func (uow *GormUnitOfWork) ChecklistRepository() ports.ChecklistRepository {
	return checklistrepo.NewGormChecklistRepository(uow.conn())
}

// UserRepository returns a user repository bound to the current transaction.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn())
}

// TransportTypeRepository returns a transport type repository bound to the current transaction.
func (uow *GormUnitOfWork) TransportTypeRepository() ports.TransportTypeRepository {
	return transportrepo.NewGormTransportTypeRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repository implementations call it on Add/Update; the tracked set
// is available after commit for post-transaction processing.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

package commands_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"orgtrack/internal/core/application/usecases/commands"
	"orgtrack/internal/core/domain/model/account"
	"orgtrack/internal/core/domain/model/carrier"
	"orgtrack/internal/core/domain/model/geo"
	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
	"orgtrack/internal/core/domain/model/transport"
	"orgtrack/internal/core/domain/model/vehicle"
	"orgtrack/internal/core/ports"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetByAssignmentID(ctx context.Context, assignmentID kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetAllForClient(ctx context.Context, clientID kernel.UUID) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetAll(ctx context.Context) ([]*shipment.Shipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

type MockCarrierRepository struct{ mock.Mock }

func (m *MockCarrierRepository) Add(ctx context.Context, aggregate *carrier.Carrier) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockCarrierRepository) Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carrier.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*carrier.Carrier, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carrier.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) GetAll(ctx context.Context) ([]*carrier.Carrier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*carrier.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) GetAllAvailable(ctx context.Context) ([]*carrier.Carrier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*carrier.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) Reserve(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCarrierRepository) MarkEnRoute(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCarrierRepository) Release(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetAll(ctx context.Context) ([]*vehicle.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetAllAvailable(ctx context.Context) ([]*vehicle.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Reserve(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockVehicleRepository) MarkEnRoute(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockVehicleRepository) Release(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockChecklistRepository struct{ mock.Mock }

func (m *MockChecklistRepository) AddPreTrip(ctx context.Context, checklist *shipment.PreTripChecklist) error {
	return m.Called(ctx, checklist).Error(0)
}

func (m *MockChecklistRepository) GetPreTrip(ctx context.Context, assignmentID kernel.UUID) (*shipment.PreTripChecklist, error) {
	args := m.Called(ctx, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.PreTripChecklist), args.Error(1)
}

func (m *MockChecklistRepository) HasPreTrip(ctx context.Context, assignmentID kernel.UUID) (bool, error) {
	args := m.Called(ctx, assignmentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockChecklistRepository) AddPostTrip(ctx context.Context, checklist *shipment.PostTripChecklist) error {
	return m.Called(ctx, checklist).Error(0)
}

func (m *MockChecklistRepository) GetPostTrip(ctx context.Context, assignmentID kernel.UUID) (*shipment.PostTripChecklist, error) {
	args := m.Called(ctx, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.PostTripChecklist), args.Error(1)
}

func (m *MockChecklistRepository) HasPostTrip(ctx context.Context, assignmentID kernel.UUID) (bool, error) {
	args := m.Called(ctx, assignmentID)
	return args.Bool(0), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, aggregate *account.User) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*account.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*account.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

func (m *MockUserRepository) GetAllByRole(ctx context.Context, role account.Role) ([]*account.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*account.User), args.Error(1)
}

type MockTransportTypeRepository struct{ mock.Mock }

func (m *MockTransportTypeRepository) Add(ctx context.Context, entity *transport.TransportType) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *MockTransportTypeRepository) Get(ctx context.Context, id kernel.UUID) (*transport.TransportType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transport.TransportType), args.Error(1)
}

func (m *MockTransportTypeRepository) GetAll(ctx context.Context) ([]*transport.TransportType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transport.TransportType), args.Error(1)
}

type MockLocationStore struct{ mock.Mock }

func (m *MockLocationStore) Add(ctx context.Context, location geo.Location) (string, error) {
	args := m.Called(ctx, location)
	return args.String(0), args.Error(1)
}

func (m *MockLocationStore) Get(ctx context.Context, id string) (geo.Location, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(geo.Location), args.Error(1)
}

func (m *MockLocationStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockSignatureStore struct{ mock.Mock }

func (m *MockSignatureStore) Add(ctx context.Context, signature *shipment.Signature) error {
	return m.Called(ctx, signature).Error(0)
}

func (m *MockSignatureStore) Get(
	ctx context.Context,
	assignmentID kernel.UUID,
	kind shipment.SignatureKind,
) (*shipment.Signature, error) {
	args := m.Called(ctx, assignmentID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Signature), args.Error(1)
}

func (m *MockSignatureStore) Has(
	ctx context.Context,
	assignmentID kernel.UUID,
	kind shipment.SignatureKind,
) (bool, error) {
	args := m.Called(ctx, assignmentID, kind)
	return args.Bool(0), args.Error(1)
}

type MockQRCredentialStore struct{ mock.Mock }

func (m *MockQRCredentialStore) Add(ctx context.Context, credential *shipment.QRCredential) error {
	return m.Called(ctx, credential).Error(0)
}

func (m *MockQRCredentialStore) Get(ctx context.Context, assignmentID kernel.UUID) (*shipment.QRCredential, error) {
	args := m.Called(ctx, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.QRCredential), args.Error(1)
}

func (m *MockQRCredentialStore) Consume(
	ctx context.Context,
	assignmentID kernel.UUID,
	token string,
	now time.Time,
) (*shipment.QRCredential, error) {
	args := m.Called(ctx, assignmentID, token, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.QRCredential), args.Error(1)
}

func (m *MockQRCredentialStore) ExpireStale(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type MockRouteService struct{ mock.Mock }

func (m *MockRouteService) GetRoute(ctx context.Context, origin, destination geo.Point) (geo.Route, error) {
	args := m.Called(ctx, origin, destination)
	return args.Get(0).(geo.Route), args.Error(1)
}

// txMock carries the shared transaction lifecycle expectations of the unit
// of work mocks.
type txMock struct{ mock.Mock }

func (m *txMock) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *txMock) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *txMock) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockAccountUoW struct{ txMock }

func (m *MockAccountUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockAccountUoW) CarrierRepository() ports.CarrierRepository {
	return m.Called().Get(0).(ports.CarrierRepository)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	return m.Called().Get(0).(commands.AccountUoW)
}

type MockVehicleUoW struct{ txMock }

func (m *MockVehicleUoW) VehicleRepository() ports.VehicleRepository {
	return m.Called().Get(0).(ports.VehicleRepository)
}

type MockVehicleUoWFactory struct{ mock.Mock }

func (m *MockVehicleUoWFactory) Create() commands.VehicleUoW {
	return m.Called().Get(0).(commands.VehicleUoW)
}

type MockCatalogUoW struct{ txMock }

func (m *MockCatalogUoW) TransportTypeRepository() ports.TransportTypeRepository {
	return m.Called().Get(0).(ports.TransportTypeRepository)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	return m.Called().Get(0).(commands.CatalogUoW)
}

type MockAssignmentUoW struct{ txMock }

func (m *MockAssignmentUoW) ShipmentRepository() ports.ShipmentRepository {
	return m.Called().Get(0).(ports.ShipmentRepository)
}

func (m *MockAssignmentUoW) CarrierRepository() ports.CarrierRepository {
	return m.Called().Get(0).(ports.CarrierRepository)
}

func (m *MockAssignmentUoW) VehicleRepository() ports.VehicleRepository {
	return m.Called().Get(0).(ports.VehicleRepository)
}

func (m *MockAssignmentUoW) TransportTypeRepository() ports.TransportTypeRepository {
	return m.Called().Get(0).(ports.TransportTypeRepository)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return m.Called().Get(0).(commands.AssignmentUoW)
}

type MockChecklistUoW struct{ txMock }

func (m *MockChecklistUoW) ShipmentRepository() ports.ShipmentRepository {
	return m.Called().Get(0).(ports.ShipmentRepository)
}

func (m *MockChecklistUoW) ChecklistRepository() ports.ChecklistRepository {
	return m.Called().Get(0).(ports.ChecklistRepository)
}

type MockChecklistUoWFactory struct{ mock.Mock }

func (m *MockChecklistUoWFactory) Create() commands.ChecklistUoW {
	return m.Called().Get(0).(commands.ChecklistUoW)
}

type MockTripUoW struct{ txMock }

func (m *MockTripUoW) ShipmentRepository() ports.ShipmentRepository {
	return m.Called().Get(0).(ports.ShipmentRepository)
}

func (m *MockTripUoW) CarrierRepository() ports.CarrierRepository {
	return m.Called().Get(0).(ports.CarrierRepository)
}

func (m *MockTripUoW) VehicleRepository() ports.VehicleRepository {
	return m.Called().Get(0).(ports.VehicleRepository)
}

func (m *MockTripUoW) ChecklistRepository() ports.ChecklistRepository {
	return m.Called().Get(0).(ports.ChecklistRepository)
}

type MockTripUoWFactory struct{ mock.Mock }

func (m *MockTripUoWFactory) Create() commands.TripUoW {
	return m.Called().Get(0).(commands.TripUoW)
}

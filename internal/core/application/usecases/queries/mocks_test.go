package queries_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"orgtrack/internal/core/domain/model/account"
	"orgtrack/internal/core/domain/model/geo"
	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
)

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

func (m *MockShipmentRepository) GetByAssignmentID(
	ctx context.Context,
	assignmentID kernel.UUID,
) (*shipment.Shipment, error) {
	args := m.Called(ctx, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetAllForClient(
	ctx context.Context,
	clientID kernel.UUID,
) ([]*shipment.Shipment, error) {
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

type MockLocationStore struct{ mock.Mock }

func (m *MockLocationStore) Add(ctx context.Context, location geo.Location) (string, error) {
	args := m.Called(ctx, location)
	return args.String(0), args.Error(1)
}

func (m *MockLocationStore) Get(ctx context.Context, id string) (geo.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return geo.Location{}, args.Error(1)
	}
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

func (m *MockQRCredentialStore) Get(
	ctx context.Context,
	assignmentID kernel.UUID,
) (*shipment.QRCredential, error) {
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

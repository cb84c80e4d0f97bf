package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"orgtrack/internal/adapters/out/postgres/shipmentrepo"
	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/shipment"
	"orgtrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ShipmentRepositoryIntegrationTestSuite provides integration tests for
// ShipmentRepository using PostgreSQL containers, verifying that the
// aggregate round-trips with all assignments and cargo.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.AssignmentDTO{},
		&shipmentrepo.CargoDTO{},
	))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE cargo, assignments, shipments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) createTestShipment(clientID kernel.UUID) *shipment.Shipment {
	now := time.Now().UTC().Truncate(time.Microsecond)
	schedule, err := kernel.NewSchedule(now.Add(time.Hour), now.Add(24*time.Hour), "dock 3", "call on arrival")
	suite.Require().NoError(err)

	s, err := shipment.NewShipment(kernel.NewUUID(), clientID, "loc-64f1a2", kernel.NewUUID(), schedule, now)
	suite.Require().NoError(err)
	return s
}

func (suite *ShipmentRepositoryIntegrationTestSuite) addAssignment(s *shipment.Shipment) *shipment.Assignment {
	cargo, err := shipment.NewCargo(kernel.NewUUID(), "fruit", "hass", 120, "boxes", decimal.NewFromInt(480))
	suite.Require().NoError(err)

	assignment, err := shipment.NewAssignment(
		kernel.NewUUID(), s.ID(), kernel.NewUUID(), kernel.NewUUID(),
		[]shipment.Cargo{cargo}, time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	suite.Require().NoError(s.AddAssignment(assignment))
	return assignment
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsAggregate() {
	ctx := context.Background()
	s := suite.createTestShipment(kernel.NewUUID())
	assignment := suite.addAssignment(s)

	suite.Require().NoError(suite.repository.Add(ctx, s))

	restored, err := suite.repository.Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Equal(s.ID(), restored.ID())
	suite.Equal(s.ClientID(), restored.ClientID())
	suite.Equal(s.LocationID(), restored.LocationID())
	suite.Equal(shipment.StatusAssigned, restored.Status())
	suite.Require().Len(restored.Assignments(), 1)

	restoredAssignment := restored.Assignments()[0]
	suite.Equal(assignment.ID(), restoredAssignment.ID())
	suite.Equal(shipment.AssignmentPending, restoredAssignment.Status())
	suite.Require().Len(restoredAssignment.Cargo(), 1)
	suite.Equal("fruit", restoredAssignment.Cargo()[0].Kind())
	suite.True(restoredAssignment.Cargo()[0].Weight().Equal(decimal.NewFromInt(480)))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_PersistsAssignmentTransition() {
	ctx := context.Background()
	s := suite.createTestShipment(kernel.NewUUID())
	assignment := suite.addAssignment(s)
	suite.Require().NoError(suite.repository.Add(ctx, s))

	now := time.Now().UTC().Truncate(time.Microsecond)
	_, err := s.StartAssignment(assignment.ID(), assignment.CarrierID(), now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, s))

	restored, err := suite.repository.Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.StatusInProgress, restored.Status())
	suite.Equal(shipment.AssignmentInProgress, restored.Assignments()[0].Status())
	suite.Require().NotNil(restored.Assignments()[0].StartedAt())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_PersistsAppendedAssignment() {
	ctx := context.Background()
	s := suite.createTestShipment(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, s))

	suite.addAssignment(s)
	suite.Require().NoError(suite.repository.Update(ctx, s))

	restored, err := suite.repository.Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Require().Len(restored.Assignments(), 1)
	suite.Equal(shipment.StatusAssigned, restored.Status())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetByAssignmentID() {
	ctx := context.Background()
	s := suite.createTestShipment(kernel.NewUUID())
	assignment := suite.addAssignment(s)
	suite.Require().NoError(suite.repository.Add(ctx, s))

	restored, err := suite.repository.GetByAssignmentID(ctx, assignment.ID())
	suite.Require().NoError(err)
	suite.Equal(s.ID(), restored.ID())

	_, err = suite.repository.GetByAssignmentID(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetAllForClient_NewestFirstAndScoped() {
	ctx := context.Background()
	clientID := kernel.NewUUID()

	older := suite.createTestShipment(clientID)
	suite.Require().NoError(suite.repository.Add(ctx, older))

	newer := suite.createTestShipment(clientID)
	suite.Require().NoError(suite.db.Model(&shipmentrepo.ShipmentDTO{}).
		Where("id = ?", older.ID().Bytes()).
		Update("created_at", time.Now().UTC().Add(-time.Hour)).Error)
	suite.Require().NoError(suite.repository.Add(ctx, newer))

	other := suite.createTestShipment(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, other))

	shipments, err := suite.repository.GetAllForClient(ctx, clientID)
	suite.Require().NoError(err)
	suite.Require().Len(shipments, 2)
	suite.Equal(newer.ID(), shipments[0].ID())
	suite.Equal(older.ID(), shipments[1].ID())
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}

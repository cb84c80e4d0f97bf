package carrierrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"orgtrack/internal/adapters/out/postgres/carrierrepo"
	"orgtrack/internal/core/domain/model/carrier"
	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/errs"

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

// CarrierRepositoryIntegrationTestSuite provides integration tests for
// CarrierRepository using PostgreSQL containers, with particular attention
// to the conditional-update availability flips.
type CarrierRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *carrierrepo.GormCarrierRepository
	tracker    *MockAggregateTracker
}

func (suite *CarrierRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&carrierrepo.CarrierDTO{}))
}

func (suite *CarrierRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE carriers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = carrierrepo.NewGormCarrierRepository(suite.db, suite.tracker)
}

func (suite *CarrierRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CarrierRepositoryIntegrationTestSuite) createTestCarrier() *carrier.Carrier {
	c, err := carrier.NewCarrier(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID().String(), "+593991234567")
	suite.Require().NoError(err)
	return c
}

func (suite *CarrierRepositoryIntegrationTestSuite) addCarrier(c *carrier.Carrier) {
	suite.tracker.On("TrackAggregate", c.ID(), c).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), c))
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestAdd_ValidCarrier_Success() {
	ctx := context.Background()
	c := suite.createTestCarrier()

	suite.tracker.On("TrackAggregate", c.ID(), c).Once()
	suite.Require().NoError(suite.repository.Add(ctx, c))

	restored, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(c.ID(), restored.ID())
	suite.Equal(c.DocumentID(), restored.DocumentID())
	suite.Equal(kernel.Available, restored.Availability())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestAdd_DuplicateDocumentID_ReturnsAlreadyExists() {
	ctx := context.Background()
	first := suite.createTestCarrier()
	suite.addCarrier(first)

	duplicate, err := carrier.NewCarrier(kernel.NewUUID(), kernel.NewUUID(), first.DocumentID(), "+593990000000")
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, duplicate)
	suite.Require().ErrorIs(err, errs.ErrAlreadyExists)
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestGetByUserID() {
	ctx := context.Background()
	c := suite.createTestCarrier()
	suite.addCarrier(c)

	restored, err := suite.repository.GetByUserID(ctx, c.UserID())
	suite.Require().NoError(err)
	suite.Equal(c.ID(), restored.ID())
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestGetAllAvailable_FiltersReserved() {
	ctx := context.Background()
	available := suite.createTestCarrier()
	reserved := suite.createTestCarrier()
	suite.addCarrier(available)
	suite.addCarrier(reserved)

	suite.Require().NoError(suite.repository.Reserve(ctx, reserved.ID()))

	carriers, err := suite.repository.GetAllAvailable(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(carriers, 1)
	suite.Equal(available.ID(), carriers[0].ID())
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestReserve_FlipsAvailability() {
	ctx := context.Background()
	c := suite.createTestCarrier()
	suite.addCarrier(c)

	suite.Require().NoError(suite.repository.Reserve(ctx, c.ID()))

	restored, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(kernel.Unavailable, restored.Availability())
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestReserve_AlreadyReserved_ReturnsResourceUnavailable() {
	ctx := context.Background()
	c := suite.createTestCarrier()
	suite.addCarrier(c)

	suite.Require().NoError(suite.repository.Reserve(ctx, c.ID()))

	err := suite.repository.Reserve(ctx, c.ID())
	suite.Require().ErrorIs(err, errs.ErrResourceUnavailable)
}

// TestReserve_Concurrent verifies that of many concurrent reservations of
// the same carrier exactly one wins. This is the race the conditional UPDATE
// exists to close: no reader ever observes Available and reserves on that
// stale observation.
func (suite *CarrierRepositoryIntegrationTestSuite) TestReserve_Concurrent() {
	ctx := context.Background()
	c := suite.createTestCarrier()
	suite.addCarrier(c)

	const attempts = 16
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- suite.repository.Reserve(ctx, c.ID())
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, unavailable int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		default:
			suite.Require().ErrorIs(err, errs.ErrResourceUnavailable)
			unavailable++
		}
	}

	suite.Equal(1, succeeded)
	suite.Equal(attempts-1, unavailable)
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestMarkEnRoute_RequiresReservation() {
	ctx := context.Background()
	c := suite.createTestCarrier()
	suite.addCarrier(c)

	err := suite.repository.MarkEnRoute(ctx, c.ID())
	suite.Require().ErrorIs(err, errs.ErrInvalidState)

	suite.Require().NoError(suite.repository.Reserve(ctx, c.ID()))
	suite.Require().NoError(suite.repository.MarkEnRoute(ctx, c.ID()))

	restored, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(kernel.EnRoute, restored.Availability())
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestRelease_FromReservedAndEnRoute() {
	ctx := context.Background()

	reserved := suite.createTestCarrier()
	suite.addCarrier(reserved)
	suite.Require().NoError(suite.repository.Reserve(ctx, reserved.ID()))
	suite.Require().NoError(suite.repository.Release(ctx, reserved.ID()))

	enRoute := suite.createTestCarrier()
	suite.addCarrier(enRoute)
	suite.Require().NoError(suite.repository.Reserve(ctx, enRoute.ID()))
	suite.Require().NoError(suite.repository.MarkEnRoute(ctx, enRoute.ID()))
	suite.Require().NoError(suite.repository.Release(ctx, enRoute.ID()))

	for _, id := range []kernel.UUID{reserved.ID(), enRoute.ID()} {
		restored, err := suite.repository.Get(ctx, id)
		suite.Require().NoError(err)
		suite.Equal(kernel.Available, restored.Availability())
	}
}

func (suite *CarrierRepositoryIntegrationTestSuite) TestRelease_AvailableCarrier_ReturnsInvalidState() {
	ctx := context.Background()
	c := suite.createTestCarrier()
	suite.addCarrier(c)

	err := suite.repository.Release(ctx, c.ID())
	suite.Require().ErrorIs(err, errs.ErrInvalidState)
}

func TestCarrierRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CarrierRepositoryIntegrationTestSuite))
}

package commands_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"orgtrack/internal/core/application/usecases/commands"
	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/vehicle"
)

func TestNewCreateVehicleCommand_Validation(t *testing.T) {
	id := kernel.NewUUID()

	_, err := commands.NewCreateVehicleCommand(id, "refrigerated truck", "7733-KLM", decimal.NewFromInt(12000))
	require.NoError(t, err)

	_, err = commands.NewCreateVehicleCommand(id, "", "7733-KLM", decimal.NewFromInt(12000))
	require.ErrorIs(t, err, commands.ErrVehicleKindIsRequired)

	_, err = commands.NewCreateVehicleCommand(id, "refrigerated truck", "", decimal.NewFromInt(12000))
	require.ErrorIs(t, err, commands.ErrPlateIsRequired)

	_, err = commands.NewCreateVehicleCommand(id, "refrigerated truck", "7733-KLM", decimal.Zero)
	require.ErrorIs(t, err, commands.ErrCapacityIsInvalid)
}

func TestCreateVehicleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateVehicleCommand(
		kernel.NewUUID(), "refrigerated truck", "7733-KLM", decimal.NewFromInt(12000),
	)
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockVehicleUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Add", mock.Anything, mock.MatchedBy(func(v *vehicle.Vehicle) bool {
			return v.Plate() == "7733-KLM" && v.IsAvailable()
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(errors.New("no transaction")).Once(),
	)

	factory := new(MockVehicleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateVehicleCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	vehicleRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateVehicleCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockVehicleUoWFactory)
	h := commands.NewCreateVehicleCommandHandler(factory)

	err := h.Handle(t.Context(), commands.CreateVehicleCommand{})
	require.ErrorIs(t, err, commands.ErrCreateVehicleCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

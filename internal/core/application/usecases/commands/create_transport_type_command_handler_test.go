package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"orgtrack/internal/core/application/usecases/commands"
	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/core/domain/model/transport"
)

func TestNewCreateTransportTypeCommand_Validation(t *testing.T) {
	_, err := commands.NewCreateTransportTypeCommand(kernel.NewUUID(), "refrigerated", "cold chain")
	require.NoError(t, err)

	_, err = commands.NewCreateTransportTypeCommand(kernel.NewUUID(), "", "cold chain")
	require.ErrorIs(t, err, commands.ErrTransportTypeNameIsRequired)
}

func TestCreateTransportTypeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateTransportTypeCommand(kernel.NewUUID(), "refrigerated", "cold chain")
	require.NoError(t, err)

	transportRepo := new(MockTransportTypeRepository)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TransportTypeRepository").Return(transportRepo).Once(),
		transportRepo.On("Add", mock.Anything, mock.MatchedBy(func(entry *transport.TransportType) bool {
			return entry.Name() == "refrigerated"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(errors.New("no transaction")).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateTransportTypeCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	transportRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

package transport

import (
	"errors"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/errs"
	"orgtrack/internal/pkg/guard"
)

// Domain errors for transport type operations.
var (
	// ErrNameIsRequired is returned when the transport type name is missing.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrTransportTypeIsNotConstructed is returned when using an improperly initialized TransportType.
	ErrTransportTypeIsNotConstructed = errors.New("TransportType must be created via NewTransportType constructor")
)

// TransportType is a catalog entry describing how cargo travels (e.g.
// refrigerated truck, flatbed). Clients pick one when requesting a shipment;
// admins maintain the catalog. Names are unique across the catalog.
type TransportType struct {
	id          kernel.UUID
	name        string
	description string

	guard guard.ConstructorGuard
}

// NewTransportType creates a catalog entry with a required name.
func NewTransportType(id kernel.UUID, name, description string) (*TransportType, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &TransportType{
		id:          id,
		name:        name,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreTransportType reconstructs a TransportType from persistence.
func RestoreTransportType(id kernel.UUID, name, description string) (*TransportType, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &TransportType{
		id:          id,
		name:        name,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the TransportType was created through a constructor.
func (t *TransportType) Validate() error {
	if t == nil {
		return ErrTransportTypeIsNotConstructed
	}
	return t.guard.Validate(ErrTransportTypeIsNotConstructed)
}

// ID returns the transport type identifier.
func (t *TransportType) ID() kernel.UUID {
	return t.id
}

// Name returns the unique catalog name.
func (t *TransportType) Name() string {
	return t.name
}

// Description returns the free-form description. May be empty.
func (t *TransportType) Description() string {
	return t.description
}

package shipment

import (
	"errors"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Cargo errors.
var (
	// ErrCargoKindIsRequired is returned when the cargo kind is missing.
	ErrCargoKindIsRequired = errs.NewValueIsRequiredError("cargo kind")
	// ErrCargoPackagingIsRequired is returned when the packaging is missing.
	ErrCargoPackagingIsRequired = errs.NewValueIsRequiredError("cargo packaging")
)

// Cargo is a single cargo record carried by exactly one assignment.
// It is immutable once created: a correction is a new record on a new
// assignment, never an edit.
type Cargo struct {
	id        kernel.UUID
	kind      string
	variety   string
	quantity  int
	packaging string
	weight    decimal.Decimal
}

// NewCargo creates a validated Cargo record. Kind and packaging are required,
// quantity must be positive, and weight must be greater than zero.
func NewCargo(id kernel.UUID, kind, variety string, quantity int, packaging string, weight decimal.Decimal) (Cargo, error) {
	if err := id.Validate(); err != nil {
		return Cargo{}, err
	}
	if kind == "" {
		return Cargo{}, ErrCargoKindIsRequired
	}
	if packaging == "" {
		return Cargo{}, ErrCargoPackagingIsRequired
	}
	if quantity <= 0 {
		return Cargo{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxCargoQuantity)
	}
	if !weight.IsPositive() {
		return Cargo{}, errs.NewValueIsInvalidErrorWithCause("weight is invalid",
			errors.New(weight.String()+" is not greater than 0"))
	}

	return Cargo{
		id:        id,
		kind:      kind,
		variety:   variety,
		quantity:  quantity,
		packaging: packaging,
		weight:    weight,
	}, nil
}

// maxCargoQuantity bounds a single cargo record; larger loads are split.
const maxCargoQuantity = 1_000_000

// ID returns the cargo record identifier.
func (c Cargo) ID() kernel.UUID {
	return c.id
}

// Kind returns the cargo kind (e.g. produce category).
func (c Cargo) Kind() string {
	return c.kind
}

// Variety returns the cargo variety within its kind. May be empty.
func (c Cargo) Variety() string {
	return c.variety
}

// Quantity returns the number of units.
func (c Cargo) Quantity() int {
	return c.quantity
}

// Packaging returns how the cargo is packed.
func (c Cargo) Packaging() string {
	return c.packaging
}

// Weight returns the total weight of the record.
func (c Cargo) Weight() decimal.Decimal {
	return c.weight
}

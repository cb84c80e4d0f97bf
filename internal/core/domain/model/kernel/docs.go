// Package kernel provides core domain primitives shared by every aggregate in
// the logistics system. It implements fundamental building blocks following
// Domain-Driven Design principles.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Availability: the carrier/vehicle availability state machine
//   - Schedule: the pickup/delivery window value object attached to shipments
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are immutable and thread-safe.
package kernel

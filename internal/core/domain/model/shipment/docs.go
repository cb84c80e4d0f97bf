// Package shipment contains the shipment aggregate and its partitioned
// assignments: the core of the coordination workflow.
//
// A Shipment is a client's delivery request. Administrators partition it into
// Assignments, each binding one carrier and one vehicle to part of the cargo.
// Each assignment runs the forward-only state machine
// Pending -> InProgress -> Delivered, and the shipment's own Status is always
// re-derived from the multiset of assignment statuses by AggregateStatus.
//
// Carrier and vehicle availability is deliberately outside this package: the
// application layer flips it through atomic repository operations as a side
// effect of the transitions defined here.
package shipment

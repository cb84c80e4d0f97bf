// Package carrier contains the Carrier aggregate: a driver who executes
// shipment assignments and participates in the resource availability ledger.
package carrier

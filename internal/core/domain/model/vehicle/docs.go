// Package vehicle contains the Vehicle aggregate, the second reservable
// resource of the availability ledger.
package vehicle

// Package services provides domain services that implement business logic
// spanning more than one aggregate or requiring capabilities the aggregates
// themselves do not carry.
//
// The package includes:
//   - CredentialIssuer: mints single-use QR credentials for assignments
package services

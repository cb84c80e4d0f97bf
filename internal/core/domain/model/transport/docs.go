// Package transport contains the TransportType catalog entity.
package transport

// Package handler is the first layer. The first entry point
// for business logic after the registry.
//
// It decodes the request context, calls the appropriate service and
// returns a registry.Response. It acts as the interface between the
// HTTP exchange and the core business logic.
package handler

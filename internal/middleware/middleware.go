// Package middleware stores global middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request ids, request-scoped logging, request logging,
// New Relic tracing and panic recovery, plus the global error
// handler every failed request ends up in.
package middleware

// Package service contains the business logic.
//
// It sits behind the handler layer: handlers decode the request,
// hand plain values to a service and turn the result into a response.
package service

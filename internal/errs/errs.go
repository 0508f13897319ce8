// Package errs define custom error types and utilities.
//
// Its purpose is to create specific error structures
// (HTTPError for API responses) to ensure the client receives
// consistent JSON error bodies that match the shapes existing
// clients already parse.
package errs

// Package server holds the HTTP server configuration.
//
// The actual server wiring lives in the cmd package; this package only defines
// the partial configuration consumed by core/config.
package server

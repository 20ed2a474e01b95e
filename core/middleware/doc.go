// Package middleware holds the HTTP middleware for the Fiber application.
//
// Each concern lives in its own subpackage:
//
//   - auth: X-API-Key validation guarding the insights endpoints.
//   - rayid: per-request ray IDs, set on the context and the response headers
//     so log lines from one request can be correlated.
//
// Both are registered globally in the server startup path, rayid first so the
// request log and any auth rejection already carry the ID.
package middleware

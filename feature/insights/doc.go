// Package insights exposes the property-insights pipeline output to the
// presentation layer.
//
// The dashboard in front of this service does only thin work (filter widgets,
// metric cards, chart rendering); everything analytical happens here. The
// feature serves the denormalized listing table produced by core/pipeline,
// pre-aggregated KPI metrics, and the reconciliation data-quality report.
//
// # HTTP Endpoints
//
//   - GET  /insights/listings : The enriched listing table, one row per matched listing.
//   - GET  /insights/summary  : KPI metrics (count, average price, price/sqft, school rating).
//   - GET  /insights/report   : Row counts per reconciliation outcome (matched, dropped).
//   - POST /insights/refresh  : Invalidates the cached result and recomputes.
//
// When a source file is missing, responses carry an empty table and a warning
// string instead of an error status, so the dashboard can render a hint to the
// user rather than crash.
package insights

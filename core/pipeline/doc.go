// Package pipeline implements the record-linkage pipeline that joins
// neighborhood demographics with property listings.
//
// The two inputs carry inconsistent location keys: demographics use canonical
// 5-digit postal codes, while listing postal codes are free-form and often
// partial or malformed. An exact-key join would silently drop most rows, so
// the pipeline bridges the two identifier spaces with approximate string
// matching before joining.
//
// # Stages
//
//  1. Loader: reads both delimited sources into typed tables and normalizes
//     demographic postal codes to exactly 5 zero-padded digits.
//  2. Reconciler: extracts the first digit run from each listing postal code
//     and resolves it to the best-matching canonical code using a partial
//     similarity scorer, accepting only scores at or above the threshold.
//  3. Merger: inner-joins listings to demographics on the resolved code and
//     derives price_per_sqft for every joined row.
//
// # Determinism
//
// Candidate canonical codes are iterated in sorted order, so equal-score ties
// always resolve to the lowest code. Duplicate canonical codes in the
// demographics table resolve to the first row in file order. Running the
// pipeline twice on the same inputs yields identical output.
//
// # Caching
//
// Results are memoized per spec identity (resolved source names plus matching
// options) in a TTL store with singleflight stampede protection. See Store.
//
// # Failure semantics
//
// A missing source file is recoverable: Run returns an empty Result carrying
// a warning for the presentation layer instead of an error. A listing whose
// postal code yields no digit run, or whose best score falls below the
// threshold, is a normal no-match outcome and is dropped by the inner join.
// A zero or unparsable area produces a non-finite price_per_sqft; the row is
// kept and consumers must aggregate defensively.
package pipeline

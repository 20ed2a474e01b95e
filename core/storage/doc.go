// Package storage provides read-only access to input datasets held in
// S3-compatible object storage (Minio, S3).
//
// The pipeline can be configured to fetch its demographics and listings files
// from a bucket instead of the local filesystem. The Client interface narrows
// the Minio SDK to the read operations the loader needs (existence checks,
// downloads, listings), which keeps mocking cheap in tests.
package storage

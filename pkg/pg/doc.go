// Package pg provides the PostgreSQL plumbing shared across clinickit:
// pool construction with startup retry, goose migrations (including the
// row-level security policies under migrations/), a healthcheck closure,
// and classification helpers for the SQLSTATE errors the isolation layer
// cares about, most notably permission-denied, which is how a write
// blocked by an RLS tenant policy surfaces.
package pg

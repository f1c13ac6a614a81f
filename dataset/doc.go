// Package dataset persists prepared coefficient fields in a local SQLite
// database, so expensive preprocessing (loading, normalization, synthetic
// generation) runs once per experiment instead of once per process.
//
// Fields are stored by unique name with their lattice shape and a
// little-endian float64 blob; each record carries a generated id. The
// store is a thin layer over database/sql with the pure-Go sqlite driver —
// no cgo, single-writer access.
//
// Errors: ErrNotFound for unknown field names; all other failures are
// wrapped driver errors.
package dataset

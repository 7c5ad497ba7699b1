// Package report derives a PlayerReport from raw season and career tables.
//
// Everything in this package is a pure function of its inputs: no I/O, no
// logging, no package-level mutable state. Lookup tables are passed in by the
// caller. Quantities that cannot be computed (zero games played, zero
// turnovers, missing career totals) resolve to models.NoData instead of
// failing.
package report

// Package history provides the calculation record type, the bounded history
// store, and CSV persistence.
//
// A Calculation is an immutable record of one computed operation. The Store
// keeps records in insertion order and never grows past its configured
// maximum; appending beyond the bound drops the oldest entries.
//
// Persistence uses a header-delimited CSV file with columns
// operation, operand_a, operand_b, result, timestamp. Loads are
// all-or-nothing: a single unparsable row aborts the load and leaves the
// store untouched. A missing file is reported as absent, not as an error.
package history

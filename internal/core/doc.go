// Package core provides the table shuffling logic behind the permute command.
//
// This package holds all domain logic independent of the command line layer.
// It can be driven by the CLI, by other tools, or by tests without
// modification.
//
// # Architecture
//
// The package is organized around a few concepts:
//
//   - Table: an in-memory set of named columns and string rows.
//   - Formats: loader/writer pairs registered by name ("csv", "excel") via
//     [RegisterFormat] and resolved with [LookupFormat].
//   - Streaming: reader wrappers that strip a UTF-8 BOM, reject invalid
//     UTF-8 and count bytes while a delimited file is parsed.
//   - Shuffle: a seeded Fisher-Yates permutation of row order.
//
// # Permute Flow
//
// [Permute] runs one transformation end to end:
//
//  1. The input path is checked; a missing file is an [ErrNotFound] error
//  2. The file is loaded with the format's loader ([ErrLoad] on failure)
//  3. Rows are reordered with [Shuffle] using the request seed
//  4. The table is written with the format's writer ([ErrWrite] on failure)
//
// The same seed and input always produce the same output ordering.
//
// # Error Handling
//
// Every failure is returned as an [*Error] carrying its [ErrorKind], the path
// involved and the underlying cause. [MapError] turns an error into a short
// user message with a support code:
//
//   - FILE001: input file not found
//   - FILE002-FILE006: the input could not be read
//   - FILE007-FILE009: the output could not be written
//   - ERR000: anything else
//
// A write failure may leave a truncated output file behind; nothing is
// cleaned up.
package core

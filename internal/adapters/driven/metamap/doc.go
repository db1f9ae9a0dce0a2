// Package metamap is the driven adapter for the MetaMap binary: it builds
// the argument vector, stages input/output files, runs the tool, and
// classifies its stdout for failure signatures.
//
// MetaMap's interface is file-path based, so every call stages a uniquely
// named input file (sentence mode) and output file, both deleted when the
// call completes regardless of outcome.
package metamap

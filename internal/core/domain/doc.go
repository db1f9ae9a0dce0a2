// Package domain defines the core business entities for metamap-cli.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Request: One validated extraction call (sentences or a file, plus options)
//   - Options: The MetaMap option set with its cross-field invariants
//   - Result: Decoded concepts plus any tool-reported error
//   - MMIConcept / AcronymConcept: Typed concept records from tool output
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

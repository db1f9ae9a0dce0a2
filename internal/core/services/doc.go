// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO or external process dependencies;
// the tool itself is reached only through the driven ports.
package services

// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Stager: Stages request input/output files on the filesystem
//   - CommandBuilder: Builds the MetaMap argument vector
//   - ToolInvoker: Runs the tool and captures its stdout
//   - FailureClassifier: Decides from stdout whether the run failed
//   - ConceptParser: Decodes output lines into concept records
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RunStore: Extraction run history persistence
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven

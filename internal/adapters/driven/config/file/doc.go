// Package file implements the ConfigStore port as a TOML file in the
// user's metamap-cli directory.
//
// Known keys:
//
//   - metamap.path          Path to the MetaMap binary (required to extract)
//   - metamap.data_version  Default -V data version (Base, USAbase, NLM)
//   - staging.dir           Directory for staged files (e.g. a RAM disk)
//   - history.enabled       Whether to record extraction runs
package file

// Package sqlite implements the RunStore port on an embedded SQLite
// database. Each completed extraction call is recorded as one row in the
// extraction_runs table; the CLI's history command reads it back.
package sqlite

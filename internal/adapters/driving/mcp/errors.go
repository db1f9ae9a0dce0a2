// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It lets AI assistants run concept extraction against the local MetaMap
// installation.
package mcp

import "errors"

// ErrMissingExtractionService is returned when the extraction service is not provided.
var ErrMissingExtractionService = errors.New("mcp: extraction service is required")

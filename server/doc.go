// Package server exposes the logbook operations as MCP tools.
//
// Five tools are declared against the official MCP Go SDK: read, add-entry,
// update-entry, delete-entry, and search-entries. Each carries an explicit
// JSON schema input contract (date/time patterns, description length bounds,
// non-negative numbers, no unknown fields), so malformed arguments are
// rejected by the SDK before any domain code runs, and tool annotations
// describing whether it is read-only, destructive, and idempotent. All five
// declare a closed world: nothing is touched beyond the document store.
//
// Results are dual-form: a human-readable text summary plus a structured
// payload with the same information. A domain failure becomes a tool-error
// result; the serving process never terminates on one.
//
// The server runs over exactly one transport chosen at startup: stdio or
// streamable HTTP.
package server

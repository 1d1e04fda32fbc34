// Package docq provides a local, CLI-based query tool for a directory tree
// of markdown API documentation. It lists and searches pages, extracts a
// page's heading hierarchy, prints single sections by title, and isolates
// or recomposes the fenced code listings inside a section.
//
// Every query is a stateless read pass over the file system: nothing is
// cached or persisted between invocations.
//
// This package contains domain types, interfaces, and the pure query core
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g. fs/, slog/).
package docq

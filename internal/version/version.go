// Package version holds the engine's identifying strings, surfaced by
// the UCI "id" response and the CLI banner.
package version

// Name is the engine's UCI identity.
const Name = "Umbra"

// Author is the UCI "id author" value.
const Author = "the Umbra project"

// Version is the engine's release string.
const Version = "0.1.0"

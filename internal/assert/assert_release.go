//go:build !debug

// Package assert provides a single assertion hook gated by the "debug"
// build tag: invariant violations panic only in debug builds, and are
// undefined behavior in release builds. Callers should additionally
// guard expensive assertion arguments with
// "if assert.DEBUG { ... }" since Go still evaluates Assert's arguments
// even when Assert itself is a no-op.
package assert

// DEBUG reports whether assertions are compiled in.
const DEBUG = false

// Assert is a no-op in release builds.
func Assert(test bool, msg string, a ...interface{}) {}

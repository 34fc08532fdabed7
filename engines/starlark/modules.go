package starlark

import (
	"maps"

	starlarkJSON "go.starlark.net/lib/json"
	starlarkMath "go.starlark.net/lib/math"
	starlarkTime "go.starlark.net/lib/time"
	starlarkLib "go.starlark.net/starlark"
)

// Module namespaces added to every session on top of the Starlark universe.
const (
	namespaceJSON = "json" // Provides JSON encoding/decoding functions
	namespaceMath = "math" // Provides mathematical functions and constants
	namespaceTime = "time" // Provides time-related functions
)

// standardModules returns the initial globals of a session: the extra library
// modules, keyed by namespace. The universe itself is resolved by Starlark.
func standardModules() starlarkLib.StringDict {
	return starlarkLib.StringDict{
		namespaceJSON: starlarkJSON.Module,
		namespaceMath: starlarkMath.Module,
		namespaceTime: starlarkTime.Module,
	}
}

// newGlobals merges the standard modules with user supplied globals, which win.
func newGlobals(extra starlarkLib.StringDict) starlarkLib.StringDict {
	globals := standardModules()
	maps.Copy(globals, extra)
	return globals
}

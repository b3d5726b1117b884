// SPDX-License-Identifier: MIT
// Package: wgmesh/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Handlers attach context using %w with the method-name prefix.
//   • Build paths MUST NOT panic; validation panics are confined to option
//     constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates a dimension that is non-positive, or a
// feature that does not fit strictly inside its container (rib wider than
// slab, slab wider than the period, rib taller than the space above the
// slab, and so on). The wrapped message names the offending parameters.
// Usage: if errors.Is(err, ErrInvalidParameter) { /* skip this sweep point */ }.
var ErrInvalidParameter = errors.New("builder: invalid geometry parameter")

// ErrUnsupportedTopology indicates a topology kind outside the supported
// closed set (see the Topology constants and ParseTopology).
// Usage: if errors.Is(err, ErrUnsupportedTopology) { /* report kind */ }.
var ErrUnsupportedTopology = errors.New("builder: unsupported topology")

// ErrBadSpec indicates a parameter document (YAML) that could not be
// decoded into a topology selector plus parameter set.
// Usage: if errors.Is(err, ErrBadSpec) { /* fix the sweep file */ }.
var ErrBadSpec = errors.New("builder: malformed parameter document")

// builderErrorf wraps an inner formatted message with the given method
// context and sentinel: "<Method>: <message>: <sentinel>".
// The sentinel stays reachable through errors.Is.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}

// SPDX-License-Identifier: MIT
// Package: wgmesh/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     build paths themselves MUST NOT panic.
//   • No hidden globals; everything flows through builderConfig.

package builder

// BuilderOption customizes the behavior of a build by mutating a
// builderConfig instance before construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithAutoDensity switches the mesh-density contract from "explicit" to
// "auto": LcBkg == 0 becomes legal and every point hint is emitted as 0,
// letting the downstream mesher infer characteristic lengths from relative
// point spacing (the historical template default).
//
// Without this option a zero or negative LcBkg is rejected with
// ErrInvalidParameter, so a forgotten density never silently produces an
// unconstrained mesh.
// Complexity: O(1) time, O(1) space.
func WithAutoDensity() BuilderOption {
	return func(c *builderConfig) {
		c.autoDensity = true
	}
}

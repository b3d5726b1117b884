// SPDX-License-Identifier: MIT
// Package: wgmesh/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • autoDensity = false  (lc_bkg must be > 0; 0 is rejected as degenerate)

package builder

// builderConfig aggregates all knobs used by topology handlers.
// It is passed by VALUE to handlers (immutable to callers).
type builderConfig struct {
	// autoDensity permits lc_bkg == 0, propagated as the AutoDensity
	// sentinel on every point ("let the mesher choose").
	autoDensity bool
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last-wins semantics).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		autoDensity: false, // explicit densities unless opted in
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

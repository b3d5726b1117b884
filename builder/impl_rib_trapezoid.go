// SPDX-License-Identifier: MIT
// Package: wgmesh/builder
//
// impl_rib_trapezoid.go — trapezoidal rib-on-slab handler.
//
// Contract:
//   - Same cell/slab layout as the rectangular rib (see impl_rib.go).
//   - RibW is the bottom width, RibTopW the top width, both centered;
//     0 < RibTopW < RibW < SlabW (an equal-width "trapezoid" is the
//     rectangular family and is rejected here rather than aliased).
//   - The background verticals above the rib descend onto the rib's TOP
//     corners, so the flanking background regions absorb the slanted
//     side walls and stay simply connected.
//
// Complexity: O(1) — fixed entity counts, identical to the rectangular rib.

package builder

import "github.com/katalvlaran/wgmesh/geom"

// buildTrapezoidalRib validates and emits the trapezoidal rib family.
func buildTrapezoidalRib(p Params, cfg builderConfig) (*geom.Geometry, error) {
	if err := validateRibParams(MethodTrapezoidalRib, p, cfg); err != nil {
		return nil, err
	}
	if err := validatePositive(MethodTrapezoidalRib, "rib_top_w", p.RibTopW); err != nil {
		return nil, err
	}
	if err := validateFits(MethodTrapezoidalRib, "rib_top_w", p.RibTopW, "rib_w", p.RibW); err != nil {
		return nil, err
	}

	btmL := (p.D - p.RibW) / 2
	topL := (p.D - p.RibTopW) / 2

	return emitRibOnSlab(MethodTrapezoidalRib, p, cfg, btmL, btmL+p.RibW, topL, topL+p.RibTopW)
}

// SPDX-License-Identifier: MIT
// Package: wgmesh/builder
//
// impl_rib.go — rectangular rib-on-slab handler, plus the shared emitter
// reused by the trapezoidal variant.
//
// Canonical layout (18 points, 25 lines, 8 surfaces):
//
//	NW ── TL ─── TR ── NE          y = 0
//	│      │██████│      │         rib: [btmL..btmR] × [slabTop..ribTop]
//	LW1─STL┌──────┐STR─RW1         y = slabTop = -dy/2
//	│      │ slab │      │
//	LW2─SBL└──────┘SBR─RW2         y = slabBot = -(dy/2 + slab_h)
//	│                    │
//	SW ───────────────── SE        y = cellBot = -(dy + slab_h)
//
// The background is split into six simply-connected sub-surfaces (above
// the rib, flanking it left/right, beside the slab left/right, below the
// slab) so no non-convex region reaches the mesher. All loops run
// counter-clockwise; shared edges are emitted once and re-traversed with
// reversed references.
//
// Densities: outer boundary points lc_bkg; slab corners lc_bkg/lc2; rib
// corners lc_bkg/lc3 (the rib IS the core, so center refinement lands on
// its perimeter rather than on an extra embedded point — this keeps the
// rib interior a plain surface).
//
// Determinism: fixed emission order (points top-to-bottom, then lines,
// loops, surfaces, tags); identical parameters yield identical ids.

package builder

import "github.com/katalvlaran/wgmesh/geom"

// buildRib validates and emits the rectangular rib-on-slab family.
// Complexity: O(1) — fixed entity counts.
func buildRib(p Params, cfg builderConfig) (*geom.Geometry, error) {
	if err := validateRibParams(MethodRib, p, cfg); err != nil {
		return nil, err
	}

	half := (p.D - p.RibW) / 2

	return emitRibOnSlab(MethodRib, p, cfg, half, half+p.RibW, half, half+p.RibW)
}

// validateRibParams enforces the shared rib-family contract: a valid cell
// and slab, a rib strictly narrower than the slab, and a rib that stays
// strictly below the cell top (ribTop = -dy/2 + rib_h < 0).
func validateRibParams(method string, p Params, cfg builderConfig) error {
	if err := validateCell(method, p, cfg); err != nil {
		return err
	}
	if err := validateSlab(method, p); err != nil {
		return err
	}
	if err := validatePositive(method, "rib_w", p.RibW); err != nil {
		return err
	}
	if err := validatePositive(method, "rib_h", p.RibH); err != nil {
		return err
	}
	if err := validateFits(method, "rib_w", p.RibW, "slab_w", p.SlabW); err != nil {
		return err
	}

	return validateFits(method, "rib_h", p.RibH, "dy/2", p.DY/2)
}

// emitRibOnSlab lays out a rib-on-slab cell with the rib bottom spanning
// [btmL, btmR] and the rib top spanning [topL, topR] on the slab surface;
// equal spans give the rectangular rib, nested spans the trapezoid.
func emitRibOnSlab(method string, p Params, cfg builderConfig, btmL, btmR, topL, topR float64) (*geom.Geometry, error) {
	lc := resolveDensities(p, cfg)

	slabTop := -p.DY / 2
	slabBot := slabTop - p.SlabH
	ribTop := slabTop + p.RibH
	cellBot := -(p.DY + p.SlabH)
	slabL := (p.D - p.SlabW) / 2
	slabR := slabL + p.SlabW

	s := newSketch()

	// Points, top row to bottom row (18 total).
	nw := s.point(0, 0, lc.bkg)
	tl := s.point(topL, 0, lc.bkg)
	tr := s.point(topR, 0, lc.bkg)
	ne := s.point(p.D, 0, lc.bkg)
	lw1 := s.point(0, slabTop, lc.bkg)
	stl := s.point(slabL, slabTop, lc.iface)
	rbl := s.point(btmL, slabTop, lc.core)
	rbr := s.point(btmR, slabTop, lc.core)
	str := s.point(slabR, slabTop, lc.iface)
	rw1 := s.point(p.D, slabTop, lc.bkg)
	rtl := s.point(topL, ribTop, lc.core)
	rtr := s.point(topR, ribTop, lc.core)
	lw2 := s.point(0, slabBot, lc.bkg)
	sbl := s.point(slabL, slabBot, lc.iface)
	sbr := s.point(slabR, slabBot, lc.iface)
	rw2 := s.point(p.D, slabBot, lc.bkg)
	sw := s.point(0, cellBot, lc.bkg)
	se := s.point(p.D, cellBot, lc.bkg)

	// Outer boundary lines.
	t1 := s.line(nw, tl)
	t2 := s.line(tl, tr)
	t3 := s.line(tr, ne)
	l1 := s.line(nw, lw1)
	l2 := s.line(lw1, lw2)
	l3 := s.line(lw2, sw)
	r1 := s.line(ne, rw1)
	r2 := s.line(rw1, rw2)
	r3 := s.line(rw2, se)
	b1 := s.line(sw, se)

	// Slab-top row (the rib footprint splits it in five).
	s1 := s.line(lw1, stl)
	s2 := s.line(stl, rbl)
	s3 := s.line(rbl, rbr)
	s4 := s.line(rbr, str)
	s5 := s.line(str, rw1)

	// Rib perimeter and the verticals splitting the background above it.
	ribL := s.line(rbl, rtl)
	ribT := s.line(rtl, rtr)
	ribR := s.line(rtr, rbr)
	v1 := s.line(tl, rtl)
	v2 := s.line(tr, rtr)

	// Slab sides and slab-bottom row.
	slabLn := s.line(stl, sbl)
	slabRn := s.line(str, sbr)
	x1 := s.line(lw2, sbl)
	x2 := s.line(sbl, sbr)
	x3 := s.line(sbr, rw2)

	// Region loops, counter-clockwise.
	ribLoop := s.loop(s3.Fwd(), ribR.Rev(), ribT.Rev(), ribL.Rev())
	slabLoop := s.loop(x2.Fwd(), slabRn.Rev(), s4.Rev(), s3.Rev(), s2.Rev(), slabLn.Fwd())
	bgTop := s.loop(ribT.Fwd(), v2.Rev(), t2.Rev(), v1.Fwd())
	bgLeft := s.loop(s1.Fwd(), s2.Fwd(), ribL.Fwd(), v1.Rev(), t1.Rev(), l1.Fwd())
	bgRight := s.loop(s4.Fwd(), s5.Fwd(), r1.Rev(), t3.Rev(), v2.Fwd(), ribR.Fwd())
	bgLowerLeft := s.loop(x1.Fwd(), slabLn.Rev(), s1.Rev(), l2.Fwd())
	bgLowerRight := s.loop(x3.Fwd(), r2.Rev(), s5.Rev(), slabRn.Fwd())
	bgBottom := s.loop(b1.Fwd(), r3.Rev(), x3.Rev(), x2.Rev(), x1.Rev(), l3.Fwd())

	// Surfaces, one per loop.
	ribSurf := s.surface(ribLoop)
	slabSurf := s.surface(slabLoop)
	sTop := s.surface(bgTop)
	sLeft := s.surface(bgLeft)
	sRight := s.surface(bgRight)
	sLowerLeft := s.surface(bgLowerLeft)
	sLowerRight := s.surface(bgLowerRight)
	sBottom := s.surface(bgBottom)

	// Physical groups: material surfaces, then the boundary partition.
	s.tagSurfaces(TagBackground, sTop, sLeft, sRight, sLowerLeft, sLowerRight, sBottom)
	s.tagSurfaces(TagSlab, slabSurf)
	s.tagSurfaces(TagCore, ribSurf)
	s.tagLines(TagBoundaryTop, t1, t2, t3)
	s.tagLines(TagBoundaryBottom, b1)
	s.tagLines(TagBoundaryLeft, l1, l2, l3)
	s.tagLines(TagBoundaryRight, r1, r2, r3)

	return s.done(method)
}

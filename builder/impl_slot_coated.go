// SPDX-License-Identifier: MIT
// Package: wgmesh/builder
//
// impl_slot_coated.go — coated-slot handler: the slot structure of
// impl_slot.go under a conformal coating layer spanning both rails and
// the gap between them.
//
// Canonical layout (24 points, 34 lines, 11 surfaces):
//
//	NW ── T1 ─────────── T4 ── NE       y = 0
//	│      │              │      │
//	│     C1── coating ──C2      │      y = ribTop + coat_t
//	│      ├──┬──────┬───┤       │      y = ribTop
//	│      │██│ slot │███│       │
//	LW1──STL┌─┴──────┴──┐STR───RW1      y = slabTop = -dy/2
//	│       │   slab    │        │
//	LW2──SBL└───────────┘SBR───RW2      y = slabBot
//	│                            │
//	SW ───────────────────────── SE     y = cellBot
//
// The coating rests on the rail tops and bridges the slot opening, so the
// background above it is a single strip and the top boundary needs only
// two splits (at the outer rail sides). Rail, slot and slab wiring below
// the ribTop level is identical to the uncoated slot.
//
// Densities: outer boundary lc_bkg; slab and coating corners lc_bkg/lc2;
// rail and slot corners lc_bkg/lc3.
//
// Complexity: O(1) — fixed entity counts.

package builder

import "github.com/katalvlaran/wgmesh/geom"

// buildSlotCoated validates and emits the coated-slot family.
func buildSlotCoated(p Params, cfg builderConfig) (*geom.Geometry, error) {
	if err := validateSlotParams(MethodSlotCoated, p, cfg); err != nil {
		return nil, err
	}
	if err := validatePositive(MethodSlotCoated, "coat_t", p.CoatT); err != nil {
		return nil, err
	}
	// Coating top must stay strictly below the cell top.
	if err := validateFits(MethodSlotCoated, "rib_h+coat_t", p.RibH+p.CoatT, "dy/2", p.DY/2); err != nil {
		return nil, err
	}

	lc := resolveDensities(p, cfg)

	slabTop := -p.DY / 2
	slabBot := slabTop - p.SlabH
	ribTop := slabTop + p.RibH
	coatTop := ribTop + p.CoatT
	cellBot := -(p.DY + p.SlabH)
	slabL := (p.D - p.SlabW) / 2
	slabR := slabL + p.SlabW
	railOneL := p.D/2 - p.SlotW/2 - p.RailW
	railOneR := p.D/2 - p.SlotW/2
	railTwoL := p.D/2 + p.SlotW/2
	railTwoR := p.D/2 + p.SlotW/2 + p.RailW

	s := newSketch()

	// Points, top row to bottom row (24 total).
	nw := s.point(0, 0, lc.bkg)
	t1 := s.point(railOneL, 0, lc.bkg)
	t4 := s.point(railTwoR, 0, lc.bkg)
	ne := s.point(p.D, 0, lc.bkg)
	c1 := s.point(railOneL, coatTop, lc.iface)
	c2 := s.point(railTwoR, coatTop, lc.iface)
	a1t := s.point(railOneL, ribTop, lc.core)
	a2t := s.point(railOneR, ribTop, lc.core)
	b1t := s.point(railTwoL, ribTop, lc.core)
	b2t := s.point(railTwoR, ribTop, lc.core)
	lw1 := s.point(0, slabTop, lc.bkg)
	stl := s.point(slabL, slabTop, lc.iface)
	a1 := s.point(railOneL, slabTop, lc.core)
	a2 := s.point(railOneR, slabTop, lc.core)
	b1 := s.point(railTwoL, slabTop, lc.core)
	b2 := s.point(railTwoR, slabTop, lc.core)
	str := s.point(slabR, slabTop, lc.iface)
	rw1 := s.point(p.D, slabTop, lc.bkg)
	lw2 := s.point(0, slabBot, lc.bkg)
	sbl := s.point(slabL, slabBot, lc.iface)
	sbr := s.point(slabR, slabBot, lc.iface)
	rw2 := s.point(p.D, slabBot, lc.bkg)
	sw := s.point(0, cellBot, lc.bkg)
	se := s.point(p.D, cellBot, lc.bkg)

	// Outer boundary lines.
	lt1 := s.line(nw, t1)
	lt2 := s.line(t1, t4)
	lt3 := s.line(t4, ne)
	ll1 := s.line(nw, lw1)
	ll2 := s.line(lw1, lw2)
	ll3 := s.line(lw2, sw)
	lr1 := s.line(ne, rw1)
	lr2 := s.line(rw1, rw2)
	lr3 := s.line(rw2, se)
	lb := s.line(sw, se)

	// Slab-top row, split by rail and slot footprints.
	s1 := s.line(lw1, stl)
	s2 := s.line(stl, a1)
	s3 := s.line(a1, a2)
	s4 := s.line(a2, b1)
	s5 := s.line(b1, b2)
	s6 := s.line(b2, str)
	s7 := s.line(str, rw1)

	// Rail sides, rail tops and the slot top edge.
	ra1 := s.line(a1, a1t)
	raT := s.line(a1t, a2t)
	ra2 := s.line(a2, a2t)
	rb1 := s.line(b1, b1t)
	rbT := s.line(b1t, b2t)
	rb2 := s.line(b2, b2t)
	q := s.line(a2t, b1t)

	// Coating perimeter and the verticals up to the cell top.
	cL := s.line(c1, a1t)
	cT := s.line(c1, c2)
	cR := s.line(c2, b2t)
	v1 := s.line(t1, c1)
	v2 := s.line(t4, c2)

	// Slab sides and slab-bottom row.
	sl1 := s.line(stl, sbl)
	sl2 := s.line(str, sbr)
	x1 := s.line(lw2, sbl)
	x2 := s.line(sbl, sbr)
	x3 := s.line(sbr, rw2)

	// Region loops, counter-clockwise.
	railOne := s.loop(s3.Fwd(), ra2.Fwd(), raT.Rev(), ra1.Rev())
	railTwo := s.loop(s5.Fwd(), rb2.Fwd(), rbT.Rev(), rb1.Rev())
	slotLoop := s.loop(s4.Fwd(), rb1.Fwd(), q.Rev(), ra2.Rev())
	coatLoop := s.loop(raT.Fwd(), q.Fwd(), rbT.Fwd(), cR.Rev(), cT.Rev(), cL.Fwd())
	slabLoop := s.loop(x2.Fwd(), sl2.Rev(), s6.Rev(), s5.Rev(), s4.Rev(), s3.Rev(), s2.Rev(), sl1.Fwd())
	bgAbove := s.loop(cT.Fwd(), v2.Rev(), lt2.Rev(), v1.Fwd())
	bgLeft := s.loop(s1.Fwd(), s2.Fwd(), ra1.Fwd(), cL.Rev(), v1.Rev(), lt1.Rev(), ll1.Fwd())
	bgRight := s.loop(s6.Fwd(), s7.Fwd(), lr1.Rev(), lt3.Rev(), v2.Fwd(), cR.Fwd(), rb2.Rev())
	bgLowerLeft := s.loop(x1.Fwd(), sl1.Rev(), s1.Rev(), ll2.Fwd())
	bgLowerRight := s.loop(x3.Fwd(), lr2.Rev(), s7.Rev(), sl2.Fwd())
	bgBottom := s.loop(lb.Fwd(), lr3.Rev(), x3.Rev(), x2.Rev(), x1.Rev(), ll3.Fwd())

	// Surfaces, one per loop.
	railOneSurf := s.surface(railOne)
	railTwoSurf := s.surface(railTwo)
	slotSurf := s.surface(slotLoop)
	coatSurf := s.surface(coatLoop)
	slabSurf := s.surface(slabLoop)
	sAbove := s.surface(bgAbove)
	sLeft := s.surface(bgLeft)
	sRight := s.surface(bgRight)
	sLowerLeft := s.surface(bgLowerLeft)
	sLowerRight := s.surface(bgLowerRight)
	sBottom := s.surface(bgBottom)

	// Physical groups: material surfaces, then the boundary partition.
	s.tagSurfaces(TagBackground, sAbove, sLeft, sRight, sLowerLeft, sLowerRight, sBottom)
	s.tagSurfaces(TagSlab, slabSurf)
	s.tagSurfaces(TagCore, railOneSurf, railTwoSurf)
	s.tagSurfaces(TagSlot, slotSurf)
	s.tagSurfaces(TagCoating, coatSurf)
	s.tagLines(TagBoundaryTop, lt1, lt2, lt3)
	s.tagLines(TagBoundaryBottom, lb)
	s.tagLines(TagBoundaryLeft, ll1, ll2, ll3)
	s.tagLines(TagBoundaryRight, lr1, lr2, lr3)

	return s.done(MethodSlotCoated)
}

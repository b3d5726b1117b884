// SPDX-License-Identifier: MIT
// Package: wgmesh/builder
//
// impl_slot.go — slot waveguide handler: two rails separated by a low-index
// gap, sitting on a finite slab.
//
// Canonical layout (24 points, 35 lines, 12 surfaces):
//
//	NW ─ T1 ─ T2 ─── T3 ─ T4 ─ NE       y = 0
//	│     │    │      │    │     │
//	│    A1t──A2t────B1t──B2t    │      y = ribTop
//	│     │███│ slot │███│       │      rails: RailW × RibH each
//	LW1─STL┌──┴──────┴──┐STR──RW1       y = slabTop = -dy/2
//	│      │    slab    │        │
//	LW2─SBL└────────────┘SBR──RW2       y = slabBot
//	│                            │
//	SW ───────────────────────── SE     y = cellBot
//
// Rails and slot are centered on x = d/2: the slot spans SlotW, each rail
// RailW, all of height RibH on the slab surface. The slot gap is its own
// tagged surface so the solver can assign it a distinct material. The
// background above splits into three strips (over each rail and over the
// slot) plus the flanking and sub-slab regions.
//
// Densities: outer boundary lc_bkg; slab corners lc_bkg/lc2; rail and slot
// corners lc_bkg/lc3.
//
// Complexity: O(1) — fixed entity counts.

package builder

import "github.com/katalvlaran/wgmesh/geom"

// buildSlot validates and emits the slot family.
func buildSlot(p Params, cfg builderConfig) (*geom.Geometry, error) {
	if err := validateSlotParams(MethodSlot, p, cfg); err != nil {
		return nil, err
	}

	return emitSlot(MethodSlot, p, cfg)
}

// validateSlotParams enforces the slot-family contract: a valid cell and
// slab, positive rails and gap, the rail pair strictly inside the slab,
// and rails that stay strictly below the cell top.
func validateSlotParams(method string, p Params, cfg builderConfig) error {
	if err := validateCell(method, p, cfg); err != nil {
		return err
	}
	if err := validateSlab(method, p); err != nil {
		return err
	}
	if err := validatePositive(method, "rail_w", p.RailW); err != nil {
		return err
	}
	if err := validatePositive(method, "slot_w", p.SlotW); err != nil {
		return err
	}
	if err := validatePositive(method, "rib_h", p.RibH); err != nil {
		return err
	}
	if err := validateFits(method, "2*rail_w+slot_w", 2*p.RailW+p.SlotW, "slab_w", p.SlabW); err != nil {
		return err
	}

	return validateFits(method, "rib_h", p.RibH, "dy/2", p.DY/2)
}

// emitSlot lays out the uncoated slot cell.
func emitSlot(method string, p Params, cfg builderConfig) (*geom.Geometry, error) {
	lc := resolveDensities(p, cfg)

	slabTop := -p.DY / 2
	slabBot := slabTop - p.SlabH
	ribTop := slabTop + p.RibH
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
	t2 := s.point(railOneR, 0, lc.bkg)
	t3 := s.point(railTwoL, 0, lc.bkg)
	t4 := s.point(railTwoR, 0, lc.bkg)
	ne := s.point(p.D, 0, lc.bkg)
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
	lt2 := s.line(t1, t2)
	lt3 := s.line(t2, t3)
	lt4 := s.line(t3, t4)
	lt5 := s.line(t4, ne)
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

	// Verticals splitting the background above rails and slot.
	v1 := s.line(t1, a1t)
	v2 := s.line(t2, a2t)
	v3 := s.line(t3, b1t)
	v4 := s.line(t4, b2t)

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
	slabLoop := s.loop(x2.Fwd(), sl2.Rev(), s6.Rev(), s5.Rev(), s4.Rev(), s3.Rev(), s2.Rev(), sl1.Fwd())
	bgOverRailOne := s.loop(raT.Fwd(), v2.Rev(), lt2.Rev(), v1.Fwd())
	bgOverSlot := s.loop(q.Fwd(), v3.Rev(), lt3.Rev(), v2.Fwd())
	bgOverRailTwo := s.loop(rbT.Fwd(), v4.Rev(), lt4.Rev(), v3.Fwd())
	bgLeft := s.loop(s1.Fwd(), s2.Fwd(), ra1.Fwd(), v1.Rev(), lt1.Rev(), ll1.Fwd())
	bgRight := s.loop(s6.Fwd(), s7.Fwd(), lr1.Rev(), lt5.Rev(), v4.Fwd(), rb2.Rev())
	bgLowerLeft := s.loop(x1.Fwd(), sl1.Rev(), s1.Rev(), ll2.Fwd())
	bgLowerRight := s.loop(x3.Fwd(), lr2.Rev(), s7.Rev(), sl2.Fwd())
	bgBottom := s.loop(lb.Fwd(), lr3.Rev(), x3.Rev(), x2.Rev(), x1.Rev(), ll3.Fwd())

	// Surfaces, one per loop.
	railOneSurf := s.surface(railOne)
	railTwoSurf := s.surface(railTwo)
	slotSurf := s.surface(slotLoop)
	slabSurf := s.surface(slabLoop)
	sOverOne := s.surface(bgOverRailOne)
	sOverSlot := s.surface(bgOverSlot)
	sOverTwo := s.surface(bgOverRailTwo)
	sLeft := s.surface(bgLeft)
	sRight := s.surface(bgRight)
	sLowerLeft := s.surface(bgLowerLeft)
	sLowerRight := s.surface(bgLowerRight)
	sBottom := s.surface(bgBottom)

	// Physical groups: material surfaces, then the boundary partition.
	s.tagSurfaces(TagBackground, sOverOne, sOverSlot, sOverTwo, sLeft, sRight, sLowerLeft, sLowerRight, sBottom)
	s.tagSurfaces(TagSlab, slabSurf)
	s.tagSurfaces(TagCore, railOneSurf, railTwoSurf)
	s.tagSurfaces(TagSlot, slotSurf)
	s.tagLines(TagBoundaryTop, lt1, lt2, lt3, lt4, lt5)
	s.tagLines(TagBoundaryBottom, lb)
	s.tagLines(TagBoundaryLeft, ll1, ll2, ll3)
	s.tagLines(TagBoundaryRight, lr1, lr2, lr3)

	return s.done(method)
}

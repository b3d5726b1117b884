// SPDX-License-Identifier: MIT
// Package: wgmesh/builder
//
// impl_rectangular.go — rectangular waveguide handler.
//
// Canonical layout (13 points, 16 lines, 5 surfaces):
//
//	NW ── TL ─── TR ── NE        y = 0
//	│      │      │      │
//	│    ITL──────ITR    │       y = -(dy - rib_h)/2
//	│      │  ⊙   │      │       ⊙ embedded center point (lc3 hint)
//	│    IBL──────IBR    │
//	│      │      │      │
//	SW ── BL ─── BR ── SE        y = -dy
//
// A RibW × RibH inclusion centered in the d × dy cell; the background is
// sliced by the verticals through the inclusion sides into four simply-
// connected regions (left, right, above, below). The inclusion center is
// embedded as a mesh-constraint point carrying the lc_bkg/lc3 hint, the
// literal "center refinement" of the historical templates.
//
// Complexity: O(1) — fixed entity counts.

package builder

import "github.com/katalvlaran/wgmesh/geom"

// buildRectangular validates and emits the rectangular waveguide family.
func buildRectangular(p Params, cfg builderConfig) (*geom.Geometry, error) {
	if err := validateCell(MethodRectangular, p, cfg); err != nil {
		return nil, err
	}
	if err := validatePositive(MethodRectangular, "rib_w", p.RibW); err != nil {
		return nil, err
	}
	if err := validatePositive(MethodRectangular, "rib_h", p.RibH); err != nil {
		return nil, err
	}
	if err := validateFits(MethodRectangular, "rib_w", p.RibW, "d", p.D); err != nil {
		return nil, err
	}
	if err := validateFits(MethodRectangular, "rib_h", p.RibH, "dy", p.DY); err != nil {
		return nil, err
	}

	lc := resolveDensities(p, cfg)

	incL := (p.D - p.RibW) / 2
	incR := incL + p.RibW
	incTop := -(p.DY - p.RibH) / 2
	incBot := incTop - p.RibH

	s := newSketch()

	// Points, top row to bottom row, center last (13 total).
	nw := s.point(0, 0, lc.bkg)
	tl := s.point(incL, 0, lc.bkg)
	tr := s.point(incR, 0, lc.bkg)
	ne := s.point(p.D, 0, lc.bkg)
	itl := s.point(incL, incTop, lc.iface)
	itr := s.point(incR, incTop, lc.iface)
	ibl := s.point(incL, incBot, lc.iface)
	ibr := s.point(incR, incBot, lc.iface)
	sw := s.point(0, -p.DY, lc.bkg)
	bl := s.point(incL, -p.DY, lc.bkg)
	br := s.point(incR, -p.DY, lc.bkg)
	se := s.point(p.D, -p.DY, lc.bkg)
	center := s.point(p.D/2, (incTop+incBot)/2, lc.core)

	// Outer boundary lines.
	t1 := s.line(nw, tl)
	t2 := s.line(tl, tr)
	t3 := s.line(tr, ne)
	left := s.line(nw, sw)
	right := s.line(ne, se)
	b1 := s.line(sw, bl)
	b2 := s.line(bl, br)
	b3 := s.line(br, se)

	// Verticals through the inclusion sides, and the inclusion perimeter.
	va1 := s.line(tl, itl)
	va2 := s.line(tr, itr)
	vb1 := s.line(bl, ibl)
	vb2 := s.line(br, ibr)
	i1 := s.line(ibl, ibr)
	i2 := s.line(ibr, itr)
	i3 := s.line(itr, itl)
	i4 := s.line(itl, ibl)

	// Region loops, counter-clockwise.
	coreLoop := s.loop(i1.Fwd(), i2.Fwd(), i3.Fwd(), i4.Fwd())
	aboveLoop := s.loop(i3.Rev(), va2.Rev(), t2.Rev(), va1.Fwd())
	belowLoop := s.loop(b2.Fwd(), vb2.Fwd(), i1.Rev(), vb1.Rev())
	leftLoop := s.loop(b1.Fwd(), vb1.Fwd(), i4.Rev(), va1.Rev(), t1.Rev(), left.Fwd())
	rightLoop := s.loop(b3.Fwd(), right.Rev(), t3.Rev(), va2.Fwd(), i2.Rev(), vb2.Rev())

	// Surfaces; the inclusion center is a mesh-constraint node of the core.
	coreSurf := s.surface(coreLoop)
	aboveSurf := s.surface(aboveLoop)
	belowSurf := s.surface(belowLoop)
	leftSurf := s.surface(leftLoop)
	rightSurf := s.surface(rightLoop)
	s.embed(coreSurf, center)

	// Physical groups: material surfaces, then the boundary partition.
	s.tagSurfaces(TagBackground, aboveSurf, belowSurf, leftSurf, rightSurf)
	s.tagSurfaces(TagCore, coreSurf)
	s.tagLines(TagBoundaryTop, t1, t2, t3)
	s.tagLines(TagBoundaryBottom, b1, b2, b3)
	s.tagLines(TagBoundaryLeft, left)
	s.tagLines(TagBoundaryRight, right)

	return s.done(MethodRectangular)
}

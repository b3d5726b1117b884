// SPDX-License-Identifier: MIT
// Package: wgmesh/builder
//
// helpers.go — shared emission machinery for the topology handlers.
//
// Design:
//   • densities resolves the three-level mesh-density scheme once per build.
//   • sketch wraps a geom.Geometry with sticky-error semantics (first
//     failure wins, later calls become no-ops), letting handlers chain the
//     dozens of emissions of a cross-section without per-call ceremony.
//     Handlers validate parameters BEFORE sketching, so a sketch error is
//     an internal consistency failure, not a user mistake.

package builder

import "github.com/katalvlaran/wgmesh/geom"

// densities carries the resolved mesh-density hints of one build.
type densities struct {
	// bkg is applied to outer unit-cell boundary points.
	bkg float64
	// iface is applied to material-interface points (slab, coating).
	iface float64
	// core is applied to the waveguiding feature points (rib, rails, slot)
	// and to embedded center points.
	core float64
}

// resolveDensities computes the effective hints from the density controls.
// With auto mode and LcBkg == 0 every hint is the AutoDensity sentinel.
// Effective values: bkg = LcBkg, iface = LcBkg/Lc2, core = LcBkg/Lc3.
// Complexity: O(1).
func resolveDensities(p Params, cfg builderConfig) densities {
	if cfg.autoDensity && p.LcBkg == 0 {
		return densities{bkg: AutoDensity, iface: AutoDensity, core: AutoDensity}
	}

	return densities{
		bkg:   p.LcBkg,
		iface: p.LcBkg / p.Lc2,
		core:  p.LcBkg / p.Lc3,
	}
}

// sketch is a sticky-error wrapper over the geometry arena. After the
// first failure every subsequent call returns the zero handle and does
// nothing; done() reports the recorded error with handler context.
type sketch struct {
	g   *geom.Geometry
	err error
}

// newSketch starts a sketch over a fresh arena.
func newSketch() *sketch {
	return &sketch{g: geom.NewGeometry()}
}

// point emits a point, recording the first failure.
func (s *sketch) point(x, y, lc float64) geom.PointID {
	if s.err != nil {
		return 0
	}
	id, err := s.g.AddPoint(x, y, lc)
	s.err = err

	return id
}

// line emits a directed line, recording the first failure.
func (s *sketch) line(a, b geom.PointID) geom.LineID {
	if s.err != nil {
		return 0
	}
	id, err := s.g.AddLine(a, b)
	s.err = err

	return id
}

// loop emits a closed loop, recording the first failure.
func (s *sketch) loop(refs ...geom.CurveRef) geom.LoopID {
	if s.err != nil {
		return 0
	}
	id, err := s.g.AddLoop(refs...)
	s.err = err

	return id
}

// surface emits a plane surface, recording the first failure.
func (s *sketch) surface(outer geom.LoopID, holes ...geom.LoopID) geom.SurfaceID {
	if s.err != nil {
		return 0
	}
	id, err := s.g.AddSurface(outer, holes...)
	s.err = err

	return id
}

// embed registers a mesh-constraint point inside a surface.
func (s *sketch) embed(sf geom.SurfaceID, p geom.PointID) {
	if s.err != nil {
		return
	}
	s.err = s.g.EmbedPoint(sf, p)
}

// tagLines attaches a physical line group.
func (s *sketch) tagLines(name string, ids ...geom.LineID) {
	if s.err != nil {
		return
	}
	s.err = s.g.TagLines(name, ids...)
}

// tagSurfaces attaches a physical surface group.
func (s *sketch) tagSurfaces(name string, ids ...geom.SurfaceID) {
	if s.err != nil {
		return
	}
	s.err = s.g.TagSurfaces(name, ids...)
}

// done validates the finished geometry and hands it over, or reports the
// first recorded failure wrapped with the handler method name.
func (s *sketch) done(method string) (*geom.Geometry, error) {
	if s.err != nil {
		return nil, builderErrorf(method, s.err, "geometry emission failed")
	}
	if err := s.g.Validate(); err != nil {
		return nil, builderErrorf(method, err, "geometry validation failed")
	}

	return s.g, nil
}

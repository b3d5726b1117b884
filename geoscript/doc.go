// Package geoscript renders a finished geom.Geometry as the textual
// geometry description consumed by the gmsh mesh generator (.geo syntax):
// Point, Line, Line Loop, Plane Surface, embedded-point and Physical
// declarations, in an order where every referenced id is declared before
// its first use.
//
// The encoder is deterministic: equal geometries produce byte-identical
// scripts, so .geo output is safe to golden-test and to diff across
// parameter sweeps. It performs no validation of its own — geometries
// built through wgmesh/builder arrive fully validated, and hand-assembled
// arenas should call Geometry.Validate before serialization.
package geoscript

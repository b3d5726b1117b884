// Package wgmesh builds mesh-ready planar cross-section geometries for
// periodic optical/acoustic waveguide simulations — from a handful of
// physical dimensions to a fully tagged gmsh geometry description.
//
// 🚀 What is wgmesh?
//
//	A small, deterministic, dependency-light library that brings together:
//		• Geometry arena: points, lines, loops, surfaces with typed handles
//		• Topology builders: rectangular, rib-on-slab, trapezoidal rib,
//		  slot and coated-slot unit cells
//		• Physical tagging: material surfaces & boundary edge groups for
//		  the downstream finite-element solver
//		• .geo serialization: gmsh-compatible textual output
//
// ✨ Why choose wgmesh?
//
//   - Fail-fast validation – degenerate dimensions never reach the mesher
//   - Deterministic output – identical parameters ⇒ identical geometry
//   - Pure Go – no cgo, no hidden state, trivially parallel sweeps
//   - Extensible – add new cross-section families behind one dispatch table
//
// Under the hood, everything is organized under three subpackages:
//
//	geom/      — arena-style geometry context: typed IDs, loops, surfaces,
//	             physical groups, consistency validation
//	builder/   — parametric cross-section handlers + parameter validation
//	geoscript/ — gmsh .geo text encoding of a finished geometry
//
// Quick ASCII example (rib on slab, one unit cell):
//
//	┌─────┬──┬─────┐
//	│     │██│     │   ██ rib (core)
//	├──┌──┴──┴──┐──┤
//	│  │  slab  │  │
//	├──└────────┘──┤
//	└──────────────┘
//
// The cell is split into simply-connected surfaces, each tagged with a
// material role (background, slab, core, ...), and the outer boundary is
// partitioned into top/bottom/left/right edge groups for boundary markers.
//
//	go get github.com/katalvlaran/wgmesh/builder
package wgmesh

// Package builder converts a named waveguide cross-section topology and a
// small set of physical dimensions into a complete, tagged, mesh-ready
// planar geometry (a geom.Geometry) for an external mesh generator and
// finite-element solver.
//
// The package offers the following key components:
//
//   - The orchestrator:
//     – Build(kind, params, opts...): resolves options, validates the
//     parameter set, runs the matching topology handler, and returns a
//     fully validated geometry. Pure and deterministic: identical inputs
//     yield identical geometries.
//   - Topology handlers (impl_*.go), one per cross-section family:
//     – Rectangular:    a centered rectangular waveguide in the unit cell.
//     – Rib:            a rectangular rib on a finite slab.
//     – TrapezoidalRib: a rib with distinct top and bottom widths.
//     – Slot:           two rails separated by a slot gap, on a slab.
//     – SlotCoated:     the slot structure under a conformal coating layer.
//   - Configuration primitives:
//     – Params:        the flat, template-style parameter set (d, dy,
//     slab_w, rib_w, lc_bkg, lc2, lc3, ...).
//     – BuilderOption: functional options resolved into an immutable
//     builderConfig before construction begins.
//   - Parameter files:
//     – FromYAML: decodes a topology selector plus parameter mapping from
//     a YAML document, for scripted parameter sweeps.
//
// Guarantees:
//
//   - Fail-fast validation: degenerate dimensions (zero widths, features
//     exceeding their container, rib wider than slab) return
//     ErrInvalidParameter before any geometry is emitted; the builder
//     never clamps silently and never returns a partial geometry.
//   - Closed, consistently oriented loops: all region loops are emitted
//     counter-clockwise and are verified closed by the geom arena.
//   - Complete tagging: every surface carries exactly one material tag
//     (background, slab, core, slot, coating) and the outer unit-cell
//     boundary is partitioned into top/bottom/left/right line groups.
//   - Mesh-density propagation: outer boundary points carry lc_bkg,
//     material interfaces lc_bkg/lc2, the core region lc_bkg/lc3; with
//     WithAutoDensity and lc_bkg = 0 every hint is 0 ("mesher decides").
//
// See individual handler documentation for the exact point layout and the
// derived-quantity formulas of each topology.
package builder

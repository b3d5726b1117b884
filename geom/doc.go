// Package geom provides the arena-style geometry context that topology
// builders assemble cross-section geometries into: uniquely numbered
// points, directed lines, closed line loops, plane surfaces (optionally
// with holes and embedded mesh-constraint points), and named physical
// groups tagging lines or surfaces with a boundary or material role.
//
// The package offers the following key components:
//
//   - Typed handles:
//     – PointID / LineID / LoopID / SurfaceID: opaque 1-based identifiers
//     allocated monotonically per kind within one Geometry instance.
//     – CurveRef: a signed line reference (LineID.Fwd / LineID.Rev)
//     encoding traversal direction inside a loop.
//   - The Geometry arena:
//     – AddPoint / AddLine / AddLoop / AddSurface / EmbedPoint mutators,
//     each validating its inputs before allocating an id.
//     – TagLines / TagSurfaces attaching physical group names.
//     – Validate performing the final whole-geometry invariant sweep.
//     – Read-only accessors returning copies of the entity tables.
//
// Guarantees:
//
//   - No dangling references: every mutator rejects ids that were not
//     previously allocated by the same Geometry.
//   - Closed loops: AddLoop verifies that consecutive curve references
//     chain endpoint-to-startpoint, cyclically, and never revisit a point.
//   - Interior holes: AddSurface verifies every hole vertex lies strictly
//     inside the outer loop's polygon.
//   - Unambiguous tagging: a line or surface belongs to at most one
//     physical group of its kind; Validate additionally requires every
//     surface to be tagged (no untagged region reaches the solver).
//   - All-or-nothing mutation: a failed call leaves the arena unchanged.
//
// Geometry is not safe for concurrent mutation; builders construct one
// instance per invocation, hand it off, and never touch it again, so
// parameter sweeps parallelize across goroutines without locking.
package geom

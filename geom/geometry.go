// SPDX-License-Identifier: MIT
// Package: wgmesh/geom
//
// geometry.go — the Geometry arena: monotonic id allocation, validating
// mutators, physical tagging, and the whole-geometry invariant sweep.
//
// Design contract (strict):
//   - IDs are allocated monotonically per entity kind, starting at 1;
//     handles from one Geometry are meaningless in another.
//   - Every mutator validates before allocating: a failed call returns a
//     sentinel error (wrapped with context) and leaves the arena unchanged.
//   - Determinism: the entity tables preserve insertion order; accessors
//     return copies in that order, so equal build sequences yield deeply
//     equal geometries.
//   - No panics at runtime; callers branch with errors.Is on the sentinels
//     declared in types.go.

package geom

import "fmt"

// minLoopCurves is the smallest number of curves forming a closed polygon.
const minLoopCurves = 3

// Geometry is the arena holding one cross-section geometry under
// construction. The zero value is not usable; call NewGeometry.
type Geometry struct {
	points   []Point
	lines    []Line
	loops    []LineLoop
	surfaces []PlaneSurface

	lineGroups    []LineGroup
	surfaceGroups []SurfaceGroup

	// Reverse indexes guarding the at-most-one-group invariant.
	lineTagged    map[LineID]string
	surfaceTagged map[SurfaceID]string
	lineGroupSet  map[string]int
	surfGroupSet  map[string]int
}

// NewGeometry returns an empty arena ready for one build pass.
// Complexity: O(1).
func NewGeometry() *Geometry {
	return &Geometry{
		lineTagged:    make(map[LineID]string),
		surfaceTagged: make(map[SurfaceID]string),
		lineGroupSet:  make(map[string]int),
		surfGroupSet:  make(map[string]int),
	}
}

// AddPoint allocates a point at (x, y) with local mesh-density hint lc.
// lc must be >= 0; 0 means "no hint".
// Complexity: O(1).
func (g *Geometry) AddPoint(x, y, lc float64) (PointID, error) {
	if lc < 0 {
		return 0, fmt.Errorf("AddPoint(%g, %g): lc=%g: %w", x, y, lc, ErrBadDensity)
	}

	id := PointID(len(g.points) + 1)
	g.points = append(g.points, Point{ID: id, X: x, Y: y, Lc: lc})

	return id, nil
}

// AddLine allocates a directed line from a to b. Both endpoints must have
// been allocated by this Geometry and must differ.
// Complexity: O(1).
func (g *Geometry) AddLine(a, b PointID) (LineID, error) {
	if !g.hasPoint(a) {
		return 0, fmt.Errorf("AddLine: from=%d: %w", a, ErrUnknownPoint)
	}
	if !g.hasPoint(b) {
		return 0, fmt.Errorf("AddLine: to=%d: %w", b, ErrUnknownPoint)
	}
	if a == b {
		return 0, fmt.Errorf("AddLine: from=to=%d: %w", a, ErrDegenerateLine)
	}

	id := LineID(len(g.lines) + 1)
	g.lines = append(g.lines, Line{ID: id, From: a, To: b})

	return id, nil
}

// AddLoop allocates a closed loop from the given signed line references.
// The chain must contain at least three curves, reference only known lines,
// close endpoint-to-startpoint cyclically, and never revisit a point.
// Complexity: O(len(refs)).
func (g *Geometry) AddLoop(refs ...CurveRef) (LoopID, error) {
	if len(refs) < minLoopCurves {
		return 0, fmt.Errorf("AddLoop: %d curves: %w", len(refs), ErrShortLoop)
	}

	// Resolve every reference once; reject unknown lines up front.
	for _, r := range refs {
		if !g.hasLine(r.Line) {
			return 0, fmt.Errorf("AddLoop: line=%d: %w", r.Line, ErrUnknownLine)
		}
	}

	// Walk the chain: end of curve i must be the start of curve i+1, and no
	// start point may repeat (a repeat before closure means self-crossing).
	seen := make(map[PointID]bool, len(refs))
	for i, r := range refs {
		next := refs[(i+1)%len(refs)]
		if g.curveEnd(r) != g.curveStart(next) {
			return 0, fmt.Errorf("AddLoop: curve %d (line %d) ends at point %d, curve %d starts at point %d: %w",
				i, r.Line, g.curveEnd(r), (i+1)%len(refs), g.curveStart(next), ErrOpenLoop)
		}
		start := g.curveStart(r)
		if seen[start] {
			return 0, fmt.Errorf("AddLoop: point %d visited twice: %w", start, ErrSelfCrossingLoop)
		}
		seen[start] = true
	}

	id := LoopID(len(g.loops) + 1)
	curves := make([]CurveRef, len(refs))
	copy(curves, refs)
	g.loops = append(g.loops, LineLoop{ID: id, Curves: curves})

	return id, nil
}

// AddSurface allocates a plane surface bounded by outer, with the given
// hole loops. Every hole vertex must lie strictly inside the outer polygon.
// Complexity: O(H·V·V) for H holes over V-vertex loops (tiny in practice).
func (g *Geometry) AddSurface(outer LoopID, holes ...LoopID) (SurfaceID, error) {
	if !g.hasLoop(outer) {
		return 0, fmt.Errorf("AddSurface: outer=%d: %w", outer, ErrUnknownLoop)
	}

	ring := g.loopPolygon(outer)
	for _, h := range holes {
		if !g.hasLoop(h) {
			return 0, fmt.Errorf("AddSurface: hole=%d: %w", h, ErrUnknownLoop)
		}
		for _, v := range g.loopPolygon(h) {
			if !strictlyInside(v, ring) {
				return 0, fmt.Errorf("AddSurface: hole=%d vertex (%g, %g): %w", h, v.X, v.Y, ErrHoleNotInterior)
			}
		}
	}

	id := SurfaceID(len(g.surfaces) + 1)
	hs := make([]LoopID, len(holes))
	copy(hs, holes)
	g.surfaces = append(g.surfaces, PlaneSurface{ID: id, Outer: outer, Holes: hs})

	return id, nil
}

// EmbedPoint registers p as a mesh-constraint point of surface s; the
// external mesher must place a node there (used for center refinement).
// Complexity: O(1).
func (g *Geometry) EmbedPoint(s SurfaceID, p PointID) error {
	if !g.hasSurface(s) {
		return fmt.Errorf("EmbedPoint: surface=%d: %w", s, ErrUnknownSurface)
	}
	if !g.hasPoint(p) {
		return fmt.Errorf("EmbedPoint: point=%d: %w", p, ErrUnknownPoint)
	}

	sf := &g.surfaces[s-1]
	sf.Embedded = append(sf.Embedded, p)

	return nil
}

// TagLines attaches the named physical group to the given lines.
// A line may belong to at most one line group; names are unique per kind.
// Complexity: O(len(ids)).
func (g *Geometry) TagLines(name string, ids ...LineID) error {
	if name == "" {
		return fmt.Errorf("TagLines: %w", ErrEmptyGroupName)
	}
	if _, dup := g.lineGroupSet[name]; dup {
		return fmt.Errorf("TagLines(%q): %w", name, ErrDuplicateGroup)
	}
	for _, id := range ids {
		if !g.hasLine(id) {
			return fmt.Errorf("TagLines(%q): line=%d: %w", name, id, ErrUnknownLine)
		}
		if prev, tagged := g.lineTagged[id]; tagged {
			return fmt.Errorf("TagLines(%q): line=%d already in %q: %w", name, id, prev, ErrAlreadyTagged)
		}
	}

	group := LineGroup{Name: name, Lines: make([]LineID, len(ids))}
	copy(group.Lines, ids)
	g.lineGroupSet[name] = len(g.lineGroups)
	g.lineGroups = append(g.lineGroups, group)
	for _, id := range ids {
		g.lineTagged[id] = name
	}

	return nil
}

// TagSurfaces attaches the named physical group to the given surfaces.
// A surface may belong to at most one surface group; names are unique.
// Complexity: O(len(ids)).
func (g *Geometry) TagSurfaces(name string, ids ...SurfaceID) error {
	if name == "" {
		return fmt.Errorf("TagSurfaces: %w", ErrEmptyGroupName)
	}
	if _, dup := g.surfGroupSet[name]; dup {
		return fmt.Errorf("TagSurfaces(%q): %w", name, ErrDuplicateGroup)
	}
	for _, id := range ids {
		if !g.hasSurface(id) {
			return fmt.Errorf("TagSurfaces(%q): surface=%d: %w", name, id, ErrUnknownSurface)
		}
		if prev, tagged := g.surfaceTagged[id]; tagged {
			return fmt.Errorf("TagSurfaces(%q): surface=%d already in %q: %w", name, id, prev, ErrAlreadyTagged)
		}
	}

	group := SurfaceGroup{Name: name, Surfaces: make([]SurfaceID, len(ids))}
	copy(group.Surfaces, ids)
	g.surfGroupSet[name] = len(g.surfaceGroups)
	g.surfaceGroups = append(g.surfaceGroups, group)
	for _, id := range ids {
		g.surfaceTagged[id] = name
	}

	return nil
}

// Validate performs the final whole-geometry invariant sweep: every surface
// must belong to exactly one physical surface group. Per-entity invariants
// (closed loops, interior holes, no dangling ids) hold by construction.
// Complexity: O(S).
func (g *Geometry) Validate() error {
	for _, s := range g.surfaces {
		if _, tagged := g.surfaceTagged[s.ID]; !tagged {
			return fmt.Errorf("Validate: surface=%d: %w", s.ID, ErrUntaggedSurface)
		}
	}

	return nil
}

// Points returns a copy of the point table in allocation order.
func (g *Geometry) Points() []Point {
	out := make([]Point, len(g.points))
	copy(out, g.points)

	return out
}

// Lines returns a copy of the line table in allocation order.
func (g *Geometry) Lines() []Line {
	out := make([]Line, len(g.lines))
	copy(out, g.lines)

	return out
}

// Loops returns a copy of the loop table in allocation order.
func (g *Geometry) Loops() []LineLoop {
	out := make([]LineLoop, len(g.loops))
	for i, l := range g.loops {
		curves := make([]CurveRef, len(l.Curves))
		copy(curves, l.Curves)
		out[i] = LineLoop{ID: l.ID, Curves: curves}
	}

	return out
}

// Surfaces returns a copy of the surface table in allocation order.
func (g *Geometry) Surfaces() []PlaneSurface {
	out := make([]PlaneSurface, len(g.surfaces))
	for i, s := range g.surfaces {
		holes := make([]LoopID, len(s.Holes))
		copy(holes, s.Holes)
		emb := make([]PointID, len(s.Embedded))
		copy(emb, s.Embedded)
		out[i] = PlaneSurface{ID: s.ID, Outer: s.Outer, Holes: holes, Embedded: emb}
	}

	return out
}

// LineGroups returns a copy of the physical line groups in creation order.
func (g *Geometry) LineGroups() []LineGroup {
	out := make([]LineGroup, len(g.lineGroups))
	for i, grp := range g.lineGroups {
		lines := make([]LineID, len(grp.Lines))
		copy(lines, grp.Lines)
		out[i] = LineGroup{Name: grp.Name, Lines: lines}
	}

	return out
}

// SurfaceGroups returns a copy of the physical surface groups in creation order.
func (g *Geometry) SurfaceGroups() []SurfaceGroup {
	out := make([]SurfaceGroup, len(g.surfaceGroups))
	for i, grp := range g.surfaceGroups {
		surfs := make([]SurfaceID, len(grp.Surfaces))
		copy(surfs, grp.Surfaces)
		out[i] = SurfaceGroup{Name: grp.Name, Surfaces: surfs}
	}

	return out
}

// NumPoints reports the number of allocated points.
func (g *Geometry) NumPoints() int { return len(g.points) }

// NumLines reports the number of allocated lines.
func (g *Geometry) NumLines() int { return len(g.lines) }

// NumLoops reports the number of allocated loops.
func (g *Geometry) NumLoops() int { return len(g.loops) }

// NumSurfaces reports the number of allocated surfaces.
func (g *Geometry) NumSurfaces() int { return len(g.surfaces) }

// PointAt returns the point record for a handle allocated by this Geometry.
func (g *Geometry) PointAt(id PointID) (Point, error) {
	if !g.hasPoint(id) {
		return Point{}, fmt.Errorf("PointAt: point=%d: %w", id, ErrUnknownPoint)
	}

	return g.points[id-1], nil
}

//-----------------------------------------------------------------------------
// internal helpers
//-----------------------------------------------------------------------------

func (g *Geometry) hasPoint(id PointID) bool {
	return id >= 1 && int(id) <= len(g.points)
}

func (g *Geometry) hasLine(id LineID) bool {
	return id >= 1 && int(id) <= len(g.lines)
}

func (g *Geometry) hasLoop(id LoopID) bool {
	return id >= 1 && int(id) <= len(g.loops)
}

func (g *Geometry) hasSurface(id SurfaceID) bool {
	return id >= 1 && int(id) <= len(g.surfaces)
}

// curveStart resolves the first point visited by a signed line reference.
func (g *Geometry) curveStart(r CurveRef) PointID {
	l := g.lines[r.Line-1]
	if r.Reversed {
		return l.To
	}

	return l.From
}

// curveEnd resolves the last point visited by a signed line reference.
func (g *Geometry) curveEnd(r CurveRef) PointID {
	l := g.lines[r.Line-1]
	if r.Reversed {
		return l.From
	}

	return l.To
}

// loopPolygon lists the loop's vertices in traversal order (start point of
// each curve; valid because loops chain by construction).
func (g *Geometry) loopPolygon(id LoopID) []Point {
	loop := g.loops[id-1]
	poly := make([]Point, len(loop.Curves))
	for i, r := range loop.Curves {
		poly[i] = g.points[g.curveStart(r)-1]
	}

	return poly
}

// strictlyInside reports whether p lies strictly inside the polygon ring,
// via ray casting; points on an edge or vertex count as outside.
func strictlyInside(p Point, ring []Point) bool {
	n := len(ring)
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := ring[i], ring[j]

		// On-segment check: boundary points are not strictly interior.
		if onSegment(p, a, b) {
			return false
		}

		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				inside = !inside
			}
		}
	}

	return inside
}

// onSegment reports whether p lies on the closed segment a-b.
func onSegment(p, a, b Point) bool {
	cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	if cross != 0 {
		return false
	}
	dot := (p.X-a.X)*(b.X-a.X) + (p.Y-a.Y)*(b.Y-a.Y)
	if dot < 0 {
		return false
	}
	sq := (b.X-a.X)*(b.X-a.X) + (b.Y-a.Y)*(b.Y-a.Y)

	return dot <= sq
}

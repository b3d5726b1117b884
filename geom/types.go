// Package geom defines the central Geometry arena together with its typed
// handle and entity types, and the sentinel errors shared by all mutators.
//
// This file declares PointID, LineID, LoopID, SurfaceID, CurveRef, the
// entity records (Point, Line, LineLoop, PlaneSurface, LineGroup,
// SurfaceGroup), and the package sentinel errors.
//
// Errors:
//
//	ErrBadDensity       - negative mesh-density hint.
//	ErrUnknownPoint     - referenced point id was never allocated.
//	ErrUnknownLine      - referenced line id was never allocated.
//	ErrUnknownLoop      - referenced loop id was never allocated.
//	ErrUnknownSurface   - referenced surface id was never allocated.
//	ErrDegenerateLine   - line with coincident endpoints.
//	ErrShortLoop        - loop with fewer than three curves.
//	ErrOpenLoop         - loop curves fail to chain into a closed path.
//	ErrSelfCrossingLoop - loop revisits a point before closing.
//	ErrHoleNotInterior  - hole loop not strictly inside the outer loop.
//	ErrEmptyGroupName   - physical group with an empty name.
//	ErrDuplicateGroup   - physical group name reused within a kind.
//	ErrAlreadyTagged    - entity assigned to a second group of its kind.
//	ErrUntaggedSurface  - surface left without a physical group.
package geom

import "errors"

// Sentinel errors for geometry arena operations.
var (
	// ErrBadDensity indicates a negative local mesh-density hint.
	ErrBadDensity = errors.New("geom: mesh-density hint must be >= 0")

	// ErrUnknownPoint indicates an operation referenced a point id that was
	// never allocated by this Geometry.
	ErrUnknownPoint = errors.New("geom: unknown point id")

	// ErrUnknownLine indicates an operation referenced a non-existent line.
	ErrUnknownLine = errors.New("geom: unknown line id")

	// ErrUnknownLoop indicates an operation referenced a non-existent loop.
	ErrUnknownLoop = errors.New("geom: unknown loop id")

	// ErrUnknownSurface indicates an operation referenced a non-existent surface.
	ErrUnknownSurface = errors.New("geom: unknown surface id")

	// ErrDegenerateLine indicates a line whose endpoints coincide.
	ErrDegenerateLine = errors.New("geom: line endpoints must differ")

	// ErrShortLoop indicates a loop with fewer than three curves.
	ErrShortLoop = errors.New("geom: loop needs at least three curves")

	// ErrOpenLoop indicates loop curves that do not chain into a closed path.
	ErrOpenLoop = errors.New("geom: loop does not close")

	// ErrSelfCrossingLoop indicates a loop that revisits a point before closing.
	ErrSelfCrossingLoop = errors.New("geom: loop revisits a point")

	// ErrHoleNotInterior indicates a hole loop not strictly inside its outer loop.
	ErrHoleNotInterior = errors.New("geom: hole loop must lie strictly inside the outer loop")

	// ErrEmptyGroupName indicates a physical group with an empty name.
	ErrEmptyGroupName = errors.New("geom: physical group name is empty")

	// ErrDuplicateGroup indicates a physical group name reused within its kind.
	ErrDuplicateGroup = errors.New("geom: physical group name already used")

	// ErrAlreadyTagged indicates an entity assigned to two groups of one kind.
	ErrAlreadyTagged = errors.New("geom: entity already belongs to a group")

	// ErrUntaggedSurface indicates a surface left without a physical group.
	ErrUntaggedSurface = errors.New("geom: surface has no physical group")
)

// PointID identifies a point within one Geometry. IDs are 1-based and
// allocated monotonically; the zero value is never a valid handle.
type PointID int

// LineID identifies a directed line within one Geometry (1-based).
type LineID int

// LoopID identifies a closed line loop within one Geometry (1-based).
type LoopID int

// SurfaceID identifies a plane surface within one Geometry (1-based).
type SurfaceID int

// CurveRef is a signed reference to a line inside a loop: the line is
// traversed From→To when forward, To→From when reversed.
type CurveRef struct {
	// Line is the referenced line id.
	Line LineID

	// Reversed selects To→From traversal when true.
	Reversed bool
}

// Fwd returns a forward (From→To) reference to the line.
func (id LineID) Fwd() CurveRef { return CurveRef{Line: id} }

// Rev returns a reversed (To→From) reference to the line.
func (id LineID) Rev() CurveRef { return CurveRef{Line: id, Reversed: true} }

// Signed renders the reference as the conventional signed integer id used
// by mesh-generator input formats: +Line for forward, -Line for reversed.
func (r CurveRef) Signed() int {
	if r.Reversed {
		return -int(r.Line)
	}

	return int(r.Line)
}

// Point is a 2D point with a local mesh-density hint.
//
// Lc is a target local element size for the external mesh generator;
// 0 means "no hint, let the mesher decide".
type Point struct {
	ID PointID
	X  float64
	Y  float64
	Lc float64
}

// Line is a directed straight segment between two previously allocated points.
type Line struct {
	ID   LineID
	From PointID
	To   PointID
}

// LineLoop is an ordered, closed sequence of signed line references forming
// a simple polygon. Curves chain endpoint-to-startpoint, cyclically.
type LineLoop struct {
	ID     LoopID
	Curves []CurveRef
}

// PlaneSurface is a planar region bounded by one outer loop and zero or
// more interior hole loops. Embedded lists mesh-constraint points that the
// mesher must include as nodes inside the surface.
type PlaneSurface struct {
	ID       SurfaceID
	Outer    LoopID
	Holes    []LoopID
	Embedded []PointID
}

// LineGroup is a named physical group of lines (boundary role for the solver).
type LineGroup struct {
	Name  string
	Lines []LineID
}

// SurfaceGroup is a named physical group of surfaces (material role).
type SurfaceGroup struct {
	Name     string
	Surfaces []SurfaceID
}

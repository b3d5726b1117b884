package geom_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/wgmesh/geom"
)

//----------------------------------------------------------------------------//
// Construction helpers
//----------------------------------------------------------------------------//

// square adds an axis-aligned square to g and returns its loop.
// Corners run counter-clockwise from (x0, y0).
func square(t *testing.T, g *geom.Geometry, x0, y0, side, lc float64) geom.LoopID {
	t.Helper()

	var pts [4]geom.PointID
	coords := [4][2]float64{
		{x0, y0}, {x0 + side, y0}, {x0 + side, y0 + side}, {x0, y0 + side},
	}
	for i, c := range coords {
		id, err := g.AddPoint(c[0], c[1], lc)
		if err != nil {
			t.Fatalf("AddPoint(%v) error: %v", c, err)
		}
		pts[i] = id
	}

	var lines [4]geom.LineID
	for i := range pts {
		id, err := g.AddLine(pts[i], pts[(i+1)%4])
		if err != nil {
			t.Fatalf("AddLine error: %v", err)
		}
		lines[i] = id
	}

	loop, err := g.AddLoop(lines[0].Fwd(), lines[1].Fwd(), lines[2].Fwd(), lines[3].Fwd())
	if err != nil {
		t.Fatalf("AddLoop error: %v", err)
	}

	return loop
}

//----------------------------------------------------------------------------//
// Point and Line Tests
//----------------------------------------------------------------------------//

// TestAddPoint_RejectsNegativeDensity verifies the lc >= 0 contract.
func TestAddPoint_RejectsNegativeDensity(t *testing.T) {
	g := geom.NewGeometry()
	if _, err := g.AddPoint(0, 0, -0.5); !errors.Is(err, geom.ErrBadDensity) {
		t.Errorf("AddPoint(lc=-0.5) error = %v; want ErrBadDensity", err)
	}
	if g.NumPoints() != 0 {
		t.Errorf("NumPoints = %d after failed AddPoint; want 0", g.NumPoints())
	}
}

// TestAddLine_Errors verifies endpoint existence and distinctness checks.
func TestAddLine_Errors(t *testing.T) {
	g := geom.NewGeometry()
	p, _ := g.AddPoint(0, 0, 0)

	if _, err := g.AddLine(p, geom.PointID(42)); !errors.Is(err, geom.ErrUnknownPoint) {
		t.Errorf("AddLine(p, 42) error = %v; want ErrUnknownPoint", err)
	}
	if _, err := g.AddLine(p, p); !errors.Is(err, geom.ErrDegenerateLine) {
		t.Errorf("AddLine(p, p) error = %v; want ErrDegenerateLine", err)
	}
}

// TestIDsAreMonotonic verifies 1-based monotonic allocation per kind.
func TestIDsAreMonotonic(t *testing.T) {
	g := geom.NewGeometry()
	a, _ := g.AddPoint(0, 0, 0)
	b, _ := g.AddPoint(1, 0, 0)
	if a != 1 || b != 2 {
		t.Errorf("point ids = %d, %d; want 1, 2", a, b)
	}
	l, _ := g.AddLine(a, b)
	if l != 1 {
		t.Errorf("line id = %d; want 1", l)
	}
}

//----------------------------------------------------------------------------//
// Loop Tests
//----------------------------------------------------------------------------//

// TestAddLoop_ClosedSquare verifies chaining with mixed curve directions.
func TestAddLoop_ClosedSquare(t *testing.T) {
	g := geom.NewGeometry()
	p1, _ := g.AddPoint(0, 0, 0)
	p2, _ := g.AddPoint(1, 0, 0)
	p3, _ := g.AddPoint(1, 1, 0)
	p4, _ := g.AddPoint(0, 1, 0)

	bottom, _ := g.AddLine(p1, p2)
	right, _ := g.AddLine(p2, p3)
	top, _ := g.AddLine(p4, p3)  // deliberately reversed
	left, _ := g.AddLine(p4, p1) // deliberately reversed

	loop, err := g.AddLoop(bottom.Fwd(), right.Fwd(), top.Rev(), left.Fwd())
	if err != nil {
		t.Fatalf("AddLoop error: %v", err)
	}
	if loop != 1 {
		t.Errorf("loop id = %d; want 1", loop)
	}
}

// TestAddLoop_Errors covers the short, unknown, open and crossing cases.
func TestAddLoop_Errors(t *testing.T) {
	g := geom.NewGeometry()
	p1, _ := g.AddPoint(0, 0, 0)
	p2, _ := g.AddPoint(1, 0, 0)
	p3, _ := g.AddPoint(1, 1, 0)
	p4, _ := g.AddPoint(0, 1, 0)

	l12, _ := g.AddLine(p1, p2)
	l23, _ := g.AddLine(p2, p3)
	l34, _ := g.AddLine(p3, p4)
	l41, _ := g.AddLine(p4, p1)
	l13, _ := g.AddLine(p1, p3)

	cases := []struct {
		name string
		refs []geom.CurveRef
		err  error
	}{
		{"TooShort", []geom.CurveRef{l12.Fwd(), l23.Fwd()}, geom.ErrShortLoop},
		{"UnknownLine", []geom.CurveRef{l12.Fwd(), l23.Fwd(), geom.LineID(99).Fwd()}, geom.ErrUnknownLine},
		{"Open", []geom.CurveRef{l12.Fwd(), l23.Fwd(), l41.Fwd()}, geom.ErrOpenLoop},
		// 1→2→3→1→3→4→1 revisits point 1 before closing.
		{"Crossing", []geom.CurveRef{l12.Fwd(), l23.Fwd(), l13.Rev(), l13.Fwd(), l34.Fwd(), l41.Fwd()}, geom.ErrSelfCrossingLoop},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := g.AddLoop(tc.refs...); !errors.Is(err, tc.err) {
				t.Errorf("AddLoop error = %v; want %v", err, tc.err)
			}
		})
	}

	if g.NumLoops() != 0 {
		t.Errorf("NumLoops = %d after failed AddLoop calls; want 0", g.NumLoops())
	}
}

//----------------------------------------------------------------------------//
// Surface Tests
//----------------------------------------------------------------------------//

// TestAddSurface_WithInteriorHole verifies the hole containment invariant.
func TestAddSurface_WithInteriorHole(t *testing.T) {
	g := geom.NewGeometry()
	outer := square(t, g, 0, 0, 4, 0)
	hole := square(t, g, 1, 1, 1, 0)

	if _, err := g.AddSurface(outer, hole); err != nil {
		t.Fatalf("AddSurface(outer, hole) error: %v", err)
	}
}

// TestAddSurface_HoleOutside verifies rejection of non-interior holes.
func TestAddSurface_HoleOutside(t *testing.T) {
	g := geom.NewGeometry()
	outer := square(t, g, 0, 0, 2, 0)
	stray := square(t, g, 5, 5, 1, 0)

	if _, err := g.AddSurface(outer, stray); !errors.Is(err, geom.ErrHoleNotInterior) {
		t.Errorf("AddSurface error = %v; want ErrHoleNotInterior", err)
	}

	// A hole touching the outer boundary is not strictly interior either.
	touching := square(t, g, 0, 0, 1, 0)
	if _, err := g.AddSurface(outer, touching); !errors.Is(err, geom.ErrHoleNotInterior) {
		t.Errorf("AddSurface(touching hole) error = %v; want ErrHoleNotInterior", err)
	}
}

// TestEmbedPoint verifies embedded mesh-constraint point bookkeeping.
func TestEmbedPoint(t *testing.T) {
	g := geom.NewGeometry()
	loop := square(t, g, 0, 0, 2, 0)
	s, _ := g.AddSurface(loop)
	c, _ := g.AddPoint(1, 1, 0.05)

	if err := g.EmbedPoint(s, c); err != nil {
		t.Fatalf("EmbedPoint error: %v", err)
	}
	if err := g.EmbedPoint(geom.SurfaceID(9), c); !errors.Is(err, geom.ErrUnknownSurface) {
		t.Errorf("EmbedPoint(unknown surface) error = %v; want ErrUnknownSurface", err)
	}

	surfs := g.Surfaces()
	if len(surfs) != 1 || len(surfs[0].Embedded) != 1 || surfs[0].Embedded[0] != c {
		t.Errorf("Surfaces()[0].Embedded = %v; want [%d]", surfs[0].Embedded, c)
	}
}

//----------------------------------------------------------------------------//
// Physical Group Tests
//----------------------------------------------------------------------------//

// TestTagging verifies group-name uniqueness and single-membership.
func TestTagging(t *testing.T) {
	g := geom.NewGeometry()
	loop := square(t, g, 0, 0, 1, 0)
	s, _ := g.AddSurface(loop)

	if err := g.TagSurfaces("", s); !errors.Is(err, geom.ErrEmptyGroupName) {
		t.Errorf("TagSurfaces(empty name) error = %v; want ErrEmptyGroupName", err)
	}
	if err := g.TagSurfaces("core", s); err != nil {
		t.Fatalf("TagSurfaces(core) error: %v", err)
	}
	if err := g.TagSurfaces("core", s); !errors.Is(err, geom.ErrDuplicateGroup) {
		t.Errorf("TagSurfaces(core twice) error = %v; want ErrDuplicateGroup", err)
	}
	if err := g.TagSurfaces("slab", s); !errors.Is(err, geom.ErrAlreadyTagged) {
		t.Errorf("TagSurfaces(second group) error = %v; want ErrAlreadyTagged", err)
	}

	lines := g.Lines()
	if err := g.TagLines("top", lines[0].ID); err != nil {
		t.Fatalf("TagLines error: %v", err)
	}
	if err := g.TagLines("bottom", lines[0].ID); !errors.Is(err, geom.ErrAlreadyTagged) {
		t.Errorf("TagLines(reused line) error = %v; want ErrAlreadyTagged", err)
	}
	if err := g.TagLines("left", geom.LineID(77)); !errors.Is(err, geom.ErrUnknownLine) {
		t.Errorf("TagLines(unknown line) error = %v; want ErrUnknownLine", err)
	}
}

// TestValidate verifies the no-untagged-surface sweep.
func TestValidate(t *testing.T) {
	g := geom.NewGeometry()
	loop := square(t, g, 0, 0, 1, 0)
	s, _ := g.AddSurface(loop)

	if err := g.Validate(); !errors.Is(err, geom.ErrUntaggedSurface) {
		t.Errorf("Validate error = %v; want ErrUntaggedSurface", err)
	}
	if err := g.TagSurfaces("core", s); err != nil {
		t.Fatalf("TagSurfaces error: %v", err)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate error = %v; want nil", err)
	}
}

//----------------------------------------------------------------------------//
// Accessor Tests
//----------------------------------------------------------------------------//

// TestAccessorsReturnCopies verifies that callers cannot mutate the arena.
func TestAccessorsReturnCopies(t *testing.T) {
	g := geom.NewGeometry()
	loop := square(t, g, 0, 0, 1, 0.25)
	if _, err := g.AddSurface(loop); err != nil {
		t.Fatalf("AddSurface error: %v", err)
	}

	pts := g.Points()
	pts[0].X = 99
	if again, _ := g.PointAt(1); again.X == 99 {
		t.Error("Points() exposed internal storage")
	}

	loops := g.Loops()
	loops[0].Curves[0] = geom.LineID(42).Rev()
	if g.Loops()[0].Curves[0].Line == 42 {
		t.Error("Loops() exposed internal storage")
	}
}

// TestCurveRefSigned verifies the signed integer rendering of references.
func TestCurveRefSigned(t *testing.T) {
	if got := geom.LineID(7).Fwd().Signed(); got != 7 {
		t.Errorf("Fwd().Signed() = %d; want 7", got)
	}
	if got := geom.LineID(7).Rev().Signed(); got != -7 {
		t.Errorf("Rev().Signed() = %d; want -7", got)
	}
}

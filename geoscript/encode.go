// SPDX-License-Identifier: MIT
// Package: wgmesh/geoscript
//
// encode.go — gmsh .geo serialization of a geometry arena.
//
// Output contract:
//   - Declarations appear in dependency order: points, lines, loops,
//     surfaces, embedded points, physical lines, physical surfaces.
//   - Ids are the arena's own 1-based ids; loop members are rendered as
//     signed line ids (negative = reversed traversal).
//   - Coordinates and densities use the shortest exact float formatting
//     (strconv 'g', 64-bit), z is always 0, every statement ends in ";".
//   - Physical groups use gmsh's named form: Physical Line("top") = {...};

package geoscript

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/wgmesh/geom"
)

// ErrNilGeometry indicates Encode/Marshal received a nil geometry.
var ErrNilGeometry = errors.New("geoscript: nil geometry")

// Encode writes the .geo script for g to w.
// Complexity: O(P + L + S) in the geometry's entity counts.
func Encode(w io.Writer, g *geom.Geometry) error {
	if g == nil {
		return fmt.Errorf("Encode: %w", ErrNilGeometry)
	}

	// Points: Point(id) = {x, y, 0, lc};
	for _, p := range g.Points() {
		if _, err := fmt.Fprintf(w, "Point(%d) = {%s, %s, 0, %s};\n",
			p.ID, ftoa(p.X), ftoa(p.Y), ftoa(p.Lc)); err != nil {
			return fmt.Errorf("Encode: point %d: %w", p.ID, err)
		}
	}

	// Lines: Line(id) = {from, to};
	for _, l := range g.Lines() {
		if _, err := fmt.Fprintf(w, "Line(%d) = {%d, %d};\n", l.ID, l.From, l.To); err != nil {
			return fmt.Errorf("Encode: line %d: %w", l.ID, err)
		}
	}

	// Loops: Line Loop(id) = {±line, ...};
	for _, loop := range g.Loops() {
		if _, err := fmt.Fprintf(w, "Line Loop(%d) = {%s};\n", loop.ID, joinCurves(loop.Curves)); err != nil {
			return fmt.Errorf("Encode: loop %d: %w", loop.ID, err)
		}
	}

	// Surfaces: Plane Surface(id) = {outer, holes...};
	for _, sf := range g.Surfaces() {
		ids := make([]int, 0, 1+len(sf.Holes))
		ids = append(ids, int(sf.Outer))
		for _, h := range sf.Holes {
			ids = append(ids, int(h))
		}
		if _, err := fmt.Fprintf(w, "Plane Surface(%d) = {%s};\n", sf.ID, joinInts(ids)); err != nil {
			return fmt.Errorf("Encode: surface %d: %w", sf.ID, err)
		}
	}

	// Embedded mesh-constraint points: Point{p} In Surface{s};
	for _, sf := range g.Surfaces() {
		for _, p := range sf.Embedded {
			if _, err := fmt.Fprintf(w, "Point{%d} In Surface{%d};\n", p, sf.ID); err != nil {
				return fmt.Errorf("Encode: embed %d in %d: %w", p, sf.ID, err)
			}
		}
	}

	// Physical line groups (boundary roles).
	for _, grp := range g.LineGroups() {
		ids := make([]int, len(grp.Lines))
		for i, id := range grp.Lines {
			ids[i] = int(id)
		}
		if _, err := fmt.Fprintf(w, "Physical Line(%q) = {%s};\n", grp.Name, joinInts(ids)); err != nil {
			return fmt.Errorf("Encode: physical line %q: %w", grp.Name, err)
		}
	}

	// Physical surface groups (material roles).
	for _, grp := range g.SurfaceGroups() {
		ids := make([]int, len(grp.Surfaces))
		for i, id := range grp.Surfaces {
			ids[i] = int(id)
		}
		if _, err := fmt.Fprintf(w, "Physical Surface(%q) = {%s};\n", grp.Name, joinInts(ids)); err != nil {
			return fmt.Errorf("Encode: physical surface %q: %w", grp.Name, err)
		}
	}

	return nil
}

// Marshal renders the .geo script for g as a byte slice.
func Marshal(g *geom.Geometry) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ftoa renders a float with the shortest exact decimal form.
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// joinInts renders ids as "a, b, c".
func joinInts(ids []int) string {
	var buf bytes.Buffer
	for i, id := range ids {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(strconv.Itoa(id))
	}

	return buf.String()
}

// joinCurves renders signed curve references as "1, -2, 3".
func joinCurves(refs []geom.CurveRef) string {
	var buf bytes.Buffer
	for i, r := range refs {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(strconv.Itoa(r.Signed()))
	}

	return buf.String()
}

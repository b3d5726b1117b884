// SPDX-License-Identifier: MIT
// Package: wgmesh/geoscript
//
// example_test.go — runnable documentation for Encode.

package geoscript_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/wgmesh/geom"
	"github.com/katalvlaran/wgmesh/geoscript"
)

// ExampleEncode serializes a hand-built unit square as a .geo script.
func ExampleEncode() {
	g := geom.NewGeometry()

	p1, _ := g.AddPoint(0, 0, 0.1)
	p2, _ := g.AddPoint(1, 0, 0.1)
	p3, _ := g.AddPoint(1, 1, 0.1)
	p4, _ := g.AddPoint(0, 1, 0.1)

	l1, _ := g.AddLine(p1, p2)
	l2, _ := g.AddLine(p2, p3)
	l3, _ := g.AddLine(p3, p4)
	l4, _ := g.AddLine(p4, p1)

	loop, _ := g.AddLoop(l1.Fwd(), l2.Fwd(), l3.Fwd(), l4.Fwd())
	square, _ := g.AddSurface(loop)
	_ = g.TagLines("walls", l1, l2, l3, l4)
	_ = g.TagSurfaces("core", square)

	if err := geoscript.Encode(os.Stdout, g); err != nil {
		fmt.Println("encode failed:", err)
	}

	// Output:
	// Point(1) = {0, 0, 0, 0.1};
	// Point(2) = {1, 0, 0, 0.1};
	// Point(3) = {1, 1, 0, 0.1};
	// Point(4) = {0, 1, 0, 0.1};
	// Line(1) = {1, 2};
	// Line(2) = {2, 3};
	// Line(3) = {3, 4};
	// Line(4) = {4, 1};
	// Line Loop(1) = {1, 2, 3, 4};
	// Plane Surface(1) = {1};
	// Physical Line("walls") = {1, 2, 3, 4};
	// Physical Surface("core") = {1};
}

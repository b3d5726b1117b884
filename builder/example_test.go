// SPDX-License-Identifier: MIT
// Package: wgmesh/builder
//
// example_test.go — runnable documentation for Build and FromYAML.

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/wgmesh/builder"
)

// ExampleBuild constructs a rib-on-slab cross-section and reports its
// entity counts and physical groups.
func ExampleBuild() {
	params := builder.Params{
		D: 1.0, DY: 0.5,
		SlabW: 0.72, SlabH: 0.13,
		RibW: 0.27, RibH: 0.13,
		LcBkg: 1.0, Lc2: 5, Lc3: 10,
	}

	g, err := builder.Build(builder.Rib, params)
	if err != nil {
		fmt.Println("build failed:", err)

		return
	}

	fmt.Println("points:", g.NumPoints())
	fmt.Println("lines:", g.NumLines())
	fmt.Println("surfaces:", g.NumSurfaces())
	for _, grp := range g.SurfaceGroups() {
		fmt.Printf("%s: %d surface(s)\n", grp.Name, len(grp.Surfaces))
	}

	// Output:
	// points: 18
	// lines: 25
	// surfaces: 8
	// background: 6 surface(s)
	// slab: 1 surface(s)
	// core: 1 surface(s)
}

// ExampleFromYAML decodes a sweep document and builds the geometry it
// describes.
func ExampleFromYAML() {
	doc := []byte(`
topology: slot
params:
  d: 1.0
  dy: 0.6
  slab_w: 0.8
  slab_h: 0.1
  rail_w: 0.12
  slot_w: 0.1
  rib_h: 0.12
  lc_bkg: 0.5
  lc2: 5
  lc3: 20
`)

	kind, params, err := builder.FromYAML(doc)
	if err != nil {
		fmt.Println("decode failed:", err)

		return
	}

	g, err := builder.Build(kind, params)
	if err != nil {
		fmt.Println("build failed:", err)

		return
	}

	fmt.Println("topology:", kind)
	fmt.Println("surfaces:", g.NumSurfaces())

	// Output:
	// topology: slot
	// surfaces: 12
}

// SPDX-License-Identifier: MIT
// Package: wgmesh/builder
//
// params.go — the flat parameter set driving every topology handler.
//
// Conventions (match the historical template headers):
//   • All lengths are unit-cell-normalized: the period D is the x-extent,
//     conceptually 1; vertical dimensions are expressed in the same units.
//   • y = 0 is the cell top. For slab topologies the slab top sits at
//     -DY/2, the slab bottom at -(DY/2 + SlabH), and the cell bottom at
//     -(DY + SlabH), so hy = DY/2 + SlabH and slab top = -hy + SlabH.
//   • Density controls: LcBkg is the background characteristic length on
//     the outer boundary; Lc2 and Lc3 are refinement FACTORS — effective
//     interface density is LcBkg/Lc2 and core density LcBkg/Lc3, so larger
//     factors mean a finer mesh.

package builder

// Params supplies every dimension a topology handler may need. Handlers
// read only the fields relevant to their family and validate those; unused
// fields are ignored, so one Params value can drive a mixed sweep.
type Params struct {
	// D is the unit-cell period (x-extent). Required by all topologies.
	D float64 `yaml:"d"`

	// DY is the unit-cell height above the slab structure (total cell
	// height is DY for `rectangular`, DY+SlabH for slab topologies).
	DY float64 `yaml:"dy"`

	// SlabW and SlabH size the slab layer (slab topologies only).
	SlabW float64 `yaml:"slab_w"`
	SlabH float64 `yaml:"slab_h"`

	// RibW and RibH size the rib. For `rectangular`, they size the
	// centered inclusion. For `trapezoidal_rib`, RibW is the bottom width.
	RibW float64 `yaml:"rib_w"`
	RibH float64 `yaml:"rib_h"`

	// RibTopW is the trapezoid top width (`trapezoidal_rib` only).
	RibTopW float64 `yaml:"rib_top_w"`

	// RailW and SlotW size the two rails and the gap between them
	// (`slot` and `slot_coated` only; rails share RibH as their height).
	RailW float64 `yaml:"rail_w"`
	SlotW float64 `yaml:"slot_w"`

	// CoatT is the coating thickness over rails and slot (`slot_coated`).
	CoatT float64 `yaml:"coat_t"`

	// LcBkg is the background mesh-density hint on the outer boundary.
	LcBkg float64 `yaml:"lc_bkg"`

	// Lc2 is the interface refinement factor (effective LcBkg/Lc2).
	Lc2 float64 `yaml:"lc2"`

	// Lc3 is the core refinement factor (effective LcBkg/Lc3).
	Lc3 float64 `yaml:"lc3"`
}

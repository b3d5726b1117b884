// SPDX-License-Identifier: MIT
// Package: wgmesh/builder
//
// topology.go — the closed set of supported cross-section families and the
// Topology -> handler dispatch table.
//
// Adding a family:
//   1. Declare a Topology constant with its template-style name.
//   2. Implement a handler in impl_<name>.go (pure; sentinel errors only).
//   3. Register it in the handlers table below. Build picks it up.

package builder

import "github.com/katalvlaran/wgmesh/geom"

// Topology selects one of the supported cross-section families.
type Topology string

const (
	// Rectangular is a rectangular waveguide centered in the unit cell.
	Rectangular Topology = "rectangular"

	// Rib is a rectangular rib on a finite slab.
	Rib Topology = "rib"

	// TrapezoidalRib is a rib with distinct top and bottom widths on a slab.
	TrapezoidalRib Topology = "trapezoidal_rib"

	// Slot is two rails separated by a slot gap, on a slab.
	Slot Topology = "slot"

	// SlotCoated is the slot structure under a conformal coating layer.
	SlotCoated Topology = "slot_coated"
)

// handler emits one topology family into a fresh arena. Handlers MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit points, lines, loops, surfaces and tags in a fixed documented
//     order so equal inputs yield identical geometries.
//   - Return either a fully validated geometry or nil with an error;
//     partial geometries never escape.
type handler func(p Params, cfg builderConfig) (*geom.Geometry, error)

// handlers is the dispatch table consulted by Build.
var handlers = map[Topology]handler{
	Rectangular:    buildRectangular,
	Rib:            buildRib,
	TrapezoidalRib: buildTrapezoidalRib,
	Slot:           buildSlot,
	SlotCoated:     buildSlotCoated,
}

// ParseTopology maps a template-style topology name onto its Topology
// value; unknown names return ErrUnsupportedTopology.
// Complexity: O(1).
func ParseTopology(name string) (Topology, error) {
	kind := Topology(name)
	if _, ok := handlers[kind]; !ok {
		return "", builderErrorf(MethodBuild, ErrUnsupportedTopology, "topology %q", name)
	}

	return kind, nil
}

// Topologies lists the supported family names in stable (alphabetical)
// order, for CLI help texts and sweep tooling.
func Topologies() []Topology {
	return []Topology{Rectangular, Rib, Slot, SlotCoated, TrapezoidalRib}
}

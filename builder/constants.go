// Package builder defines shared constants used by the topology handlers,
// ensuring consistent physical tag names and validation messages across
// all cross-section families.
package builder

//-----------------------------------------------------------------------------
// Handler Method Name Constants
//   used to prefix errors with the handler name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRectangular is the canonical name for the rectangular handler.
	MethodRectangular = "Rectangular"
	// MethodRib is the canonical name for the rectangular rib-on-slab handler.
	MethodRib = "Rib"
	// MethodTrapezoidalRib is the canonical name for the trapezoidal rib handler.
	MethodTrapezoidalRib = "TrapezoidalRib"
	// MethodSlot is the canonical name for the slot handler.
	MethodSlot = "Slot"
	// MethodSlotCoated is the canonical name for the coated-slot handler.
	MethodSlotCoated = "SlotCoated"
	// MethodBuild is the canonical name for the Build orchestrator.
	MethodBuild = "Build"
	// MethodFromYAML is the canonical name for the YAML parameter decoder.
	MethodFromYAML = "FromYAML"
)

//-----------------------------------------------------------------------------
// Physical Surface Tags (material roles)
//   must match the material-stack convention expected by the solver.
//-----------------------------------------------------------------------------

const (
	// TagBackground marks the cladding/background sub-surfaces.
	TagBackground = "background"
	// TagSlab marks the slab layer surface.
	TagSlab = "slab"
	// TagCore marks the waveguiding rib/rail surfaces.
	TagCore = "core"
	// TagSlot marks the low-index gap surface between the rails.
	TagSlot = "slot"
	// TagCoating marks the conformal coating layer surface.
	TagCoating = "coating"
)

//-----------------------------------------------------------------------------
// Physical Line Tags (boundary roles)
//   the four groups partition the outer unit-cell boundary; the solver maps
//   them onto symmetry or absorbing boundary markers.
//-----------------------------------------------------------------------------

const (
	// TagBoundaryTop marks the outer edges along the cell top (y = 0).
	TagBoundaryTop = "top"
	// TagBoundaryBottom marks the outer edges along the cell bottom.
	TagBoundaryBottom = "bottom"
	// TagBoundaryLeft marks the outer edges along x = 0.
	TagBoundaryLeft = "left"
	// TagBoundaryRight marks the outer edges along x = d.
	TagBoundaryRight = "right"
)

//-----------------------------------------------------------------------------
// Density Defaults
//-----------------------------------------------------------------------------

// AutoDensity is the sentinel hint value meaning "no hint, mesher decides".
// It is only emitted when the builder runs with WithAutoDensity.
const AutoDensity = 0.0

// SPDX-License-Identifier: MIT
// Package: wgmesh/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(kind, params, opts...). Resolves cfg,
//     dispatches to the topology handler, returns a validated geometry.
//   - All topology handlers are implemented in impl_*.go behind the
//     handlers dispatch table (topology.go).
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   - Determinism: same (kind, params, options) ⇒ identical geometry,
//     ids, coordinates and tag order included.
//   - Safety: never panic; return sentinel errors; all-or-nothing output.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgmesh/geom"
)

// Build constructs the tagged cross-section geometry of the requested
// topology family from the given parameter set.
//
// The call is a pure, single-shot transformation: it holds no state across
// invocations and performs no I/O, so concurrent sweeps need no locking.
//
// Errors:
//   - ErrUnsupportedTopology for a kind outside the supported set.
//   - ErrInvalidParameter for degenerate or non-fitting dimensions.
//   - geom sentinels (wrapped) if an internal consistency check trips.
//
// Complexity: O(P + L + S) in the topology's fixed point/line/surface
// counts — effectively constant per call.
func Build(kind Topology, params Params, opts ...BuilderOption) (*geom.Geometry, error) {
	h, ok := handlers[kind]
	if !ok {
		return nil, builderErrorf(MethodBuild, ErrUnsupportedTopology, "topology %q", string(kind))
	}

	// Resolve deterministic builder configuration from functional options.
	cfg := newBuilderConfig(opts...)

	g, err := h(params, cfg)
	if err != nil {
		// Wrap once at the API boundary; handlers already added method context.
		return nil, fmt.Errorf("Build: %w", err)
	}

	return g, nil
}

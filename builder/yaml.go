// SPDX-License-Identifier: MIT
// Package: wgmesh/builder
//
// yaml.go — YAML parameter documents for scripted sweeps.
//
// Document shape (keys follow the historical template constants):
//
//	topology: rib
//	params:
//	  d: 1.0
//	  dy: 0.5
//	  slab_w: 0.72
//	  slab_h: 0.13
//	  rib_w: 0.27
//	  rib_h: 0.13
//	  lc_bkg: 0.1
//	  lc2: 5
//	  lc3: 10
//
// Decoding is strict about the topology selector (unknown names are
// rejected here, not at Build time) but tolerant about dimensions: those
// are validated by the handler, so a sweep driver gets one uniform
// ErrInvalidParameter path for bad numbers.

package builder

import "gopkg.in/yaml.v3"

// buildSpec mirrors one YAML parameter document.
type buildSpec struct {
	Topology string `yaml:"topology"`
	Params   Params `yaml:"params"`
}

// FromYAML decodes a topology selector plus parameter set from one YAML
// document. Malformed YAML returns ErrBadSpec; an unknown topology name
// returns ErrUnsupportedTopology.
// Complexity: O(len(doc)).
func FromYAML(doc []byte) (Topology, Params, error) {
	var spec buildSpec
	if err := yaml.Unmarshal(doc, &spec); err != nil {
		return "", Params{}, builderErrorf(MethodFromYAML, ErrBadSpec, "%v", err)
	}
	if spec.Topology == "" {
		return "", Params{}, builderErrorf(MethodFromYAML, ErrBadSpec, "missing topology selector")
	}

	kind, err := ParseTopology(spec.Topology)
	if err != nil {
		return "", Params{}, err
	}

	return kind, spec.Params, nil
}

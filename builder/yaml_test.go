// SPDX-License-Identifier: MIT
// Package: wgmesh/builder
//
// yaml_test.go — decoding of YAML parameter documents and their handoff
// to Build.

package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgmesh/builder"
)

const ribDoc = `
topology: rib
params:
  d: 1.0
  dy: 0.5
  slab_w: 0.72
  slab_h: 0.13
  rib_w: 0.27
  rib_h: 0.13
  lc_bkg: 1.0
  lc2: 5
  lc3: 10
`

// TestFromYAML_Rib decodes the canonical rib document and builds from it.
func TestFromYAML_Rib(t *testing.T) {
	kind, p, err := builder.FromYAML([]byte(ribDoc))
	require.NoError(t, err)
	assert.Equal(t, builder.Rib, kind)
	assert.Equal(t, 0.72, p.SlabW)
	assert.Equal(t, 0.27, p.RibW)
	assert.Equal(t, 5.0, p.Lc2)

	g, err := builder.Build(kind, p)
	require.NoError(t, err)
	assert.Equal(t, 18, g.NumPoints())
}

// TestFromYAML_Errors pins the failure modes of the decoder.
func TestFromYAML_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"malformed document", "topology: [unterminated", builder.ErrBadSpec},
		{"missing topology", "params:\n  d: 1.0\n", builder.ErrBadSpec},
		{"unknown topology", "topology: hexagonal\n", builder.ErrUnsupportedTopology},
		{"wrong value type", "topology: rib\nparams:\n  d: wide\n", builder.ErrBadSpec},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := builder.FromYAML([]byte(tc.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

// TestFromYAML_UnvalidatedDimensions documents the division of labor: the
// decoder accepts any numbers and leaves dimension checks to the handler.
func TestFromYAML_UnvalidatedDimensions(t *testing.T) {
	kind, p, err := builder.FromYAML([]byte("topology: rib\nparams:\n  d: -1\n"))
	require.NoError(t, err)

	_, err = builder.Build(kind, p)
	assert.True(t, errors.Is(err, builder.ErrInvalidParameter))
}

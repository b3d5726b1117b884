// Package builder provides validation helpers enforcing the parameter
// contracts of the topology handlers.
//
// Each function returns ErrInvalidParameter (wrapped with the handler
// method name and the offending values) when its precondition is violated;
// handlers run all validators before emitting any geometry.
package builder

// validatePositive ensures that the named dimension is strictly positive.
// Complexity: O(1) time and space.
func validatePositive(method, name string, v float64) error {
	if v <= 0 {
		return builderErrorf(method, ErrInvalidParameter, "%s must be > 0, got %g", name, v)
	}

	return nil
}

// validateFits ensures that the inner feature is strictly narrower than its
// container (equality would merge boundaries into a degenerate geometry).
// Complexity: O(1) time and space.
func validateFits(method, inner string, innerV float64, outer string, outerV float64) error {
	if innerV >= outerV {
		return builderErrorf(method, ErrInvalidParameter,
			"%s (%g) must be < %s (%g)", inner, innerV, outer, outerV)
	}

	return nil
}

// validateDensities enforces the mesh-density contract: refinement factors
// are strictly positive, and LcBkg is strictly positive unless the build
// runs in auto-density mode (where 0 means "mesher decides").
// Complexity: O(1) time and space.
func validateDensities(method string, p Params, cfg builderConfig) error {
	if err := validatePositive(method, "lc2", p.Lc2); err != nil {
		return err
	}
	if err := validatePositive(method, "lc3", p.Lc3); err != nil {
		return err
	}
	if cfg.autoDensity {
		if p.LcBkg < 0 {
			return builderErrorf(method, ErrInvalidParameter, "lc_bkg must be >= 0, got %g", p.LcBkg)
		}

		return nil
	}

	return validatePositive(method, "lc_bkg", p.LcBkg)
}

// validateCell enforces the dimensions shared by every topology.
// Complexity: O(1) time and space.
func validateCell(method string, p Params, cfg builderConfig) error {
	if err := validatePositive(method, "d", p.D); err != nil {
		return err
	}
	if err := validatePositive(method, "dy", p.DY); err != nil {
		return err
	}

	return validateDensities(method, p, cfg)
}

// validateSlab enforces the slab contract of the rib/slot families:
// positive slab dimensions with the slab strictly inside the period.
// Complexity: O(1) time and space.
func validateSlab(method string, p Params) error {
	if err := validatePositive(method, "slab_w", p.SlabW); err != nil {
		return err
	}
	if err := validatePositive(method, "slab_h", p.SlabH); err != nil {
		return err
	}

	return validateFits(method, "slab_w", p.SlabW, "d", p.D)
}

package vdi

import (
	"fmt"

	"BoltLab/internal/calc/thread"
)

// Evaluate runs the one-shot pipeline
//
//	Geometry -> Resilience -> LoadFactor -> {Preload, Embedding}
//	         -> WorkingLoad -> {Stress/Utilization, SurfaceCriterion}
//
// over a fully populated JointSpec. Geometry, load-factor and load-case
// errors are fatal and return no state. Clamp loss and overload are not:
// the state comes back complete with the flags set, so a failing design can
// still be diagnosed numerically. Evaluate is pure; independent specs may be
// evaluated concurrently without synchronization.
func Evaluate(spec JointSpec) (DerivedState, error) {
	var st DerivedState

	if err := validate(spec); err != nil {
		return st, err
	}

	// Stage 1: geometry.
	as, err := thread.StressArea(spec.Bolt.D2, spec.Bolt.D3)
	if err != nil {
		return st, errGeometry(StageGeometry, "d2/d3", "%v", err)
	}
	st.As = as

	if spec.Load.DA > 0 {
		phiN, err := EccentricLoadingFactor(spec.Load.N, spec.Load.DA, spec.Stack.DW)
		if err != nil {
			return st, err
		}
		st.PhiN = phiN
	}

	// Stage 2: resiliences.
	if st.DeltaBolt, err = BoltResilience(spec.Stack.LK, st.As, spec.Material.EB); err != nil {
		return st, err
	}
	if st.DeltaParts, err = ClampedPartsResilience(spec.Stack.LK, spec.Stack.DW, spec.Stack.Dh, spec.Stack.EP); err != nil {
		return st, err
	}

	// Stage 3: load distribution.
	if st.Phi, err = LoadFactor(st.DeltaBolt, st.DeltaParts); err != nil {
		return st, err
	}

	// Stage 4: preload and embedding.
	if st.FEmbed, err = EmbeddingLoss(spec.Load.FZSettle, st.DeltaBolt, st.DeltaParts); err != nil {
		return st, err
	}
	if st.FVMin, err = MinimumPreload(spec.Load.FA, spec.Load.FZ, st.Phi, spec.Load.Interfaces); err != nil {
		return st, err
	}
	if st.FVAssembly, err = AssemblyPreload(spec.Load.FMTab, spec.Material.AlphaA, spec.Material.AlphaP,
		spec.Load.DeltaT, spec.Stack.LK, st.DeltaBolt, st.DeltaParts); err != nil {
		return st, err
	}
	st.FV = st.FVAssembly - st.FEmbed

	// Stage 5: working loads.
	st.FSB = BoltForceWorking(st.FV, spec.Load.FA, st.Phi)
	st.FKB = ClampingForceWorking(st.FV, spec.Load.FA, st.Phi)
	if st.FKB <= 0 {
		st.ClampLoss = true
		st.Warnings = append(st.Warnings, "clamp loss: clamping force non-positive under operating load")
	}
	if st.FV < st.FVMin {
		st.Warnings = append(st.Warnings,
			fmt.Sprintf("effective preload %.0f N below required minimum %.0f N", st.FV, st.FVMin))
	}

	// Stage 6: stress, utilization and surface criterion.
	if st.Sigma, err = BoltStress(st.FSB, st.As); err != nil {
		return st, err
	}
	if st.Utilization, st.Verdict, err = UtilizationFactor(st.Sigma, spec.Material.Rp02); err != nil {
		return st, err
	}
	if st.Verdict == VerdictOverload {
		st.Warnings = append(st.Warnings, "overload: bolt stress at or above yield")
	}
	if st.Surface, err = SurfaceCriterion(spec.Load.FX, spec.Load.FY, spec.Load.FZ, st.FKB,
		spec.Bolt.D, spec.Load.Basis, spec.Material.Rm, spec.Material.Rp02); err != nil {
		return st, err
	}
	if !st.Surface.OK {
		st.Warnings = append(st.Warnings, "overload: combined surface criterion above 1")
	}

	return st, nil
}

// validate rejects spec-level inconsistencies before any stage runs, naming
// the offending field.
func validate(spec JointSpec) error {
	b, s, l := spec.Bolt, spec.Stack, spec.Load
	switch {
	case b.P <= 0:
		return errGeometry(StageGeometry, "P", "thread pitch P=%g must be positive", b.P)
	case b.D3 <= 0 || b.D2 <= 0 || b.D <= 0:
		return errGeometry(StageGeometry, "d/d2/d3", "thread diameters must be positive")
	case !(b.D3 < b.D2 && b.D2 < b.D):
		return errGeometry(StageGeometry, "d/d2/d3", "expected d3 < d2 < d, got d3=%g d2=%g d=%g", b.D3, b.D2, b.D)
	case s.LK <= 0:
		return errGeometry(StageGeometry, "lK", "clamped length lK=%g must be positive", s.LK)
	case s.Dh <= 0 || s.DW <= s.Dh:
		return errGeometry(StageGeometry, "dW/dh", "expected dW > dh > 0, got dW=%g dh=%g", s.DW, s.Dh)
	case l.Interfaces < 1:
		return errLoadCase(StageGeometry, "n_interfaces", "interface count %d must be at least 1", l.Interfaces)
	case l.FA < 0 || l.FZ < 0:
		return errLoadCase(StageGeometry, "FA/FZ", "axial loads cannot be negative, got FA=%g FZ=%g", l.FA, l.FZ)
	case spec.Friction.MuG < 0 || spec.Friction.MuG >= 1 || spec.Friction.MuK < 0 || spec.Friction.MuK >= 1:
		return errLoadCase(StageGeometry, "mu_g/mu_k", "friction coefficients must lie in [0,1), got muG=%g muK=%g",
			spec.Friction.MuG, spec.Friction.MuK)
	}
	return nil
}

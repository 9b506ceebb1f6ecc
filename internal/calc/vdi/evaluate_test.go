package vdi_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	vdi "BoltLab/internal/calc/vdi"
)

// m12Joint is a sound M12 8.8 joint used as the baseline across tests.
func m12Joint() vdi.JointSpec {
	return vdi.JointSpec{
		Bolt:     vdi.BoltGeometry{D: 12, D2: 10.863, D3: 9.853, P: 1.75, Alpha: 30},
		Stack:    vdi.ClampedStack{LK: 40, DW: 18, Dh: 13, EP: 210000},
		Material: vdi.MaterialPair{EB: 205000, AlphaA: 1.2e-5, AlphaP: 1.2e-5, Rp02: 640, Rm: 800},
		Friction: vdi.FrictionModel{MuG: 0.12, MuK: 0.14, DKm: 16},
		Load: vdi.LoadCase{
			FA:         3000,
			Interfaces: 1,
			FZSettle:   0.004,
			FMTab:      30000,
		},
	}
}

func TestEvaluateBaseline(t *testing.T) {
	st, err := vdi.Evaluate(m12Joint())
	require.NoError(t, err)

	require.InDelta(t, 84.3, st.As, 0.1)
	require.Greater(t, st.DeltaBolt, 0.0)
	require.Greater(t, st.DeltaParts, 0.0)
	require.Greater(t, st.Phi, 0.0)
	require.Less(t, st.Phi, 1.0)

	// Stage-consistency across the record.
	require.InDelta(t, st.DeltaBolt/(st.DeltaBolt+st.DeltaParts), st.Phi, 1e-12)
	require.InDelta(t, st.FVAssembly-st.FEmbed, st.FV, 1e-9)
	require.InDelta(t, st.FV+st.Phi*3000, st.FSB, 1e-9)
	require.InDelta(t, st.FV-(1-st.Phi)*3000, st.FKB, 1e-9)
	require.InDelta(t, st.FSB/st.As, st.Sigma, 1e-9)
	require.InDelta(t, st.Sigma/640, st.Utilization, 1e-12)

	require.Equal(t, vdi.VerdictOK, st.Verdict)
	require.False(t, st.ClampLoss)
	require.True(t, st.Surface.OK)
	require.Empty(t, st.Warnings)
	require.Zero(t, st.PhiN, "concentric load case must not set the eccentric factor")
}

func TestEvaluateEccentric(t *testing.T) {
	spec := m12Joint()
	spec.Load.DA = 36
	spec.Load.N = 4
	st, err := vdi.Evaluate(spec)
	require.NoError(t, err)
	require.Greater(t, st.PhiN, 0.0)
	require.Less(t, st.PhiN, 1.0)
	require.InDelta(t, 1.0-(18.0/36.0)*(18.0/36.0)*(18.0/36.0)*(18.0/36.0), st.PhiN, 1e-12)
}

func TestEvaluateThermal(t *testing.T) {
	base, err := vdi.Evaluate(m12Joint())
	require.NoError(t, err)

	hot := m12Joint()
	hot.Material.AlphaP = 1.6e-5 // clamped parts expand more than the bolt
	hot.Load.DeltaT = 100
	hotSt, err := vdi.Evaluate(hot)
	require.NoError(t, err)
	require.Greater(t, hotSt.FVAssembly, base.FVAssembly)

	cold := m12Joint()
	cold.Material.AlphaA = 1.6e-5 // bolt outgrows the stack, preload drops
	cold.Load.DeltaT = 100
	coldSt, err := vdi.Evaluate(cold)
	require.NoError(t, err)
	require.Less(t, coldSt.FVAssembly, base.FVAssembly)
}

func TestEvaluateClampLossIsNotFatal(t *testing.T) {
	spec := m12Joint()
	spec.Load.FMTab = 2000
	spec.Load.FA = 20000
	st, err := vdi.Evaluate(spec)
	require.NoError(t, err, "clamp loss must not abort the pipeline")
	require.True(t, st.ClampLoss)
	require.LessOrEqual(t, st.FKB, 0.0)
	require.NotZero(t, st.Sigma, "numbers must still be available for diagnosis")

	found := false
	for _, warn := range st.Warnings {
		if strings.Contains(warn, "clamp loss") {
			found = true
		}
	}
	require.True(t, found, "clamp loss must be surfaced as a warning")
}

func TestEvaluateOverloadIsNotFatal(t *testing.T) {
	spec := m12Joint()
	spec.Load.FMTab = 60000 // far past yield on 84 mm2
	st, err := vdi.Evaluate(spec)
	require.NoError(t, err)
	require.Equal(t, vdi.VerdictOverload, st.Verdict)
	require.GreaterOrEqual(t, st.Utilization, 1.0)
	require.NotEmpty(t, st.Warnings)
}

func TestEvaluateUtilizationMonotonicInFA(t *testing.T) {
	prev := -1.0
	for _, fa := range []float64{0, 1000, 3000, 8000, 15000} {
		spec := m12Joint()
		spec.Load.FA = fa
		st, err := vdi.Evaluate(spec)
		require.NoError(t, err)
		require.Greater(t, st.Utilization, prev, "utilization must grow with FA")
		prev = st.Utilization
	}
}

func TestEvaluateFatalErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*vdi.JointSpec)
		wantErr error
		field   string
	}{
		{
			"inverted thread diameters",
			func(s *vdi.JointSpec) { s.Bolt.D3 = 11.5 },
			vdi.ErrInvalidGeometry, "d/d2/d3",
		},
		{
			"zero pitch",
			func(s *vdi.JointSpec) { s.Bolt.P = 0 },
			vdi.ErrInvalidGeometry, "P",
		},
		{
			"hole at bearing diameter",
			func(s *vdi.JointSpec) { s.Stack.Dh = 18 },
			vdi.ErrInvalidGeometry, "dW/dh",
		},
		{
			"non-positive clamped length",
			func(s *vdi.JointSpec) { s.Stack.LK = 0 },
			vdi.ErrInvalidGeometry, "lK",
		},
		{
			"zero interfaces",
			func(s *vdi.JointSpec) { s.Load.Interfaces = 0 },
			vdi.ErrInvalidLoadCase, "n_interfaces",
		},
		{
			"negative axial load",
			func(s *vdi.JointSpec) { s.Load.FA = -10 },
			vdi.ErrInvalidLoadCase, "FA/FZ",
		},
		{
			"friction out of range",
			func(s *vdi.JointSpec) { s.Friction.MuG = 1.2 },
			vdi.ErrInvalidLoadCase, "mu_g/mu_k",
		},
		{
			"eccentric diameter below bearing",
			func(s *vdi.JointSpec) { s.Load.DA = 10; s.Load.N = 1 },
			vdi.ErrInvalidGeometry, "dA",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec := m12Joint()
			tc.mutate(&spec)
			_, err := vdi.Evaluate(spec)
			require.ErrorIs(t, err, tc.wantErr)

			var je *vdi.JointError
			require.True(t, errors.As(err, &je), "fatal errors must be JointErrors")
			require.Equal(t, tc.field, je.Field, "error must name the offending field")
			require.NotEmpty(t, je.Stage)
		})
	}
}

func TestEvaluateIsPure(t *testing.T) {
	spec := m12Joint()
	first, err := vdi.Evaluate(spec)
	require.NoError(t, err)
	second, err := vdi.Evaluate(spec)
	require.NoError(t, err)
	require.Equal(t, first, second, "identical inputs must give identical outputs")
}

func TestEvaluateConcurrent(t *testing.T) {
	// A sizing sweep is an embarrassingly parallel map; nothing may race.
	spec := m12Joint()
	want, err := vdi.Evaluate(spec)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]vdi.DerivedState, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			st, err := vdi.Evaluate(spec)
			if err == nil {
				results[i] = st
			}
		}(i)
	}
	wg.Wait()
	for _, st := range results {
		require.Equal(t, want, st)
	}
}

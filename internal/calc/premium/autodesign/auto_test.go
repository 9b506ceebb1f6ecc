package autodesign_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"BoltLab/internal/calc/premium/autodesign"
	vdi "BoltLab/internal/calc/vdi"
)

func sweepInput() autodesign.BoltAutoInput {
	return autodesign.BoltAutoInput{
		Stack:    vdi.ClampedStack{LK: 30, DW: 20, Dh: 13, EP: 210000},
		Material: vdi.MaterialPair{EB: 205000, AlphaA: 1.2e-5, AlphaP: 1.2e-5, Rp02: 640, Rm: 800},
		Friction: vdi.FrictionModel{MuG: 0.12, MuK: 0.14, DKm: 16},
		Load:     vdi.LoadCase{FA: 20000, Interfaces: 1, FZSettle: 0.004, FMTab: 25000},
	}
}

func TestBoltPicksSmallestPassingSize(t *testing.T) {
	res, err := autodesign.Bolt(sweepInput())
	require.NoError(t, err)
	// M10 and below run past yield at this preload; M12 is the first to pass.
	require.Equal(t, "M12", res.Size)
	require.Equal(t, vdi.VerdictOK, res.State.Verdict)
	require.False(t, res.State.ClampLoss)
	require.True(t, res.State.Surface.OK)
	require.Less(t, res.Utilization, 0.9)
}

func TestBoltLighterLoadPicksSmallerSize(t *testing.T) {
	heavy, err := autodesign.Bolt(sweepInput())
	require.NoError(t, err)

	in := sweepInput()
	in.Load.FA = 4000
	in.Load.FMTab = 8000
	light, err := autodesign.Bolt(in)
	require.NoError(t, err)
	require.Less(t, light.State.As, heavy.State.As, "lighter case must select a smaller section")
}

func TestBoltNoFeasibleSize(t *testing.T) {
	in := sweepInput()
	in.Load.FA = 5e6
	in.Load.FMTab = 5e6
	_, err := autodesign.Bolt(in)
	require.Error(t, err)
}

func TestBoltRejectsEmptyLoad(t *testing.T) {
	in := sweepInput()
	in.Load.FA = 0
	in.Load.FZ = 0
	_, err := autodesign.Bolt(in)
	require.Error(t, err)
}

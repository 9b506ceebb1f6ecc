package batch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"BoltLab/internal/calc/premium/batch"
	vdi "BoltLab/internal/calc/vdi"
)

func validJoint(fa float64) vdi.JointSpec {
	return vdi.JointSpec{
		Bolt:     vdi.BoltGeometry{D: 12, D2: 10.863, D3: 9.853, P: 1.75, Alpha: 30},
		Stack:    vdi.ClampedStack{LK: 40, DW: 18, Dh: 13, EP: 210000},
		Material: vdi.MaterialPair{EB: 205000, AlphaA: 1.2e-5, AlphaP: 1.2e-5, Rp02: 640, Rm: 800},
		Friction: vdi.FrictionModel{MuG: 0.12, MuK: 0.14, DKm: 16},
		Load:     vdi.LoadCase{FA: fa, Interfaces: 1, FZSettle: 0.004, FMTab: 30000},
	}
}

func TestCalculateJointsEmpty(t *testing.T) {
	_, err := batch.CalculateJoints(batch.JointBatchInput{})
	require.Error(t, err)
}

func TestCalculateJointsKeepsOrderAndIsolatesFailures(t *testing.T) {
	bad := validJoint(3000)
	bad.Stack.Dh = 18 // hole at bearing diameter

	in := batch.JointBatchInput{Items: []vdi.JointSpec{
		validJoint(1000),
		bad,
		validJoint(8000),
	}}
	res, err := batch.CalculateJoints(in)
	require.NoError(t, err)
	require.Len(t, res.Results, 3)

	require.Empty(t, res.Results[0].Error)
	require.NotNil(t, res.Results[0].State)

	require.NotEmpty(t, res.Results[1].Error, "invalid geometry must fail only its own slot")
	require.Nil(t, res.Results[1].State)

	require.Empty(t, res.Results[2].Error)
	require.NotNil(t, res.Results[2].State)
	require.Greater(t, res.Results[2].State.Utilization, res.Results[0].State.Utilization)
}

func TestCalculateJointsMatchesSequential(t *testing.T) {
	items := make([]vdi.JointSpec, 16)
	for i := range items {
		items[i] = validJoint(float64(500 * (i + 1)))
	}
	res, err := batch.CalculateJoints(batch.JointBatchInput{Items: items})
	require.NoError(t, err)
	for i, item := range res.Results {
		want, err := vdi.Evaluate(items[i])
		require.NoError(t, err)
		require.NotNil(t, item.State)
		require.Equal(t, want, *item.State)
	}
}

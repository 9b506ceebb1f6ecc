package classical_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"BoltLab/internal/calc/classical"
)

func TestTorque(t *testing.T) {
	// M10, FM=20000 N, mu 0.12/0.12:
	// MA = 20000*(0.16*1.5 + 0.58*9.026*0.12 + 0.5*14*0.12)/1000 ~ 34.2 Nm.
	res, err := classical.Torque(classical.TorqueInput{
		PreloadN: 20000, PitchMM: 1.5, D2MM: 9.026, DKmMM: 14, MuG: 0.12, MuK: 0.12,
	})
	require.NoError(t, err)
	require.InDelta(t, 34.16, res.TorqueNM, 0.05)

	_, err = classical.Torque(classical.TorqueInput{PreloadN: 0, PitchMM: 1.5, D2MM: 9.026, DKmMM: 14})
	require.Error(t, err)
}

func TestTorqueClampingRoundTrip(t *testing.T) {
	in := classical.TorqueInput{PreloadN: 25000, PitchMM: 1.75, D2MM: 10.863, DKmMM: 16, MuG: 0.1, MuK: 0.16}
	tq, err := classical.Torque(in)
	require.NoError(t, err)

	back, err := classical.Clamping(classical.ClampingInput{
		TorqueNM: tq.TorqueNM, PitchMM: in.PitchMM, D2MM: in.D2MM, DKmMM: in.DKmMM, MuG: in.MuG, MuK: in.MuK,
	})
	require.NoError(t, err)
	require.InEpsilon(t, in.PreloadN, back.ClampingN, 1e-9)
}

func TestTorqueDefaultsFriction(t *testing.T) {
	bare, err := classical.Torque(classical.TorqueInput{PreloadN: 20000, PitchMM: 1.5, D2MM: 9.026, DKmMM: 14})
	require.NoError(t, err)
	explicit, err := classical.Torque(classical.TorqueInput{
		PreloadN: 20000, PitchMM: 1.5, D2MM: 9.026, DKmMM: 14, MuG: 0.12, MuK: 0.14,
	})
	require.NoError(t, err)
	require.InDelta(t, explicit.TorqueNM, bare.TorqueNM, 1e-12)
}

func TestValidate(t *testing.T) {
	// M12 8.8 at 30 kN: sigma ~ 356 MPa against 0.9*640.
	res, err := classical.Validate(classical.ValidateInput{
		PreloadN: 30000, DMM: 12, PitchMM: 1.75, Rp02MPa: 640,
	})
	require.NoError(t, err)
	require.InDelta(t, 84.3, res.AsMM2, 0.1)
	require.InDelta(t, 356.0, res.StressMPa, 1.0)
	require.True(t, res.OK)
	require.Less(t, res.Utilization, 1.0)

	// Same preload on an M5 is past yield.
	over, err := classical.Validate(classical.ValidateInput{
		PreloadN: 30000, DMM: 5, PitchMM: 0.8, Rp02MPa: 640,
	})
	require.NoError(t, err)
	require.False(t, over.OK)

	_, err = classical.Validate(classical.ValidateInput{PreloadN: 30000, DMM: 12, PitchMM: 1.75})
	require.Error(t, err)
}

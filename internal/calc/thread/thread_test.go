package thread_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"BoltLab/internal/calc/thread"
)

func TestStressAreaM10(t *testing.T) {
	// M10 coarse: d2=9.026, d3=8.160 gives As ~ 58.0 mm2 (ISO 898-1 table).
	as, err := thread.StressArea(9.026, 8.160)
	require.NoError(t, err)
	require.InDelta(t, 58.0, as, 0.05)
}

func TestStressAreaInvalid(t *testing.T) {
	tests := []struct {
		name   string
		d2, d3 float64
	}{
		{"zero d2", 0, 8.0},
		{"zero d3", 9.0, 0},
		{"negative d2", -9.0, 8.0},
		{"d3 above d2", 8.0, 9.0},
		{"d3 equals d2", 9.0, 9.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := thread.StressArea(tc.d2, tc.d3)
			require.Error(t, err)
		})
	}
}

func TestStressAreaNominal(t *testing.T) {
	// M12 coarse: (pi/4)*(12 - 0.9382*1.75)^2 ~ 84.3 mm2.
	as, err := thread.StressAreaNominal(12, 1.75)
	require.NoError(t, err)
	require.InDelta(t, 84.3, as, 0.1)

	_, err = thread.StressAreaNominal(0, 1.5)
	require.Error(t, err)
	_, err = thread.StressAreaNominal(1, 1.5) // pitch swallows the section
	require.Error(t, err)
}

func TestSizeLookup(t *testing.T) {
	m10, err := thread.Size("M10")
	require.NoError(t, err)
	require.Equal(t, 10.0, m10.D)
	require.Equal(t, 1.5, m10.P)
	require.InDelta(t, 58.0, m10.As(), 0.05)

	_, err = thread.Size("M11")
	require.Error(t, err)
}

func TestSizesAscending(t *testing.T) {
	sizes := thread.Sizes()
	require.NotEmpty(t, sizes)
	for i := 1; i < len(sizes); i++ {
		require.Greater(t, sizes[i].D, sizes[i-1].D, "table must be sorted by nominal diameter")
	}
	require.Equal(t, "M5", sizes[0].Name)
	require.Equal(t, "M24", sizes[len(sizes)-1].Name)
}

package autodesign

import (
	"fmt"

	"BoltLab/internal/calc/thread"
	vdi "BoltLab/internal/calc/vdi"
)

type BoltAutoInput struct {
	Stack    vdi.ClampedStack  `json:"stack"`
	Material vdi.MaterialPair  `json:"material"`
	Friction vdi.FrictionModel `json:"friction"`
	Load     vdi.LoadCase      `json:"load"`
}

type BoltAutoResult struct {
	Size        string           `json:"size"`
	State       vdi.DerivedState `json:"state"`
	Utilization float64          `json:"utilization"`
	Notes       string           `json:"notes"`
}

// Bolt walks the metric coarse-thread table from the smallest size up and
// returns the first one that passes utilization, keeps clamp under load and
// satisfies the surface criterion. Sizes whose geometry is invalid for the
// given stack (hole larger than the thread, say) are skipped, not fatal.
func Bolt(in BoltAutoInput) (BoltAutoResult, error) {
	if in.Load.FA <= 0 && in.Load.FZ <= 0 {
		return BoltAutoResult{}, fmt.Errorf("invalid input")
	}
	for _, t := range thread.Sizes() {
		spec := vdi.JointSpec{
			Bolt:     vdi.BoltGeometry{D: t.D, D2: t.D2, D3: t.D3, P: t.P, Alpha: 30},
			Stack:    in.Stack,
			Material: in.Material,
			Friction: in.Friction,
			Load:     in.Load,
		}
		state, err := vdi.Evaluate(spec)
		if err != nil {
			continue
		}
		if state.Verdict == vdi.VerdictOK && !state.ClampLoss && state.Surface.OK {
			return BoltAutoResult{
				Size:        t.Name,
				State:       state,
				Utilization: state.Utilization,
				Notes:       "Smallest tabulated size passing utilization, clamp retention and surface criterion.",
			}, nil
		}
	}
	return BoltAutoResult{}, fmt.Errorf("no tabulated size up to M24 satisfies the load case")
}

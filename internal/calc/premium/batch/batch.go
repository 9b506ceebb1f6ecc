package batch

import (
	"fmt"
	"sync"

	vdi "BoltLab/internal/calc/vdi"
)

type JointBatchInput struct {
	Items []vdi.JointSpec `json:"items"`
}

// Item pairs one evaluation with its outcome so a batch can mix passing and
// failing designs without aborting the sweep.
type Item struct {
	State *vdi.DerivedState `json:"state,omitempty"`
	Error string            `json:"error,omitempty"`
}

type JointBatchResult struct {
	Results []Item `json:"results"`
}

// CalculateJoints evaluates every spec concurrently. Evaluations are pure
// and share nothing, so one goroutine per item needs no locking; each writes
// only its own slot.
func CalculateJoints(in JointBatchInput) (JointBatchResult, error) {
	if len(in.Items) == 0 {
		return JointBatchResult{}, fmt.Errorf("no items")
	}
	out := JointBatchResult{Results: make([]Item, len(in.Items))}
	var wg sync.WaitGroup
	for i, spec := range in.Items {
		wg.Add(1)
		go func(i int, spec vdi.JointSpec) {
			defer wg.Done()
			state, err := vdi.Evaluate(spec)
			if err != nil {
				out.Results[i] = Item{Error: err.Error()}
				return
			}
			out.Results[i] = Item{State: &state}
		}(i, spec)
	}
	wg.Wait()
	return out, nil
}

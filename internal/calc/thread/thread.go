// Package thread holds the geometry primitives shared by the VDI and the
// classical bolt rule sets: tensile stress area and the standard metric
// coarse-thread dimension table.
package thread

import (
	"fmt"
	"math"
	"sort"
)

// StressArea returns the tensile stress area As = (pi/4)*((d2+d3)/2)^2 in mm2,
// from pitch diameter d2 and minor diameter d3.
func StressArea(d2, d3 float64) (float64, error) {
	if d2 <= 0 || d3 <= 0 {
		return 0, fmt.Errorf("invalid thread geometry: d2=%g d3=%g must be positive", d2, d3)
	}
	if d3 >= d2 {
		return 0, fmt.Errorf("invalid thread geometry: minor diameter d3=%g must be below pitch diameter d2=%g", d3, d2)
	}
	ds := (d2 + d3) / 2.0
	return math.Pi / 4.0 * ds * ds, nil
}

// StressAreaNominal is the classical shortcut As = (pi/4)*(d - 0.9382*P)^2
// used by the quick torque/clamping estimates when only the bolt callout
// (nominal diameter and pitch) is known.
func StressAreaNominal(d, p float64) (float64, error) {
	if d <= 0 || p <= 0 {
		return 0, fmt.Errorf("invalid thread geometry: d=%g P=%g must be positive", d, p)
	}
	ds := d - 0.9382*p
	if ds <= 0 {
		return 0, fmt.Errorf("invalid thread geometry: pitch P=%g too large for nominal d=%g", p, d)
	}
	return math.Pi / 4.0 * ds * ds, nil
}

// Dimensions of a metric coarse thread per ISO 724 / ISO 898-1, all in mm.
type Dimensions struct {
	Name string  `json:"name"`
	D    float64 `json:"d"`  // nominal diameter
	P    float64 `json:"p"`  // pitch
	D2   float64 `json:"d2"` // pitch diameter
	D3   float64 `json:"d3"` // minor diameter
}

// As returns the tensile stress area for the tabulated thread.
func (t Dimensions) As() float64 {
	ds := (t.D2 + t.D3) / 2.0
	return math.Pi / 4.0 * ds * ds
}

var table = map[string]Dimensions{
	"M5":  {Name: "M5", D: 5, P: 0.8, D2: 4.480, D3: 4.019},
	"M6":  {Name: "M6", D: 6, P: 1.0, D2: 5.350, D3: 4.773},
	"M8":  {Name: "M8", D: 8, P: 1.25, D2: 7.188, D3: 6.466},
	"M10": {Name: "M10", D: 10, P: 1.5, D2: 9.026, D3: 8.160},
	"M12": {Name: "M12", D: 12, P: 1.75, D2: 10.863, D3: 9.853},
	"M16": {Name: "M16", D: 16, P: 2.0, D2: 14.701, D3: 13.546},
	"M20": {Name: "M20", D: 20, P: 2.5, D2: 18.376, D3: 16.933},
	"M24": {Name: "M24", D: 24, P: 3.0, D2: 22.051, D3: 20.319},
}

// Size looks up a metric coarse thread by callout, e.g. "M10".
func Size(name string) (Dimensions, error) {
	t, ok := table[name]
	if !ok {
		return Dimensions{}, fmt.Errorf("unknown thread size %q", name)
	}
	return t, nil
}

// Sizes returns the tabulated threads in ascending nominal diameter,
// the order the autodesign sweep walks them in.
func Sizes() []Dimensions {
	out := make([]Dimensions, 0, len(table))
	for _, t := range table {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].D < out[j].D })
	return out
}

// Package vdi implements the VDI 2230 resilience-and-safety pipeline for a
// single highly stressed bolted joint: resiliences, load factor, preload,
// working forces, stress and the combined surface criterion. All lengths in
// mm, forces in N, stresses and moduli in MPa (N/mm2).
package vdi

// BoltGeometry describes the fastener thread. Invariant: d3 < d2 < d, P > 0.
type BoltGeometry struct {
	D     float64 `json:"d"`     // nominal diameter, mm
	D2    float64 `json:"d2"`    // pitch diameter, mm
	D3    float64 `json:"d3"`    // minor diameter, mm
	P     float64 `json:"p"`     // thread pitch, mm
	Alpha float64 `json:"alpha"` // flank half-angle, deg (30 for metric)
}

// ClampedStack describes the clamped parts between head and nut.
type ClampedStack struct {
	LK float64 `json:"lk"`  // clamped length, mm
	DW float64 `json:"dw"`  // bearing/washer diameter, mm
	Dh float64 `json:"dh"`  // hole diameter, mm
	EP float64 `json:"e_p"` // modulus of clamped material, MPa
}

// MaterialPair carries the bolt material and the thermal pairing with the
// clamped parts.
type MaterialPair struct {
	EB     float64 `json:"e_b"`     // bolt modulus, MPa
	AlphaA float64 `json:"alpha_a"` // bolt thermal expansion, 1/K
	AlphaP float64 `json:"alpha_p"` // clamped-part thermal expansion, 1/K
	Rp02   float64 `json:"rp02"`    // yield strength, MPa
	Rm     float64 `json:"rm"`      // ultimate strength, MPa
}

// FrictionModel: both coefficients conventionally 0.08-0.20.
type FrictionModel struct {
	MuG float64 `json:"mu_g"` // thread friction
	MuK float64 `json:"mu_k"` // head/nut bearing friction
	DKm float64 `json:"d_km"` // mean bearing diameter, mm
}

// SurfaceBasis selects the strength basis of the combined surface criterion.
type SurfaceBasis string

const (
	BasisUTS   SurfaceBasis = "uts"
	BasisYield SurfaceBasis = "yield"
)

// LoadCase is the operating condition of one analysis.
type LoadCase struct {
	FA         float64      `json:"fa"`           // working axial load, N
	FZ         float64      `json:"fz"`           // additional external load, N
	FX         float64      `json:"fx"`           // transverse load, N (surface criterion)
	FY         float64      `json:"fy"`           // transverse load, N (surface criterion)
	N          float64      `json:"n"`            // eccentric load exponent (1 uniform, 4-8 bending)
	DA         float64      `json:"da"`           // load-introduction diameter, mm (0 = concentric)
	DeltaT     float64      `json:"delta_t"`      // temperature change, K
	Interfaces int          `json:"n_interfaces"` // number of interfaces, >= 1
	FZSettle   float64      `json:"f_z_settle"`   // embedding amount fZ, mm (typ. 0.003-0.005)
	FMTab      float64      `json:"fm_tab"`       // tabulated assembly preload, N
	Basis      SurfaceBasis `json:"basis"`        // surface criterion basis, default uts
}

// JointSpec aggregates everything one evaluation needs. Constructed once per
// analysis request and never mutated.
type JointSpec struct {
	Bolt     BoltGeometry  `json:"bolt"`
	Stack    ClampedStack  `json:"stack"`
	Material MaterialPair  `json:"material"`
	Friction FrictionModel `json:"friction"`
	Load     LoadCase      `json:"load"`
}

// Verdict is the three-way utilization classification.
type Verdict string

const (
	VerdictOK       Verdict = "ok"       // utilization < 0.9
	VerdictMarginal Verdict = "marginal" // 0.9 <= utilization < 1.0
	VerdictOverload Verdict = "overload" // utilization >= 1.0
)

// SurfaceResult is the combined tensile+shear interaction check, evaluated
// independently of the utilization factor.
type SurfaceResult struct {
	TensileRatio float64      `json:"tensile_ratio"`
	ShearRatio   float64      `json:"shear_ratio"`
	Combined     float64      `json:"combined"`
	Basis        SurfaceBasis `json:"basis"`
	OK           bool         `json:"ok"` // combined <= 1
}

// DerivedState is the full pipeline output. Fields are set top to bottom in
// stage order and not mutated afterwards.
type DerivedState struct {
	As         float64 `json:"as"`          // stress area, mm2
	DeltaBolt  float64 `json:"delta_bolt"`  // bolt resilience, mm/N
	DeltaParts float64 `json:"delta_parts"` // clamped-parts resilience, mm/N
	Phi        float64 `json:"phi"`         // load factor, (0,1)
	PhiN       float64 `json:"phi_n"`       // eccentric-loading factor (0 if concentric)
	FEmbed     float64 `json:"f_embed"`     // preload lost to embedding, N
	FVMin      float64 `json:"fv_min"`      // minimum required preload, N
	FVAssembly float64 `json:"fv_assembly"` // assembly preload incl. thermal term, N
	FV         float64 `json:"fv"`          // effective preload after embedding, N
	FSB        float64 `json:"fsb"`         // bolt working force, N
	FKB        float64 `json:"fkb"`         // clamping working force, N
	Sigma      float64 `json:"sigma"`       // bolt stress, MPa

	Utilization float64       `json:"utilization"`
	Verdict     Verdict       `json:"verdict"`
	ClampLoss   bool          `json:"clamp_loss"` // FKB <= 0 under operating load
	Surface     SurfaceResult `json:"surface"`
	Warnings    []string      `json:"warnings,omitempty"`
}

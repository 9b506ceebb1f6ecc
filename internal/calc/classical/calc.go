// Package classical holds the quick single-stage torque and clamping-force
// estimates. It is independent of the VDI pipeline and shares only the
// stress-area primitive with it.
package classical

import (
	"fmt"

	"BoltLab/internal/calc/thread"
)

// torqueFactor is the classical lever arm MA/FM = 0.16P + 0.58*d2*muG + 0.5*dKm*muK.
func torqueFactor(p, d2, dKm, muG, muK float64) float64 {
	return 0.16*p + 0.58*d2*muG + 0.5*dKm*muK
}

type TorqueInput struct {
	PreloadN float64 `json:"preload_n"`
	PitchMM  float64 `json:"pitch_mm"`
	D2MM     float64 `json:"d2_mm"`
	DKmMM    float64 `json:"d_km_mm"`
	MuG      float64 `json:"mu_g"`
	MuK      float64 `json:"mu_k"`
}

type TorqueResult struct {
	TorqueNM float64 `json:"torque_nm"`
	Notes    string  `json:"notes"`
}

// Torque is the tightening torque needed to reach a target preload.
func Torque(in TorqueInput) (TorqueResult, error) {
	if in.PreloadN <= 0 || in.PitchMM <= 0 || in.D2MM <= 0 || in.DKmMM <= 0 {
		return TorqueResult{}, fmt.Errorf("invalid input")
	}
	if in.MuG <= 0 {
		in.MuG = 0.12
	}
	if in.MuK <= 0 {
		in.MuK = 0.14
	}
	// MA = FM * (0.16 P + 0.58 d2 muG + 0.5 dKm muK), N*mm -> Nm
	ma := in.PreloadN * torqueFactor(in.PitchMM, in.D2MM, in.DKmMM, in.MuG, in.MuK) / 1000.0
	return TorqueResult{
		TorqueNM: ma,
		Notes:    "Classical tightening-torque estimate; friction defaults 0.12/0.14 if unset.",
	}, nil
}

type ClampingInput struct {
	TorqueNM float64 `json:"torque_nm"`
	PitchMM  float64 `json:"pitch_mm"`
	D2MM     float64 `json:"d2_mm"`
	DKmMM    float64 `json:"d_km_mm"`
	MuG      float64 `json:"mu_g"`
	MuK      float64 `json:"mu_k"`
}

type ClampingResult struct {
	ClampingN float64 `json:"clamping_n"`
	Notes     string  `json:"notes"`
}

// Clamping inverts Torque: the preload obtained from an applied torque.
func Clamping(in ClampingInput) (ClampingResult, error) {
	if in.TorqueNM <= 0 || in.PitchMM <= 0 || in.D2MM <= 0 || in.DKmMM <= 0 {
		return ClampingResult{}, fmt.Errorf("invalid input")
	}
	if in.MuG <= 0 {
		in.MuG = 0.12
	}
	if in.MuK <= 0 {
		in.MuK = 0.14
	}
	fm := in.TorqueNM * 1000.0 / torqueFactor(in.PitchMM, in.D2MM, in.DKmMM, in.MuG, in.MuK)
	return ClampingResult{
		ClampingN: fm,
		Notes:     "Preload recovered from applied torque (classical model).",
	}, nil
}

type ValidateInput struct {
	PreloadN float64 `json:"preload_n"`
	DMM      float64 `json:"d_mm"`
	PitchMM  float64 `json:"pitch_mm"`
	Rp02MPa  float64 `json:"rp02_mpa"`
}

type ValidateResult struct {
	AsMM2       float64 `json:"as_mm2"`
	StressMPa   float64 `json:"stress_mpa"`
	Utilization float64 `json:"utilization"`
	OK          bool    `json:"ok"`
	Notes       string  `json:"notes"`
}

// Validate checks assembly preload stress against 90% of yield on the
// nominal stress area.
func Validate(in ValidateInput) (ValidateResult, error) {
	if in.PreloadN <= 0 || in.Rp02MPa <= 0 {
		return ValidateResult{}, fmt.Errorf("invalid input")
	}
	as, err := thread.StressAreaNominal(in.DMM, in.PitchMM)
	if err != nil {
		return ValidateResult{}, err
	}
	sigma := in.PreloadN / as
	util := sigma / (0.9 * in.Rp02MPa)
	return ValidateResult{
		AsMM2:       as,
		StressMPa:   sigma,
		Utilization: util,
		OK:          util <= 1.0,
		Notes:       "Static preload check against 0.9*Rp02.",
	}, nil
}

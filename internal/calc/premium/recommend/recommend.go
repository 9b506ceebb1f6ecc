package recommend

import (
	"fmt"

	"BoltLab/internal/calc/classical"
)

type PreloadRecommendInput struct {
	TargetClampN float64 `json:"target_clamp_n"`
	FAxialN      float64 `json:"f_axial_n"`
	Phi          float64 `json:"phi"`
	FEmbedN      float64 `json:"f_embed_n"`
	PitchMM      float64 `json:"pitch_mm"`
	D2MM         float64 `json:"d2_mm"`
	DKmMM        float64 `json:"d_km_mm"`
	MuG          float64 `json:"mu_g"`
	MuK          float64 `json:"mu_k"`
}

type PreloadRecommendResult struct {
	RequiredPreloadN float64 `json:"required_preload_n"`
	TorqueNM         float64 `json:"torque_nm"`
	Notes            string  `json:"notes"`
}

// Preload inverts the working-load relation FKB = FV - (1-Phi)*FA to get the
// assembly preload that keeps a target clamp force under load, adds back the
// embedding loss, and quotes the classical tightening torque for it.
func Preload(in PreloadRecommendInput) (PreloadRecommendResult, error) {
	if in.TargetClampN <= 0 || in.FAxialN < 0 {
		return PreloadRecommendResult{}, fmt.Errorf("invalid input")
	}
	if in.Phi < 0 || in.Phi >= 1 {
		return PreloadRecommendResult{}, fmt.Errorf("load factor must lie in [0,1)")
	}
	fv := in.TargetClampN + (1.0-in.Phi)*in.FAxialN + in.FEmbedN
	tq, err := classical.Torque(classical.TorqueInput{
		PreloadN: fv,
		PitchMM:  in.PitchMM,
		D2MM:     in.D2MM,
		DKmMM:    in.DKmMM,
		MuG:      in.MuG,
		MuK:      in.MuK,
	})
	if err != nil {
		return PreloadRecommendResult{}, err
	}
	return PreloadRecommendResult{
		RequiredPreloadN: fv,
		TorqueNM:         tq.TorqueNM,
		Notes:            "Assembly preload for target clamp force, with classical torque estimate.",
	}, nil
}
